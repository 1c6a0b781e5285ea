package storage

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
)

// JPEGQuality matches the default of most image writers.
const JPEGQuality = 75

type Format int

const (
	PNG Format = iota
	JPEG
)

func (f Format) Ext() string {
	switch f {
	case JPEG:
		return ".jpg"
	default:
		return ".png"
	}
}

func (f Format) Encoder() imgio.Encoder {
	switch f {
	case JPEG:
		return imgio.JPEGEncoder(JPEGQuality)
	default:
		return imgio.PNGEncoder()
	}
}

// DirStorage writes noisy images and comparison artifacts into two
// separate directories.
type DirStorage struct {
	noisyDir      string
	comparisonDir string
}

func NewDirStorage(noisyDir, comparisonDir string) (*DirStorage, error) {
	for _, dir := range []string{noisyDir, comparisonDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &DirStorage{noisyDir: noisyDir, comparisonDir: comparisonDir}, nil
}

func (s *DirStorage) StoreNoisy(filename string, img image.Image, format Format) (string, error) {
	return writeAtomic(filepath.Join(s.noisyDir, filename), img, format.Encoder())
}

// StoreComparison always writes a lossless PNG.
func (s *DirStorage) StoreComparison(filename string, img image.Image) (string, error) {
	return writeAtomic(filepath.Join(s.comparisonDir, filename), img, PNG.Encoder())
}

// writeAtomic encodes into a temporary file next to the destination and
// renames it into place, so a failed write never leaves a truncated image.
func writeAtomic(filename string, img image.Image, encode imgio.Encoder) (string, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), "write-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	cleanupTemp := true
	defer func() {
		_ = tmpFile.Close()
		if cleanupTemp {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if err := encode(tmpFile, img); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", filepath.Base(filename), err)
	}

	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temporary file before rename: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return "", fmt.Errorf("failed to rename temporary file: %w", err)
	}

	cleanupTemp = false
	return filename, nil
}
