package cmd

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rm-hull/noisy-dataset/internal/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAugment(t *testing.T) {
	t.Run("unreadable input directory aborts before any output", func(t *testing.T) {
		root := t.TempDir()
		cfg := batch.Config{
			InputDir:      filepath.Join(root, "missing"),
			OutputDir:     filepath.Join(root, "noisy"),
			ComparisonDir: filepath.Join(root, "comparison"),
			Variance:      batch.DefaultVariance,
		}

		err := Augment(cfg)
		assert.ErrorContains(t, err, "failed to read input directory")
		assert.NoDirExists(t, cfg.OutputDir)
		assert.NoDirExists(t, cfg.ComparisonDir)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		root := t.TempDir()
		cfg := batch.Config{
			InputDir:      root,
			OutputDir:     filepath.Join(root, "noisy"),
			ComparisonDir: filepath.Join(root, "comparison"),
			Variance:      -1,
		}

		err := Augment(cfg)
		assert.ErrorContains(t, err, "invalid configuration")
		assert.NoDirExists(t, cfg.OutputDir)
	})

	t.Run("writes noisy and comparison images", func(t *testing.T) {
		root := t.TempDir()
		in := filepath.Join(root, "in")
		require.NoError(t, os.Mkdir(in, 0755))

		img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				img.SetNRGBA(x, y, color.NRGBA{uint8(x * 16), uint8(y * 16), 90, 200})
			}
		}
		f, err := os.Create(filepath.Join(in, "photo.png"))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())

		cfg := batch.Config{
			InputDir:      in,
			OutputDir:     filepath.Join(root, "noisy"),
			ComparisonDir: filepath.Join(root, "comparison"),
			Variance:      batch.DefaultVariance,
		}

		require.NoError(t, Augment(cfg))
		assert.FileExists(t, filepath.Join(cfg.OutputDir, "photo_noisy.png"))
		assert.FileExists(t, filepath.Join(cfg.ComparisonDir, "comparison_photo.png"))
	})
}

func TestVarianceFromEnv(t *testing.T) {
	t.Run("unset uses fallback", func(t *testing.T) {
		t.Setenv("NOISE_VARIANCE", "")
		v, err := VarianceFromEnv("NOISE_VARIANCE", 0.09)
		require.NoError(t, err)
		assert.Equal(t, 0.09, v)
	})

	t.Run("parsed from env", func(t *testing.T) {
		t.Setenv("NOISE_VARIANCE", "0.25")
		v, err := VarianceFromEnv("NOISE_VARIANCE", 0.09)
		require.NoError(t, err)
		assert.Equal(t, 0.25, v)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("NOISE_VARIANCE", "lots")
		_, err := VarianceFromEnv("NOISE_VARIANCE", 0.09)
		assert.ErrorContains(t, err, `NOISE_VARIANCE="lots" is not a number`)
	})
}
