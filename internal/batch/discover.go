package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// AllowedExtensions lists the (lower-case) file extensions treated as batch items.
var AllowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

type Item struct {
	Name string
	Path string
}

// Basename is the file name without its extension.
func (i Item) Basename() string {
	return strings.TrimSuffix(i.Name, filepath.Ext(i.Name))
}

// Discover lists the images directly inside dir in lexical order.
// Subdirectories and files with other extensions are skipped.
func Discover(dir string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !AllowedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		items = append(items, Item{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}
	return items, nil
}
