// Package photosource discovers authored photos in a directory and
// reports their dimensions via a header-only decode (image.DecodeConfig),
// without ever decoding pixel data.
package photosource

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG header decoder
	_ "image/png"  // register PNG header decoder
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/maruel/natural"

	"photolayout/internal/parallel"
	"photolayout/pack"
)

// Photo is one authored image discovered on disk, plus the layout
// attributes an operator assigns before packing.
type Photo struct {
	ID       uuid.UUID
	Path     string
	Size     pack.PhotoSize
	Rotation int
	Priority int
	Quantity int
}

// Options controls how Load walks a directory.
type Options struct {
	// NaturalSort orders the file listing with human (file2 before
	// file10) ordering instead of byte-wise lexical order.
	NaturalSort bool
	// Rotation and Priority are applied uniformly to every photo found;
	// callers wanting per-photo overrides should post-process the
	// returned slice.
	Rotation int
	Priority int
	// Quantity is the default copy count assigned to every photo found.
	// Zero is treated as 1.
	Quantity int
}

// Load walks dir (non-recursively) for PNG/JPEG files, reading just
// enough of each to learn its pixel dimensions via image.DecodeConfig.
// Files that fail to open or decode are skipped, not panicked on. Their
// wrapped errors are collected; the first one is returned only when no
// file could be loaded at all, otherwise they are discarded.
func Load(dir string, opts Options) ([]Photo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read photo directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	if opts.NaturalSort {
		sort.Sort(natural.StringSlice(paths))
	} else {
		sort.Strings(paths)
	}

	photos := make([]Photo, len(paths))
	errs := make([]error, len(paths))

	parallel.Run(0, len(paths), func(i int) {
		path := paths[i]
		file, err := os.Open(path)
		if err != nil {
			errs[i] = fmt.Errorf("open %s: %w", path, err)
			return
		}
		defer file.Close()

		cfg, _, err := image.DecodeConfig(file)
		if err != nil {
			errs[i] = fmt.Errorf("decode header %s: %w", path, err)
			return
		}

		quantity := opts.Quantity
		if quantity < 1 {
			quantity = 1
		}

		photos[i] = Photo{
			ID:   uuid.New(),
			Path: path,
			Size: pack.PhotoSize{
				Name:   filepath.Base(path),
				Width:  float64(cfg.Width),
				Height: float64(cfg.Height),
			},
			Rotation: opts.Rotation,
			Priority: opts.Priority,
			Quantity: quantity,
		}
	})

	result := make([]Photo, 0, len(photos))
	var firstErr error
	for i, p := range photos {
		if errs[i] != nil {
			if firstErr == nil {
				firstErr = errs[i]
			}
			continue
		}
		result = append(result, p)
	}

	if len(result) == 0 && firstErr != nil {
		return nil, firstErr
	}

	return result, nil
}
