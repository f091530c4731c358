package iconset

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/Mavwarf/appicon/internal/paths"
)

// Renderer produces one square icon of the given edge length.
type Renderer interface {
	Render(size int) (image.Image, error)
}

// Reporter receives a notice after each icon is written. A nil Reporter is
// allowed.
type Reporter interface {
	Created(filename string, size int)
}

// Generate renders every Spec with r and writes it to dir as PNG, replacing
// any existing file of the same name. The directory is created if missing.
//
// The first failure aborts the batch. Files written before the failure are
// left in place; a re-run overwrites them.
func Generate(dir string, r Renderer, rep Reporter) error {
	return generate(dir, Specs(), r, rep)
}

func generate(dir string, specs []Spec, r Renderer, rep Reporter) error {
	for _, s := range specs {
		img, err := r.Render(s.Size)
		if err != nil {
			return fmt.Errorf("render %s: %w", s.Filename, err)
		}
		b := img.Bounds()
		if b.Dx() != s.Size || b.Dy() != s.Size {
			return fmt.Errorf("render %s: got %dx%d, want %dx%d",
				s.Filename, b.Dx(), b.Dy(), s.Size, s.Size)
		}

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return fmt.Errorf("encode %s: %w", s.Filename, err)
		}
		if err := paths.AtomicWrite(filepath.Join(dir, s.Filename), buf.Bytes()); err != nil {
			return fmt.Errorf("write %s: %w", s.Filename, err)
		}

		if rep != nil {
			rep.Created(s.Filename, s.Size)
		}
	}
	return nil
}
