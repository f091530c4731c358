package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrLogoNotFound is returned when the source logo file does not exist.
var ErrLogoNotFound = errors.New("logo not found")

// DefaultLogoScale is the logo's longer edge as a fraction of the icon edge.
const DefaultLogoScale = 0.95

// Filters maps config names to resampling filters.
var Filters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"box":        imaging.Box,
}

// Filter looks up a resampling filter by name (case-insensitive).
func Filter(name string) (imaging.ResampleFilter, error) {
	f, ok := Filters[strings.ToLower(name)]
	if !ok {
		return imaging.ResampleFilter{}, fmt.Errorf("unknown filter %q (want lanczos, catmullrom or box)", name)
	}
	return f, nil
}

// LogoOptions configures a LogoComposite.
type LogoOptions struct {
	Scale      float64
	Filter     imaging.ResampleFilter
	Background color.Color
}

// DefaultLogoOptions returns a Lanczos-resampled logo at 95% on black.
func DefaultLogoOptions() LogoOptions {
	return LogoOptions{
		Scale:      DefaultLogoScale,
		Filter:     imaging.Lanczos,
		Background: Black,
	}
}

// LogoComposite pastes a color-inverted copy of a logo, resized per icon,
// centered on a solid background.
type LogoComposite struct {
	logo  *image.NRGBA // inverted once, read-only afterwards
	alpha bool
	opts  LogoOptions
}

// LoadLogo decodes the logo at path. A missing file yields an error wrapping
// ErrLogoNotFound; an unreadable or corrupt file yields the decoder error.
func LoadLogo(path string) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLogoNotFound, path)
		}
		return nil, err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode logo %s: %w", path, err)
	}
	return img, nil
}

// OpenLogoComposite loads the logo at path and prepares a renderer for it.
func OpenLogoComposite(path string, opts LogoOptions) (*LogoComposite, error) {
	img, err := LoadLogo(path)
	if err != nil {
		return nil, err
	}
	return NewLogoComposite(img, opts), nil
}

// NewLogoComposite inverts logo and returns a renderer for it. Zero-valued
// options fall back to DefaultLogoOptions.
func NewLogoComposite(logo image.Image, opts LogoOptions) *LogoComposite {
	def := DefaultLogoOptions()
	if opts.Scale <= 0 {
		opts.Scale = def.Scale
	}
	if opts.Filter.Kernel == nil {
		opts.Filter = def.Filter
	}
	if opts.Background == nil {
		opts.Background = def.Background
	}
	return &LogoComposite{
		logo:  Invert(logo),
		alpha: hasAlpha(logo),
		opts:  opts,
	}
}

func (l *LogoComposite) Name() string { return "logo" }

// Render resizes the logo so its longer edge is Scale×size and composites it
// at the center, using the logo's alpha as paste mask.
func (l *LogoComposite) Render(size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	canvas := imaging.New(size, size, l.opts.Background)

	w, h := fit(l.logo.Bounds(), scaled(size, l.opts.Scale))
	resized := imaging.Resize(l.logo, w, h, l.opts.Filter)
	pt := image.Pt((size-w)/2, (size-h)/2)

	if !l.alpha {
		return imaging.Paste(canvas, resized, pt), nil
	}
	return imaging.Overlay(canvas, resized, pt, 1.0), nil
}

// Invert replaces R, G and B with 255-v and keeps alpha. Applying it twice
// to an NRGBA image returns the original pixels.
func Invert(img image.Image) *image.NRGBA {
	return imaging.Invert(img)
}

// fit scales r so that its longer edge is n, preserving aspect ratio.
func fit(r image.Rectangle, n int) (int, int) {
	sw, sh := r.Dx(), r.Dy()
	if sw <= 0 || sh <= 0 {
		return n, n
	}
	if sw >= sh {
		return n, max(1, (n*sh+sw/2)/sw)
	}
	return max(1, (n*sw+sh/2)/sh), n
}

// hasAlpha reports whether img's color model can carry transparency.
func hasAlpha(img image.Image) bool {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model, color.YCbCrModel, color.CMYKModel:
		return false
	}
	return true
}
