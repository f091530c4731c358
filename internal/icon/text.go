package icon

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/Mavwarf/appicon/internal/fonts"
)

// DefaultText is the glyph string stamped on text icons.
const DefaultText = ">/"

// DefaultFontScale is the glyph size as a fraction of the icon edge.
const DefaultFontScale = 0.4

// TextOptions configures a TextStamp.
type TextOptions struct {
	Text       string
	FontScale  float64
	Background color.Color
	Foreground color.Color
}

// DefaultTextOptions returns white ">/" on black at 40% glyph size.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Text:       DefaultText,
		FontScale:  DefaultFontScale,
		Background: Black,
		Foreground: White,
	}
}

// TextStamp renders a centered string on a solid background.
type TextStamp struct {
	font *fonts.Font
	opts TextOptions
}

// NewTextStamp returns a renderer drawing with f. Zero-valued options fall
// back to DefaultTextOptions.
func NewTextStamp(f *fonts.Font, opts TextOptions) *TextStamp {
	def := DefaultTextOptions()
	if opts.Text == "" {
		opts.Text = def.Text
	}
	if opts.FontScale <= 0 {
		opts.FontScale = def.FontScale
	}
	if opts.Background == nil {
		opts.Background = def.Background
	}
	if opts.Foreground == nil {
		opts.Foreground = def.Foreground
	}
	return &TextStamp{font: f, opts: opts}
}

func (t *TextStamp) Name() string { return "text" }

// Font returns the candidate the typeface was loaded from.
func (t *TextStamp) Font() string { return t.font.Source }

// Render draws the string centered on its ink bounding box.
func (t *TextStamp) Render(size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	face, err := fonts.NewFace(t.font, float64(scaled(size, t.opts.FontScale)))
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	defer face.Close()

	canvas := imaging.New(size, size, t.opts.Background)
	dot, _ := Placement(face, t.opts.Text, size)
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(t.opts.Foreground),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(t.opts.Text)
	return canvas, nil
}

// Placement centers the ink bounding box of text in a size×size square. It
// returns the pen origin (baseline) to draw from and the box the ink will
// occupy in canvas coordinates.
//
// The box's left edge lands at (size-w)/2 and its top edge at (size-h)/2.
// The origin is offset by the box's position relative to the baseline, so
// ascender and descender metrics of the face do not shift the result.
func Placement(face font.Face, text string, size int) (fixed.Point26_6, image.Rectangle) {
	b, _ := font.BoundString(face, text)
	w := (b.Max.X - b.Min.X).Ceil()
	h := (b.Max.Y - b.Min.Y).Ceil()
	left := (size - w) / 2
	top := (size - h) / 2
	dot := fixed.Point26_6{
		X: fixed.I(left) - b.Min.X,
		Y: fixed.I(top) - b.Min.Y,
	}
	return dot, image.Rect(left, top, left+w, top+h)
}
