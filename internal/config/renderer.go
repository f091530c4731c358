package config

import (
	"github.com/Mavwarf/appicon/internal/fonts"
	"github.com/Mavwarf/appicon/internal/icon"
)

// Renderer builds the renderer selected by Mode. Call Validate first.
//
// Logo mode loads and inverts the logo here, so a missing or unreadable
// logo fails before any icon is produced.
func (c Config) Renderer() (icon.Renderer, error) {
	bg, err := ParseHexColor(c.Background)
	if err != nil {
		return nil, err
	}

	if c.Mode == ModeLogo {
		filter, err := icon.Filter(c.Filter)
		if err != nil {
			return nil, err
		}
		return icon.OpenLogoComposite(c.Logo, icon.LogoOptions{
			Scale:      c.LogoScale,
			Filter:     filter,
			Background: bg,
		})
	}

	fg, err := ParseHexColor(c.Foreground)
	if err != nil {
		return nil, err
	}
	f, err := fonts.Resolve(fonts.Chain(c.Fonts...), fonts.SystemDirs())
	if err != nil {
		return nil, err
	}
	return icon.NewTextStamp(f, icon.TextOptions{
		Text:       c.Text,
		FontScale:  c.FontScale,
		Background: bg,
		Foreground: fg,
	}), nil
}
