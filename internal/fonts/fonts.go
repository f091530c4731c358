// Package fonts resolves a typeface through an ordered list of candidates,
// falling back to the embedded Go Mono face when no system font is found.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// Builtin names the embedded Go Mono face in a candidate list. It never
// touches the filesystem and always parses.
const Builtin = "builtin:gomono"

// DefaultChain is Consolas, then Courier New, then the built-in face.
var DefaultChain = []string{"consola.ttf", "cour.ttf", Builtin}

// ErrNoFont is returned when every candidate was tried and none could be
// loaded.
var ErrNoFont = errors.New("no usable font")

// Font is a parsed typeface together with the candidate that produced it.
type Font struct {
	*opentype.Font
	Source string
}

// Resolve walks candidates in order and returns the first one that can be
// located and parsed. A candidate is either Builtin, a path to a font file,
// or a bare file name searched for (case-insensitively) under dirs.
// Unavailable or unreadable candidates are skipped without error.
func Resolve(candidates, dirs []string) (*Font, error) {
	for _, c := range candidates {
		if f := load(c, dirs); f != nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w (tried %s)", ErrNoFont, strings.Join(candidates, ", "))
}

// ResolveDefault resolves DefaultChain against the system font directories.
func ResolveDefault() (*Font, error) {
	return Resolve(DefaultChain, SystemDirs())
}

// Chain returns DefaultChain with extra candidates tried first.
func Chain(extra ...string) []string {
	out := make([]string, 0, len(extra)+len(DefaultChain))
	out = append(out, extra...)
	return append(out, DefaultChain...)
}

// NewFace returns a face of the given pixel size (72 DPI, so one point is one
// pixel) with full hinting.
func NewFace(f *Font, size float64) (font.Face, error) {
	return opentype.NewFace(f.Font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func load(candidate string, dirs []string) *Font {
	if candidate == Builtin {
		f, err := opentype.Parse(gomono.TTF)
		if err != nil {
			return nil
		}
		return &Font{Font: f, Source: Builtin}
	}

	path := locate(candidate, dirs)
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := parse(data)
	if err != nil {
		return nil
	}
	return &Font{Font: f, Source: path}
}

// parse accepts single fonts and collections; for a collection the first
// face is used.
func parse(data []byte) (*opentype.Font, error) {
	if len(data) >= 4 && string(data[:4]) == "ttcf" {
		col, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		return col.Font(0)
	}
	return opentype.Parse(data)
}

// locate finds a font file. Names containing a path separator, and names
// present in the working directory, are used as-is; otherwise each dir is
// walked recursively for a case-insensitive base-name match.
func locate(name string, dirs []string) string {
	if isFile(name) {
		return name
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return ""
	}
	for _, dir := range dirs {
		if p := search(dir, name); p != "" {
			return p
		}
	}
	return ""
}

func search(root, name string) string {
	var found string
	filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && strings.EqualFold(d.Name(), name) {
			found = p
			return fs.SkipAll
		}
		return nil
	})
	return found
}

func isFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}
