// mkicon renders a single icon of any size with the same renderers as
// appicon, for previewing a logo or font before generating the full set.
// Usage: go run ./cmd/mkicon [--mode text|logo] [--logo path] [--text s] <size> <output.png>
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/Mavwarf/appicon/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg := config.Default()
	var pos []string
	for i := 0; i < len(args); i++ {
		var target *string
		switch args[i] {
		case "--mode", "-m":
			target = &cfg.Mode
		case "--logo", "-l":
			target = &cfg.Logo
		case "--text", "-t":
			target = &cfg.Text
		default:
			pos = append(pos, args[i])
			continue
		}
		if i+1 >= len(args) {
			return fmt.Errorf("%s requires a value", args[i])
		}
		*target = args[i+1]
		i++
	}
	if len(pos) != 2 {
		return fmt.Errorf("usage: mkicon [--mode text|logo] [--logo path] [--text s] <size> <output.png>")
	}
	size, err := strconv.Atoi(pos[0])
	if err != nil || size <= 0 {
		return fmt.Errorf("size must be a positive integer, got %q", pos[0])
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	r, err := cfg.Renderer()
	if err != nil {
		return err
	}
	img, err := r.Render(size)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, pos[1]); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Created: %s (%dx%d)\n", pos[1], size, size)
	return nil
}
