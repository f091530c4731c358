package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/Mavwarf/appicon/internal/config"
	"github.com/Mavwarf/appicon/internal/iconset"
	"github.com/Mavwarf/appicon/internal/report"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds command-line overrides. Empty fields leave the config value
// untouched.
type options struct {
	configPath string
	mode       string
	outputDir  string
	logo       string
	text       string
	filter     string
	fonts      []string
}

func (o options) apply(cfg *config.Config) {
	if o.mode != "" {
		cfg.Mode = o.mode
	}
	if o.outputDir != "" {
		cfg.OutputDir = o.outputDir
	}
	if o.logo != "" {
		cfg.Logo = o.logo
	}
	if o.text != "" {
		cfg.Text = o.text
	}
	if o.filter != "" {
		cfg.Filter = o.filter
	}
	if len(o.fonts) > 0 {
		cfg.Fonts = append(append([]string{}, o.fonts...), cfg.Fonts...)
	}
}

// parseArgs splits flags from positional arguments. Flags may appear
// anywhere on the command line.
func parseArgs(args []string) (options, []string, error) {
	var opts options
	var rest []string
	for i := 0; i < len(args); i++ {
		var target *string
		switch args[i] {
		case "--config", "-c":
			target = &opts.configPath
		case "--mode", "-m":
			target = &opts.mode
		case "--out", "-o":
			target = &opts.outputDir
		case "--logo", "-l":
			target = &opts.logo
		case "--text", "-t":
			target = &opts.text
		case "--filter":
			target = &opts.filter
		case "--font", "-f":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("%s requires a value", args[i])
			}
			opts.fonts = append(opts.fonts, args[i+1])
			i++
			continue
		default:
			rest = append(rest, args[i])
			continue
		}
		if i+1 >= len(args) {
			return opts, nil, fmt.Errorf("%s requires a value", args[i])
		}
		*target = args[i+1]
		i++
	}
	return opts, rest, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cmd := "generate"
	if len(rest) > 0 {
		cmd = rest[0]
	}
	switch cmd {
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	case "version", "-V", "--version":
		printVersion(stdout)
		return 0
	case "list":
		listSpecs(stdout)
		return 0
	case "generate":
		return generate(opts, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n", cmd)
		fmt.Fprintf(stderr, "Run 'appicon help' for usage.\n")
		return 1
	}
}

func generate(opts options, stdout, stderr io.Writer) int {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Logo mode reads the logo here; nothing is written if it is missing.
	r, err := cfg.Renderer()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rep := report.New(stdout, stderr)
	rep.Start(cfg.OutputDir)
	if err := iconset.Generate(cfg.OutputDir, r, rep); err != nil {
		rep.Failed(err)
		return 1
	}
	rep.Done(cfg.OutputDir)
	return 0
}

func listSpecs(w io.Writer) {
	for _, s := range iconset.Specs() {
		fmt.Fprintf(w, "  %-28s %dx%d\n", s.Filename, s.Size, s.Size)
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "appicon %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "appicon %s - Generate the iOS app icon set\n", version)
	fmt.Fprintln(w, `
Usage:
  appicon [options] [generate]
  appicon list

Options:
  --mode, -m <text|logo>  Renderer (default: config or text)
  --out, -o <dir>         Output directory
  --logo, -l <path>       Source logo for logo mode
  --text, -t <string>     Glyphs for text mode (default: ">/")
  --font, -f <name|path>  Try this font first (repeatable)
  --filter <name>         Logo resampling: lanczos, catmullrom, box
  --config, -c <path>     Path to appicon-config.json

Commands:
  generate                Write every icon (default)
  list                    List icon file names and sizes
  version, -V             Show version and build date
  help, -h, --help        Show this help message

Config resolution:
  1. --config <path>                       (explicit)
  2. appicon-config.json next to binary    (portable)
  3. ~/.config/appicon/appicon-config.json (user default)
  APPICON_* environment variables override the file; flags override both.

Examples:
  appicon                                  White ">/" on black
  appicon -m logo -l assets/logo.png       Inverted logo on black
  appicon -o build/icons -f "DejaVuSansMono.ttf"`)
}
