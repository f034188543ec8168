// Command msdffontc compiles TrueType and OpenType fonts into msdffont
// atlas assets.
//
// Usage:
//
//	msdffontc [flags] [font files...]
//
// With no font files it compiles every font under the asset root.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/gogpu/msdffont"
	"github.com/gogpu/msdffont/atlas"
	"github.com/gogpu/msdffont/compiler"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := compiler.DefaultConfig()

	fs := flag.NewFlagSet("msdffontc", flag.ContinueOnError)
	var (
		root    = fs.String("root", cfg.AssetRoot, "asset root scanned when no files are given")
		ext     = fs.String("ext", cfg.AssetExtension, "extension of written assets")
		preview = fs.Bool("preview", cfg.Preview, "also write each atlas as a PNG")
		threads = fs.Int("threads", cfg.Atlas.Threads, "rendering goroutines")
		scale   = fs.Float64("scale", cfg.Atlas.FontScale, "font scale applied to all metrics")
		minimum = fs.Float64("size", cfg.Atlas.MinimumScale, "atlas resolution in pixels per em")
		pxRange = fs.Float64("range", cfg.Atlas.PixelRange, "distance range in atlas pixels")
		angle   = fs.Float64("angle", cfg.Atlas.AngleThreshold, "corner angle threshold in radians")
		kerning = fs.String("kerning", cfg.Atlas.Kerning.String(), "kerning source: shaping, table or none")
		charset = fs.String("charset", "ascii", "glyph set: ascii, latin1, or a literal string prefixed with =")
		verbose = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	initDisplay()
	if *verbose {
		msdffont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	mode, err := atlas.ParseKerningMode(*kerning)
	if err != nil {
		pterm.Error.Println(err)
		return 2
	}
	set, err := parseCharset(*charset)
	if err != nil {
		pterm.Error.Println(err)
		return 2
	}

	cfg.AssetRoot = *root
	cfg.AssetExtension = *ext
	cfg.Preview = *preview
	cfg.Atlas.Threads = *threads
	cfg.Atlas.FontScale = *scale
	cfg.Atlas.MinimumScale = *minimum
	cfg.Atlas.PixelRange = *pxRange
	cfg.Atlas.AngleThreshold = *angle
	cfg.Atlas.Kerning = mode
	cfg.Atlas.Charset = set

	c, err := compiler.New(cfg)
	if err != nil {
		pterm.Error.Println(err)
		return 2
	}

	if fs.NArg() == 0 {
		pterm.Info.Println(fmt.Sprintf("Scanning %s for fonts", cfg.AssetRoot))
	}
	report := c.Run(fs.Args())

	for _, r := range report.Compiled {
		pterm.Success.Println(fmt.Sprintf("%s -> %s", r.Source, r.Asset))
	}
	for _, f := range report.Failed {
		pterm.Error.Println(fmt.Sprintf("%s: %v", f.Path, f.Err))
	}
	pterm.Info.Println(fmt.Sprintf("%d compiled, %d failed", len(report.Compiled), len(report.Failed)))

	if !report.OK() {
		return 1
	}
	return 0
}

// parseCharset accepts a predefined set name or "=" followed by the
// literal characters to include.
func parseCharset(s string) (atlas.Charset, error) {
	if len(s) > 1 && s[0] == '=' {
		return atlas.CharsetFromString(s[1:]), nil
	}
	if set, ok := atlas.CharsetByName(s); ok {
		return set, nil
	}
	return atlas.Charset{}, fmt.Errorf("unknown charset %q", s)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " INFO ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
