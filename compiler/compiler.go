package compiler

import (
	"fmt"

	"github.com/gogpu/msdffont"
	"github.com/gogpu/msdffont/atlas"
	"github.com/gogpu/msdffont/fontload"
)

// Compiler turns font files into msdffont assets.
type Compiler struct {
	config Config
}

// New returns a Compiler for cfg.
func New(cfg Config) (*Compiler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Compiler{config: cfg}, nil
}

// Config returns the compiler's configuration.
func (c *Compiler) Config() Config {
	return c.config
}

// CompileFace generates the atlas for face and assembles it in memory.
func (c *Compiler) CompileFace(face *fontload.Face) (*msdffont.FontData, error) {
	gen, err := atlas.Generate(face, c.config.Atlas)
	if err != nil {
		return nil, err
	}
	return msdffont.Assemble(gen)
}

// CompileFile compiles the font at path and writes the asset next to it.
// It returns the asset path. A failed preview is logged, not returned.
func (c *Compiler) CompileFile(path string) (string, error) {
	log := msdffont.Logger()

	face, err := fontload.Open(path)
	if err != nil {
		return "", err
	}
	data, err := c.CompileFace(face)
	if err != nil {
		return "", fmt.Errorf("compiler: %s: %w", path, err)
	}

	out := AssetPath(path, c.config.AssetExtension)
	if err := msdffont.WriteFile(out, data); err != nil {
		return "", err
	}
	log.Info("wrote font asset",
		"source", path, "asset", out, "font", face.Name(),
		"glyphs", len(data.Glyphs), "kernPairs", len(data.KernPairs),
		"width", data.BitmapWidth, "height", data.BitmapHeight)

	if c.config.Preview {
		png := AssetPath(path, ".png")
		if err := WritePreview(png, data); err != nil {
			log.Warn("preview not written", "path", png, "err", err)
		} else {
			log.Info("wrote atlas preview", "path", png)
		}
	}
	return out, nil
}

// Result is one successfully compiled font.
type Result struct {
	Source string
	Asset  string
}

// Failure is one font that could not be compiled.
type Failure struct {
	Path string
	Err  error
}

// Report summarizes a batch compile.
type Report struct {
	Compiled []Result
	Failed   []Failure
}

// OK reports whether every file compiled.
func (r *Report) OK() bool {
	return len(r.Failed) == 0
}

// Run compiles each path in order. With no paths it compiles every font
// file under AssetRoot. A failing file is recorded and the batch goes on.
func (c *Compiler) Run(paths []string) *Report {
	log := msdffont.Logger()
	report := &Report{}

	if len(paths) == 0 {
		found, err := Scan(c.config.AssetRoot, c.config.FontExtensions)
		if err != nil {
			report.Failed = append(report.Failed, Failure{Path: c.config.AssetRoot, Err: err})
			return report
		}
		log.Debug("scanned asset root", "root", c.config.AssetRoot, "fonts", len(found))
		paths = found
	}

	for _, path := range paths {
		out, err := c.CompileFile(path)
		if err != nil {
			log.Warn("skipping font", "path", path, "err", err)
			report.Failed = append(report.Failed, Failure{Path: path, Err: err})
			continue
		}
		report.Compiled = append(report.Compiled, Result{Source: path, Asset: out})
	}
	return report
}
