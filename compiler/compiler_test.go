package compiler

import (
	"errors"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/msdffont"
	"github.com/gogpu/msdffont/atlas"
	"github.com/gogpu/msdffont/internal/testfont"
)

// --- Test Suite Preparation ------------------------------------------------

type CompilerTestEnviron struct {
	suite.Suite
	dir string
	cfg Config
}

// listen for 'go test' command --> run test methods
func TestCompilerPipeline(t *testing.T) {
	suite.Run(t, new(CompilerTestEnviron))
}

// run before each test: a fresh asset root holding one good font
func (env *CompilerTestEnviron) SetupTest() {
	env.dir = env.T().TempDir()
	env.cfg = DefaultConfig()
	env.cfg.AssetRoot = env.dir
	env.cfg.Atlas.Charset = atlas.CharsetFromString("AVHo ")
	env.cfg.Atlas.MinimumScale = 16
	env.cfg.Atlas.Threads = 2

	env.writeFile("GoRegular.ttf", goregular.TTF)
}

func (env *CompilerTestEnviron) writeFile(name string, data []byte) string {
	path := filepath.Join(env.dir, name)
	env.Require().NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	env.Require().NoError(os.WriteFile(path, data, 0o644))
	return path
}

func (env *CompilerTestEnviron) compiler() *Compiler {
	c, err := New(env.cfg)
	env.Require().NoError(err, "expected valid test config")
	return c
}

// --- Tests -----------------------------------------------------------------

func (env *CompilerTestEnviron) TestCompileFile() {
	env.cfg.Atlas.Kerning = atlas.KerningNone
	src := filepath.Join(env.dir, "GoRegular.ttf")
	out, err := env.compiler().CompileFile(src)
	env.Require().NoError(err)
	env.Equal(filepath.Join(env.dir, "GoRegular.msdffont"), out)

	f, err := msdffont.Load(out)
	env.Require().NoError(err, "expected the asset to load back")
	env.Equal(5, f.GlyphCount())
	for _, r := range "AVHo " {
		env.True(f.HasGlyph(r), "expected glyph %q", r)
	}

	// Advance round-trips through the asset unchanged.
	rec, ok := f.GlyphRecord('H')
	env.Require().True(ok)
	k, ok := f.Kerning('H', 'o')
	env.Require().True(ok)
	env.Equal(rec.Advance, k, "kerning disabled: pair advance is the glyph advance")

	_, w, h := f.Bitmap()
	env.Equal(w, h, "expected a square atlas")
	env.NotZero(w)

	_, err = os.Stat(filepath.Join(env.dir, "GoRegular.png"))
	env.True(errors.Is(err, fs.ErrNotExist), "no preview unless asked")
}

func (env *CompilerTestEnviron) TestCompileFileShapingKerning() {
	kerned, err := testfont.KernedGoRegular(testfont.Pair{Left: 'A', Right: 'V', Value: -150})
	env.Require().NoError(err)
	src := env.writeFile("Kerned.ttf", kerned)
	env.cfg.Atlas.Kerning = atlas.KerningShaping

	out, err := env.compiler().CompileFile(src)
	env.Require().NoError(err)
	f, err := msdffont.Load(out)
	env.Require().NoError(err)

	env.Equal(1, f.KernPairCount(), "only the spliced pair kerns")
	rec, ok := f.GlyphRecord('A')
	env.Require().True(ok)
	pair := float32(-150.0 / 2048.0) // Go Regular has 2048 units per em
	k, ok := f.Kerning('A', 'V')
	env.Require().True(ok)
	env.InDelta(rec.Advance+pair, k, 1e-6, "pair advance is glyph advance plus adjustment")
	env.Less(k, rec.Advance, "A,V pulls together")

	k, ok = f.Kerning('V', 'A')
	env.Require().True(ok)
	vrec, _ := f.GlyphRecord('V')
	env.Equal(vrec.Advance, k, "unkerned pair is the plain advance")
}

func (env *CompilerTestEnviron) TestCompileFileMatchesCompileFace() {
	c := env.compiler()
	src := filepath.Join(env.dir, "GoRegular.ttf")
	out, err := c.CompileFile(src)
	env.Require().NoError(err)

	onDisk, err := msdffont.ReadFile(out)
	env.Require().NoError(err)

	face := openFace(env.T(), src)
	inMemory, err := c.CompileFace(face)
	env.Require().NoError(err)

	env.Equal(inMemory.GlyphIndex, onDisk.GlyphIndex)
	env.Equal(inMemory.Glyphs, onDisk.Glyphs)
	env.Equal(inMemory.KernPairs, onDisk.KernPairs)
	env.Equal(inMemory.Bitmap, onDisk.Bitmap)
}

func (env *CompilerTestEnviron) TestPreview() {
	env.cfg.Preview = true
	src := filepath.Join(env.dir, "GoRegular.ttf")
	_, err := env.compiler().CompileFile(src)
	env.Require().NoError(err)

	f, err := os.Open(filepath.Join(env.dir, "GoRegular.png"))
	env.Require().NoError(err, "expected a preview image")
	defer f.Close()
	img, err := png.Decode(f)
	env.Require().NoError(err)

	data, err := msdffont.ReadFile(filepath.Join(env.dir, "GoRegular.msdffont"))
	env.Require().NoError(err)
	env.Equal(int(data.BitmapWidth), img.Bounds().Dx())
	env.Equal(int(data.BitmapHeight), img.Bounds().Dy())
}

func (env *CompilerTestEnviron) TestPreviewFailureIsNotFatal() {
	env.cfg.Preview = true
	// A directory where the preview should go makes png creation fail.
	env.Require().NoError(os.Mkdir(filepath.Join(env.dir, "GoRegular.png"), 0o755))

	out, err := env.compiler().CompileFile(filepath.Join(env.dir, "GoRegular.ttf"))
	env.Require().NoError(err, "preview failure must not fail the compile")
	_, err = os.Stat(out)
	env.NoError(err)
}

func (env *CompilerTestEnviron) TestRunScansAssetRoot() {
	env.writeFile("nested/deeper/Copy.TTF", goregular.TTF)
	env.writeFile("notes.txt", []byte("not a font"))

	report := env.compiler().Run(nil)
	env.True(report.OK(), "unexpected failures: %v", report.Failed)
	env.Len(report.Compiled, 2)
	for _, r := range report.Compiled {
		_, err := os.Stat(r.Asset)
		env.NoError(err, "expected asset %s", r.Asset)
	}
	_, err := os.Stat(filepath.Join(env.dir, "nested", "deeper", "Copy.msdffont"))
	env.NoError(err)
}

func (env *CompilerTestEnviron) TestRunContinuesPastBadFont() {
	bad := env.writeFile("Broken.ttf", []byte("definitely not a font"))
	good := filepath.Join(env.dir, "GoRegular.ttf")
	missing := filepath.Join(env.dir, "Missing.ttf")

	report := env.compiler().Run([]string{bad, good, missing})
	env.False(report.OK())
	env.Require().Len(report.Compiled, 1)
	env.Equal(good, report.Compiled[0].Source)

	env.Require().Len(report.Failed, 2)
	env.Equal(bad, report.Failed[0].Path)
	env.Equal(missing, report.Failed[1].Path)
	for _, f := range report.Failed {
		var openErr *msdffont.FontOpenError
		env.True(errors.As(f.Err, &openErr), "expected FontOpenError, got %v", f.Err)
	}

	_, err := os.Stat(AssetPath(bad, ".msdffont"))
	env.True(errors.Is(err, fs.ErrNotExist), "no asset for a bad font")
}

func (env *CompilerTestEnviron) TestRunMissingRoot() {
	env.cfg.AssetRoot = filepath.Join(env.dir, "nope")
	report := env.compiler().Run(nil)
	env.Require().Len(report.Failed, 1)
	env.Equal(env.cfg.AssetRoot, report.Failed[0].Path)
	env.True(errors.Is(report.Failed[0].Err, fs.ErrNotExist))
}
