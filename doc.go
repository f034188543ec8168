// Package msdffont compiles multi-channel signed distance field glyph
// atlases into a compact binary asset and loads them back for rendering.
//
// # Overview
//
// A font asset holds everything a text renderer needs to draw glyphs from
// one texture: a per-glyph placement transform, the baseline advance, a
// table of kerning corrections and the RGBA8 atlas bitmap. The asset is
// produced once, offline, and read many times at runtime.
//
// # Quick Start
//
//	f, err := msdffont.Load("Fonts/Inter.msdffont")
//	if err != nil {
//		return err
//	}
//	g, ok := f.GlyphRecord('A')
//	if !ok {
//		return nil
//	}
//	sx, sy := g.Transform.QuadScale()
//	next, _ := f.Kerning('A', 'V')
//
// # Producing Assets
//
// Generator output is converted with Assemble and stored with WriteFile.
// The compiler package drives the whole pipeline from font files on disk;
// the cmd/msdffontc command wraps it.
//
// # Format
//
// The layout is native-endian with no padding and no version header. See
// Encode for the field order. Decode checks every read against the buffer
// end and returns a *CorruptDataError instead of a partial result.
//
// # Coordinate System
//
// Texture coordinates are normalized to [0, 1] of the atlas with y growing
// upward from the bottom row. Quad sizes, bearings, advances and kerning
// are in em units scaled by the compile-time font scale.
//
// # Logging
//
// The package is silent by default. Install a *slog.Logger with SetLogger
// to receive debug and info records from the codec and the compiler.
package msdffont

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
