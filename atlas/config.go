package atlas

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for the atlas package.
var (
	// ErrAtlasTooLarge is returned when the packed atlas would exceed
	// MaxAtlasSize on a side.
	ErrAtlasTooLarge = errors.New("atlas: glyphs do not fit the maximum atlas size")

	// ErrUnknownKerningMode is returned by ParseKerningMode.
	ErrUnknownKerningMode = errors.New("atlas: unknown kerning mode")
)

// MaxAtlasSize is the largest atlas side Generate will produce, in pixels.
const MaxAtlasSize = 16384

// KerningMode selects how pair kerning is extracted from the font.
type KerningMode int

const (
	// KerningShaping shapes every glyph pair with a HarfBuzz shaper,
	// picking up both GPOS and kern table adjustments.
	KerningShaping KerningMode = iota

	// KerningTable reads pair adjustments through the sfnt parser.
	KerningTable

	// KerningNone records no kerning.
	KerningNone
)

// String returns the mode's flag spelling.
func (m KerningMode) String() string {
	switch m {
	case KerningShaping:
		return "shaping"
	case KerningTable:
		return "table"
	case KerningNone:
		return "none"
	default:
		return fmt.Sprintf("KerningMode(%d)", int(m))
	}
}

// ParseKerningMode parses "shaping", "table" or "none".
func ParseKerningMode(s string) (KerningMode, error) {
	switch strings.ToLower(s) {
	case "shaping":
		return KerningShaping, nil
	case "table":
		return KerningTable, nil
	case "none":
		return KerningNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKerningMode, s)
	}
}

// Config holds atlas generation parameters.
type Config struct {
	// Charset is the set of codepoints to render. Codepoints the font
	// lacks are skipped.
	// Default: ASCII()
	Charset Charset

	// FontScale multiplies every glyph metric. At 1 the output is in ems.
	// Default: 1.0
	FontScale float64

	// MinimumScale is the rendering resolution in pixels per em.
	// Default: 64
	MinimumScale float64

	// PixelRange is the width of the distance range in atlas pixels.
	// Default: 2
	PixelRange float64

	// AngleThreshold is the corner detection angle in radians.
	// Default: 3.0
	AngleThreshold float64

	// Threads is the number of rendering goroutines.
	// Default: 4
	Threads int

	// Spacing is the gap between glyph boxes in pixels.
	// Default: 0
	Spacing int

	// Kerning selects the kerning source.
	// Default: KerningShaping
	Kerning KerningMode
}

// DefaultConfig returns the default generation parameters.
func DefaultConfig() Config {
	return Config{
		Charset:        ASCII(),
		FontScale:      1.0,
		MinimumScale:   64,
		PixelRange:     2,
		AngleThreshold: 3.0,
		Threads:        4,
		Spacing:        0,
		Kerning:        KerningShaping,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if !(c.FontScale > 0) || math.IsInf(c.FontScale, 0) {
		return &ConfigError{Field: "FontScale", Reason: "must be positive and finite"}
	}
	if !(c.MinimumScale >= 1) || c.MinimumScale > 4096 {
		return &ConfigError{Field: "MinimumScale", Reason: "must be in [1, 4096]"}
	}
	if !(c.PixelRange > 0) || c.PixelRange > 64 {
		return &ConfigError{Field: "PixelRange", Reason: "must be in (0, 64]"}
	}
	if !(c.AngleThreshold > 0) || c.AngleThreshold > math.Pi {
		return &ConfigError{Field: "AngleThreshold", Reason: "must be in (0, pi]"}
	}
	if c.Threads < 1 {
		return &ConfigError{Field: "Threads", Reason: "must be at least 1"}
	}
	if c.Spacing < 0 {
		return &ConfigError{Field: "Spacing", Reason: "must be non-negative"}
	}
	if c.Kerning < KerningShaping || c.Kerning > KerningNone {
		return &ConfigError{Field: "Kerning", Reason: "unknown mode " + c.Kerning.String()}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
