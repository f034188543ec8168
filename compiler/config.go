package compiler

import (
	"strings"

	"github.com/gogpu/msdffont/atlas"
)

// Config holds compile pipeline settings.
type Config struct {
	// AssetRoot is the directory scanned when Run gets no paths.
	// Default: "Fonts"
	AssetRoot string

	// AssetExtension replaces the font file's extension on output.
	// Default: ".msdffont"
	AssetExtension string

	// FontExtensions lists the extensions Scan picks up, compared without
	// regard to case.
	// Default: [".ttf", ".otf"]
	FontExtensions []string

	// Preview also writes the atlas bitmap as <name>.png next to the asset.
	// Default: false
	Preview bool

	// Atlas configures glyph rendering, packing and kerning.
	Atlas atlas.Config
}

// DefaultConfig returns the default pipeline settings.
func DefaultConfig() Config {
	return Config{
		AssetRoot:      "Fonts",
		AssetExtension: ".msdffont",
		FontExtensions: []string{".ttf", ".otf"},
		Atlas:          atlas.DefaultConfig(),
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.AssetRoot == "" {
		return &ConfigError{Field: "AssetRoot", Reason: "must not be empty"}
	}
	if !validExt(c.AssetExtension) {
		return &ConfigError{Field: "AssetExtension", Reason: "must start with '.' and name an extension"}
	}
	if len(c.FontExtensions) == 0 {
		return &ConfigError{Field: "FontExtensions", Reason: "must list at least one extension"}
	}
	for _, ext := range c.FontExtensions {
		if !validExt(ext) {
			return &ConfigError{Field: "FontExtensions", Reason: "invalid extension " + ext}
		}
		if strings.EqualFold(ext, c.AssetExtension) {
			return &ConfigError{Field: "FontExtensions", Reason: "overlaps AssetExtension " + ext}
		}
	}
	return c.Atlas.Validate()
}

func validExt(ext string) bool {
	return len(ext) > 1 && ext[0] == '.' && !strings.ContainsAny(ext, `/\`)
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "compiler: invalid config." + e.Field + ": " + e.Reason
}
