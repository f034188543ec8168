package compiler

import (
	"errors"
	"testing"

	"github.com/gogpu/msdffont/atlas"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if c.AssetRoot != "Fonts" || c.AssetExtension != ".msdffont" || c.Preview {
		t.Errorf("DefaultConfig() = %+v", c)
	}
	if len(c.FontExtensions) != 2 || c.FontExtensions[0] != ".ttf" || c.FontExtensions[1] != ".otf" {
		t.Errorf("FontExtensions = %v, want [.ttf .otf]", c.FontExtensions)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"empty root", func(c *Config) { c.AssetRoot = "" }, "AssetRoot"},
		{"bare extension", func(c *Config) { c.AssetExtension = "msdffont" }, "AssetExtension"},
		{"dot only", func(c *Config) { c.AssetExtension = "." }, "AssetExtension"},
		{"path in extension", func(c *Config) { c.AssetExtension = "./x" }, "AssetExtension"},
		{"no font extensions", func(c *Config) { c.FontExtensions = nil }, "FontExtensions"},
		{"bad font extension", func(c *Config) { c.FontExtensions = []string{"ttf"} }, "FontExtensions"},
		{"overlap", func(c *Config) { c.FontExtensions = []string{".MSDFFONT"} }, "FontExtensions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			var ce *ConfigError
			if err := c.Validate(); !errors.As(err, &ce) || ce.Field != tt.field {
				t.Errorf("Validate() = %v, want ConfigError on %s", err, tt.field)
			}
		})
	}
}

func TestConfigValidateAtlas(t *testing.T) {
	c := DefaultConfig()
	c.Atlas.PixelRange = -1

	var ce *atlas.ConfigError
	if err := c.Validate(); !errors.As(err, &ce) || ce.Field != "PixelRange" {
		t.Errorf("Validate() = %v, want atlas ConfigError on PixelRange", err)
	}
	if _, err := New(c); err == nil {
		t.Error("New accepted an invalid config")
	}
}
