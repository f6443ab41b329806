package config

import (
	"errors"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestDefaultPaletteIsCopied(t *testing.T) {
	c := Default()
	c.Palette[0] = "#000000"
	if DefaultPalette[0] != "#ff4fd8" {
		t.Errorf("DefaultPalette mutated through Config: %q", DefaultPalette[0])
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"Zero width", func(c *Config) { c.WindowWidth = 0 }, ErrWindowSize},
		{"Negative height", func(c *Config) { c.WindowHeight = -1 }, ErrWindowSize},
		{"One spike", func(c *Config) { c.StarSpikes = 1 }, ErrStarShape},
		{"Inner larger than outer", func(c *Config) { c.StarInnerRadius = 5 }, ErrStarShape},
		{"Zero inner", func(c *Config) { c.StarInnerRadius = 0 }, ErrStarShape},
		{"Empty palette", func(c *Config) { c.Palette = nil }, ErrPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateRejectsNegativeDurations(t *testing.T) {
	c := Default()
	c.OrientationDelay = -1
	if err := c.Validate(); err == nil {
		t.Error("Expected error for negative orientation delay")
	}

	c = Default()
	c.GlowBlur = -2
	if err := c.Validate(); err == nil {
		t.Error("Expected error for negative glow blur")
	}
}
