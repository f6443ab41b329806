package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Neon Tree - Esc/Q: Quit"

	// Orientation changes are recomputed after the platform settles.
	OrientationSettleDelay = 150 * time.Millisecond

	// Star glow
	GlowBlur = 20

	// Star shape
	StarSpikes      = 5
	StarOuterRadius = 4
	StarInnerRadius = 2

	// Debug overlay
	FrameRingSize = 120
)

// DefaultPalette is pink, blue and green.
var DefaultPalette = []string{"#ff4fd8", "#3fa9f5", "#3cff88"}

var (
	ErrWindowSize = errors.New("window size must be positive")
	ErrStarShape  = errors.New("star shape must have at least 2 spikes and 0 < inner <= outer")
	ErrPalette    = errors.New("palette must not be empty")
)

// Config holds runtime settings for the tree window.
type Config struct {
	// WindowWidth is the initial window width in logical pixels
	WindowWidth int

	// WindowHeight is the initial window height in logical pixels
	WindowHeight int

	// Fullscreen starts the window in fullscreen mode
	Fullscreen bool

	// Seed seeds the star rotation source; 0 picks a time based seed
	Seed int64

	// Debug draws the statistics overlay
	Debug bool

	// Palette lists star colors as hex strings, cycled by particle index
	Palette []string

	GlowBlur float64

	StarSpikes      int
	StarOuterRadius float64
	StarInnerRadius float64

	OrientationDelay time.Duration
}

// Default returns the default configuration
func Default() Config {
	return Config{
		WindowWidth:      WindowWidth,
		WindowHeight:     WindowHeight,
		Palette:          append([]string(nil), DefaultPalette...),
		GlowBlur:         GlowBlur,
		StarSpikes:       StarSpikes,
		StarOuterRadius:  StarOuterRadius,
		StarInnerRadius:  StarInnerRadius,
		OrientationDelay: OrientationSettleDelay,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrWindowSize, c.WindowWidth, c.WindowHeight)
	}
	if c.StarSpikes < 2 || c.StarInnerRadius <= 0 || c.StarInnerRadius > c.StarOuterRadius {
		return fmt.Errorf("%w: spikes=%d outer=%g inner=%g", ErrStarShape, c.StarSpikes, c.StarOuterRadius, c.StarInnerRadius)
	}
	if len(c.Palette) == 0 {
		return ErrPalette
	}
	if c.GlowBlur < 0 {
		return fmt.Errorf("glow blur must not be negative: %g", c.GlowBlur)
	}
	if c.OrientationDelay < 0 {
		return fmt.Errorf("orientation delay must not be negative: %s", c.OrientationDelay)
	}
	return nil
}
