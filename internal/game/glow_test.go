package game

import (
	"image/color"
	"testing"
)

func TestGlowImage(t *testing.T) {
	tests := []struct {
		name   string
		c      color.NRGBA
		radius int
	}{
		{"Pink 20", color.NRGBA{R: 0xff, G: 0x4f, B: 0xd8, A: 0xff}, 20},
		{"Green 40 hidpi", color.NRGBA{R: 0x3c, G: 0xff, B: 0x88, A: 0xff}, 40},
		{"Tiny", color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := glowImage(tt.c, tt.radius)
			r := max(tt.radius, 1)
			if img.Bounds().Dx() != 2*r+1 || img.Bounds().Dy() != 2*r+1 {
				t.Fatalf("bounds = %v", img.Bounds())
			}

			center := img.NRGBAAt(r, r)
			if center.R != tt.c.R || center.G != tt.c.G || center.B != tt.c.B {
				t.Errorf("center color = %v", center)
			}
			peak := glowPeak
			if want := uint8(peak*255 + 0.5); center.A != want {
				t.Errorf("center alpha = %d, want %d", center.A, want)
			}
			if a := img.NRGBAAt(0, r).A; a != 0 {
				t.Errorf("edge alpha = %d, want 0", a)
			}
			if a := img.NRGBAAt(0, 0).A; a != 0 {
				t.Errorf("corner alpha = %d, want 0", a)
			}

			prev := center.A
			for x := r + 1; x < 2*r+1; x++ {
				a := img.NRGBAAt(x, r).A
				if a > prev {
					t.Fatalf("alpha rises at x=%d", x)
				}
				prev = a
			}
		})
	}
}
