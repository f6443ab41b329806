package game

import (
	"image/color"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{75 * time.Minute, "75:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{-1, 0}, {0.25, 0.25}, {3, 1}} {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%g) = %g", tt.in, got)
		}
	}
}

func TestVertexColor(t *testing.T) {
	r, g, b, a := vertexColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	if r != 1 || g != 0 || b != 0 || a != 1 {
		t.Errorf("opaque red = %v %v %v %v", r, g, b, a)
	}

	// premultiplied
	r, _, _, a = vertexColor(color.NRGBA{R: 255, A: 0})
	if r != 0 || a != 0 {
		t.Errorf("transparent red = %v, %v", r, a)
	}

	if r, g, b, a := vertexColor(nil); r+g+b+a != 0 {
		t.Error("nil color should be transparent")
	}
}

func TestToNRGBA(t *testing.T) {
	if got := toNRGBA(color.RGBA{R: 10, G: 20, B: 30, A: 255}); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("toNRGBA = %v", got)
	}
	if got := toNRGBA(nil); got != (color.NRGBA{}) {
		t.Errorf("toNRGBA(nil) = %v", got)
	}
}

func TestPixelSize(t *testing.T) {
	if got := pixelSize(800, 1.5); got != 1200 {
		t.Errorf("pixelSize(800, 1.5) = %d", got)
	}
	if got := pixelSize(101, 1.25); got != 127 {
		t.Errorf("pixelSize(101, 1.25) = %d", got)
	}
}
