package game

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// toNRGBA converts any color to non-premultiplied 8-bit RGBA.
func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// vertexColor returns c as premultiplied float components for ebiten vertices.
func vertexColor(c color.Color) (r, g, b, a float32) {
	if c == nil {
		return 0, 0, 0, 0
	}
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

// pixelSize maps a logical length onto the pixel buffer.
func pixelSize(logical, ratio float64) int {
	return int(math.Ceil(logical * ratio))
}
