package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/neon-tree/internal/spiral"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// hudLines formats the debug overlay.
func hudLines(scene *spiral.Scene, loop *Loop, fps float64, frameTime, uptime time.Duration) []string {
	lines := make([]string, 0, 3)
	if scene != nil {
		lines = append(lines, fmt.Sprintf("scene %d  %.0fx%.0f @%gx  stars %d  turns %d",
			scene.Generation, scene.Viewport.Width, scene.Viewport.Height, scene.Viewport.PixelRatio,
			len(scene.Particles), scene.Profile.Turns))
	} else {
		lines = append(lines, "scene -")
	}
	lines = append(lines,
		fmt.Sprintf("fps %.1f  frame %.2fms  frames %d  %s", fps, float64(frameTime.Microseconds())/1000, loop.Frames(), loop.State()),
		"up "+formatDuration(uptime),
	)
	return lines
}

// drawHUD prints lines in the top left corner, in buffer pixels.
func drawHUD(screen *ebiten.Image, lines []string, scale float64) {
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(6, 4+float64(i)*16)
		op.GeoM.Scale(scale, scale)
		op.ColorScale.ScaleWithColor(color.RGBA{R: 200, G: 210, B: 230, A: 255})
		text.Draw(screen, line, hudFace, op)
	}
}
