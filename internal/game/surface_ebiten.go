package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/neon-tree/internal/spiral"
)

var whiteSubImage *ebiten.Image

// fillSource returns a white pixel used as the texture for solid fills.
func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// screenSurface draws onto an ebiten screen image. Logical units are scaled
// by the pixel ratio.
type screenSurface struct {
	dst   *ebiten.Image
	ratio float64
	glows *glowCache

	vertices []ebiten.Vertex
	indices  []uint16
}

func newScreenSurface(glows *glowCache) *screenSurface {
	return &screenSurface{ratio: 1, glows: glows}
}

// bind targets the surface at this repaint's screen.
func (s *screenSurface) bind(dst *ebiten.Image) {
	s.dst = dst
}

func (s *screenSurface) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	if ratio != s.ratio {
		s.glows.reset()
	}
	s.ratio = ratio
}

func (s *screenSurface) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(x*s.ratio), int(y*s.ratio), pixelSize(x+w, s.ratio), pixelSize(y+h, s.ratio))
	bounds := s.dst.Bounds()
	if r.Intersect(bounds) == bounds {
		s.dst.Clear()
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Clear()
}

func (s *screenSurface) FillPath(path []spiral.Point, style Style) {
	if len(path) < 3 {
		return
	}
	if style.GlowBlur > 0 && style.GlowColor != nil {
		s.drawGlow(path, style)
	}

	var p vector.Path
	p.MoveTo(float32(path[0].X*s.ratio), float32(path[0].Y*s.ratio))
	for _, pt := range path[1:] {
		p.LineTo(float32(pt.X*s.ratio), float32(pt.Y*s.ratio))
	}
	p.Close()

	s.vertices, s.indices = p.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	r, g, b, a := vertexColor(style.Fill)
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}
	s.dst.DrawTriangles(s.vertices, s.indices, fillSource(), nil)
}

// drawGlow stamps the halo sprite centered on the path's bounding box.
func (s *screenSurface) drawGlow(path []spiral.Point, style Style) {
	minX, minY, maxX, maxY := path[0].X, path[0].Y, path[0].X, path[0].Y
	for _, pt := range path[1:] {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	cx, cy := (minX+maxX)/2*s.ratio, (minY+maxY)/2*s.ratio

	radius := pixelSize(style.GlowBlur, s.ratio)
	sprite := s.glows.sprite(toNRGBA(style.GlowColor), radius)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(radius), cy-float64(radius))
	op.Blend = ebiten.BlendLighter
	s.dst.DrawImage(sprite, op)
}
