package render

import (
	"image"
	"image/color"
	"log"
	"math"

	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/surface"
	"go-bezier-editor/pkg/render/pathbuf"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"honnef.co/go/curve"
)

// Canvas — поверхность рисования поверх *ebiten.Image.
// Путь накапливается в координатах устройства и растеризуется через vector.Path.
type Canvas struct {
	*pathbuf.Builder
	target   *ebiten.Image
	whiteImg *ebiten.Image
	fonts    *Fonts
	vs       []ebiten.Vertex
	is       []uint16
}

var _ surface.Surface = (*Canvas)(nil)

func NewCanvas(target *ebiten.Image, fonts *Fonts) *Canvas {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	return &Canvas{
		Builder:  pathbuf.NewBuilder(),
		target:   target,
		whiteImg: whiteImg,
		fonts:    fonts,
		vs:       make([]ebiten.Vertex, 0, 64),
		is:       make([]uint16, 0, 64),
	}
}

// SetTarget переключает поверхность на новое изображение (после изменения размера окна).
func (c *Canvas) SetTarget(target *ebiten.Image) {
	c.target = target
}

// Target возвращает изображение, на которое рисует Canvas.
func (c *Canvas) Target() *ebiten.Image {
	return c.target
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	x0, y0 := c.Apply(x, y)
	x1, y1 := c.Apply(x+w, y+h)
	rect := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	if rect.Canon().Intersect(c.target.Bounds()) == c.target.Bounds() {
		c.target.Clear()
		return
	}
	if sub, ok := c.target.SubImage(rect.Canon()).(*ebiten.Image); ok {
		sub.Clear()
	}
}

// vectorPath переводит накопленный путь в vector.Path.
func (c *Canvas) vectorPath() *vector.Path {
	var path vector.Path
	for el := range c.Path().Elements() {
		switch el.Kind {
		case curve.MoveToKind:
			path.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.LineToKind:
			path.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.QuadToKind:
			path.QuadTo(float32(el.P0.X), float32(el.P0.Y), float32(el.P1.X), float32(el.P1.Y))
		case curve.CubicToKind:
			path.CubicTo(float32(el.P0.X), float32(el.P0.Y), float32(el.P1.X), float32(el.P1.Y), float32(el.P2.X), float32(el.P2.Y))
		case curve.ClosePathKind:
			path.Close()
		}
	}
	return &path
}

func (c *Canvas) Fill() {
	c.vs, c.is = c.vectorPath().AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.drawTriangles(c.State().Fill)
}

func (c *Canvas) Stroke() {
	c.vs, c.is = c.vectorPath().AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:    float32(c.DeviceLineWidth()),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	c.drawTriangles(c.State().Stroke)
}

func (c *Canvas) drawTriangles(clr color.Color) {
	if len(c.is) == 0 {
		return
	}
	r, g, b, a := clr.RGBA()
	for i := range c.vs {
		c.vs[i].ColorR = float32(r) / 0xffff
		c.vs[i].ColorG = float32(g) / 0xffff
		c.vs[i].ColorB = float32(b) / 0xffff
		c.vs[i].ColorA = float32(a) / 0xffff
	}
	c.target.DrawTriangles(c.vs, c.is, c.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// FillText рисует текст цветом заливки; (x, y) — верхний левый угол.
func (c *Canvas) FillText(s string, x, y float64) {
	face, err := c.fonts.Face(config.LabelFontSize * c.ScaleFactor())
	if err != nil {
		log.Printf("FillText: %v", err)
		return
	}
	dx, dy := c.Apply(x, y)
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(c.target, s, face, int(dx), int(dy)+ascent, c.State().Fill)
}
