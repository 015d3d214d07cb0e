// Package rlsurface — поверхность рисования поверх raylib.
// Вызывать между rl.BeginDrawing и rl.EndDrawing.
package rlsurface

import (
	"image/color"

	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/surface"
	"go-bezier-editor/pkg/render/pathbuf"

	rl "github.com/gen2brain/raylib-go/raylib"
	"honnef.co/go/curve"
)

const textSpacing = 1

// Canvas рисует текущим raylib-контекстом.
type Canvas struct {
	*pathbuf.Builder
	background rl.Color
}

var _ surface.Surface = (*Canvas)(nil)

func NewCanvas(background color.Color) *Canvas {
	return &Canvas{Builder: pathbuf.NewBuilder(), background: ToColor(background)}
}

// ToColor переводит color.Color в rl.Color.
func ToColor(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

func vec(p curve.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	x0, y0 := c.Apply(x, y)
	x1, y1 := c.Apply(x+w, y+h)
	rl.DrawRectangleRec(rl.NewRectangle(float32(x0), float32(y0), float32(x1-x0), float32(y1-y0)), c.background)
}

// Fill закрашивает подпути через rl.DrawTriangleFan. Корректно для выпуклых
// фигур, а других поверхность не заливает.
func (c *Canvas) Fill() {
	clr := ToColor(c.State().Fill)
	for _, poly := range c.Polylines(config.FlattenTolerance) {
		if fan := FanPoints(poly); len(fan) >= 3 {
			rl.DrawTriangleFan(fan, clr)
		}
	}
}

func (c *Canvas) Stroke() {
	clr := ToColor(c.State().Stroke)
	width := float32(c.DeviceLineWidth())
	for _, line := range c.Polylines(config.FlattenTolerance) {
		for i := 1; i < len(line); i++ {
			rl.DrawLineEx(vec(line[i-1]), vec(line[i]), width, clr)
		}
	}
}

// FillText рисует шрифтом raylib по умолчанию, (x, y) — левый верхний угол.
func (c *Canvas) FillText(s string, x, y float64) {
	dx, dy := c.Apply(x, y)
	size := float32(config.LabelFontSize * c.ScaleFactor())
	rl.DrawTextEx(rl.GetFontDefault(), s, rl.NewVector2(float32(dx), float32(dy)), size, textSpacing, ToColor(c.State().Fill))
}

// FanPoints готовит ломаную для rl.DrawTriangleFan: убирает замыкающую точку
// и упорядочивает вершины против часовой стрелки на экране. Первая точка
// остаётся центром веера.
func FanPoints(poly []curve.Point) []rl.Vector2 {
	if len(poly) > 1 && poly[0] == poly[len(poly)-1] {
		poly = poly[:len(poly)-1]
	}
	if len(poly) < 3 {
		return nil
	}
	outline := make(curve.BezPath, 0, len(poly)+1)
	outline.MoveTo(poly[0])
	for _, p := range poly[1:] {
		outline.LineTo(p)
	}
	outline.ClosePath()

	points := make([]rl.Vector2, len(poly))
	points[0] = vec(poly[0])
	// В координатах с осью Y вниз положительная площадь означает обход по часовой стрелке.
	cw := outline.SignedArea() > 0
	for i, p := range poly[1:] {
		if cw {
			points[len(poly)-1-i] = vec(p)
		} else {
			points[i+1] = vec(p)
		}
	}
	return points
}
