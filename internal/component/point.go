// internal/component/point.go
package component

import (
	"fmt"
	"math"

	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/surface"

	"honnef.co/go/curve"
)

// Point — точка кривой, хранящая положение долями размера поверхности.
// RelX/RelY — единственный источник истины, пиксельные координаты всегда вычисляются.
type Point struct {
	RelX, RelY float64
	Label      string
	Radius     float64
	Region     float64 // Радиус захвата для Draggable
	Draggable  bool    // Курсор рядом с точкой на последнем событии движения

	viewport *Viewport
}

// NewPoint создаёт точку, привязанную к viewport.
func NewPoint(relX, relY float64, label string, vp *Viewport) *Point {
	return &Point{
		RelX:     relX,
		RelY:     relY,
		Label:    label,
		Radius:   config.PointRadius,
		Region:   config.DragRegion,
		viewport: vp,
	}
}

// PixelPosition возвращает положение точки в логических пикселях.
func (p *Point) PixelPosition() (float64, float64) {
	return p.viewport.ToPixel(p.RelX, p.RelY)
}

// Pt возвращает пиксельное положение как точку geometry-пакета.
func (p *Point) Pt() curve.Point {
	return curve.Pt(p.PixelPosition())
}

// DistanceTo — евклидово расстояние от точки до (px, py) в пикселях.
func (p *Point) DistanceTo(px, py float64) float64 {
	return p.Pt().Distance(curve.Pt(px, py))
}

// UpdateDraggable пересчитывает флаг Draggable по расстоянию до курсора.
// Если forced не nil, его значение используется вместо порога.
func (p *Point) UpdateDraggable(px, py float64, forced *bool) {
	if forced != nil {
		p.Draggable = *forced
		return
	}
	p.Draggable = p.DistanceTo(px, py) < p.Region
}

// SetPosition перезаписывает доли без проверки диапазона.
func (p *Point) SetPosition(relX, relY float64) {
	p.RelX = relX
	p.RelY = relY
}

// Render рисует кружок точки, её подпись и смещение относительно ref.
func (p *Point) Render(s surface.Surface, ref *Point) {
	x, y := p.PixelPosition()
	refX, refY := ref.PixelPosition()

	s.Save()
	defer s.Restore()

	if p.Draggable {
		s.SetFillColor(config.DraggableColor)
	} else {
		s.SetFillColor(config.PointColor)
	}
	s.BeginPath()
	s.Arc(x, y, p.Radius, 0, 2*math.Pi)
	s.Fill()

	s.SetFillColor(config.TextColor)
	s.FillText(p.Label, x, y+p.Radius+config.LabelOffsetY)
	dx, dy := OffsetFrom(x, y, refX, refY)
	s.FillText(fmt.Sprintf("%d %d", dx, dy), x, y+p.Radius+config.OffsetLabelY)
}

// OffsetFrom возвращает смещение (x, y) от (refX, refY) с отбрасыванием дробной части.
func OffsetFrom(x, y, refX, refY float64) (int, int) {
	return int(x - refX), int(y - refY)
}
