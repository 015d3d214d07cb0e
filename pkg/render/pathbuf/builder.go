// Package pathbuf — общая часть поверхностей с немедленным режимом отрисовки:
// стек состояния (преобразование, цвета, толщина линии) и путь, накопленный
// в координатах устройства.
package pathbuf

import (
	"image/color"
	"math"

	"honnef.co/go/curve"
)

// State — сохраняемое Save/Restore состояние поверхности.
type State struct {
	Transform curve.Affine
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64
}

// Builder реализует операции пути и состояния интерфейса surface.Surface.
// Конкретная поверхность встраивает его и добавляет ClearRect, Fill, Stroke и FillText.
type Builder struct {
	state State
	saved []State
	path  curve.BezPath
	cur   curve.Point
	open  bool // Есть текущая точка пути
}

// NewBuilder создаёт построитель с тождественным преобразованием,
// чёрными цветами и линией толщиной 1, как у canvas по умолчанию.
func NewBuilder() *Builder {
	return &Builder{
		state: State{
			Transform: curve.Identity,
			Fill:      color.Black,
			Stroke:    color.Black,
			LineWidth: 1,
		},
	}
}

// State возвращает текущее состояние.
func (b *Builder) State() State { return b.state }

// Path возвращает накопленный путь в координатах устройства.
func (b *Builder) Path() curve.BezPath { return b.path }

// Apply переводит точку из пользовательских координат в координаты устройства.
func (b *Builder) Apply(x, y float64) (float64, float64) {
	return curve.Pt(x, y).Transform(b.state.Transform).Splat()
}

// ScaleFactor — средний коэффициент масштаба текущего преобразования,
// используется для толщины линий и размера шрифта.
func (b *Builder) ScaleFactor() float64 {
	t := b.state.Transform
	return math.Sqrt(math.Abs(t.N0*t.N3 - t.N1*t.N2))
}

// DeviceLineWidth — толщина линии в пикселях устройства.
func (b *Builder) DeviceLineWidth() float64 {
	return b.state.LineWidth * b.ScaleFactor()
}

func (b *Builder) Save() {
	b.saved = append(b.saved, b.state)
}

func (b *Builder) Restore() {
	if len(b.saved) == 0 {
		return
	}
	b.state = b.saved[len(b.saved)-1]
	b.saved = b.saved[:len(b.saved)-1]
}

func (b *Builder) Scale(sx, sy float64) {
	b.state.Transform = b.state.Transform.Mul(curve.Scale(sx, sy))
}

func (b *Builder) SetFillColor(c color.Color)   { b.state.Fill = c }
func (b *Builder) SetStrokeColor(c color.Color) { b.state.Stroke = c }
func (b *Builder) SetLineWidth(w float64)       { b.state.LineWidth = w }

func (b *Builder) BeginPath() {
	b.path = b.path[:0]
	b.open = false
}

func (b *Builder) pt(x, y float64) curve.Point {
	return curve.Pt(x, y).Transform(b.state.Transform)
}

func (b *Builder) MoveTo(x, y float64) {
	b.cur = b.pt(x, y)
	b.path.MoveTo(b.cur)
	b.open = true
}

// ensure начинает подпуть, если текущей точки нет: canvas в этом случае
// трактует первую точку сегмента как moveTo.
func (b *Builder) ensure(p curve.Point) {
	if !b.open {
		b.path.MoveTo(p)
		b.cur = p
		b.open = true
	}
}

func (b *Builder) LineTo(x, y float64) {
	p := b.pt(x, y)
	b.ensure(p)
	b.path.LineTo(p)
	b.cur = p
}

func (b *Builder) QuadraticCurveTo(cpx, cpy, x, y float64) {
	c := b.pt(cpx, cpy)
	b.ensure(c)
	p := b.pt(x, y)
	b.path.QuadTo(c, p)
	b.cur = p
}

func (b *Builder) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	c1 := b.pt(cp1x, cp1y)
	b.ensure(c1)
	c2 := b.pt(cp2x, cp2y)
	p := b.pt(x, y)
	b.path.CubicTo(c1, c2, p)
	b.cur = p
}

// Arc добавляет дугу, соединяя её с текущей точкой прямой, как canvas.
func (b *Builder) Arc(x, y, r, startAngle, endAngle float64) {
	sweep := endAngle - startAngle
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}
	arc := curve.Arc{
		Center:     curve.Pt(x, y),
		Radii:      curve.Vec(r, r),
		StartAngle: startAngle,
		SweepAngle: sweep,
	}
	for el := range arc.PathElements(arcTolerance) {
		el = el.Transform(b.state.Transform)
		if el.Kind == curve.MoveToKind {
			if b.open {
				b.path.LineTo(el.P0)
			} else {
				b.path.MoveTo(el.P0)
				b.open = true
			}
			b.cur = el.P0
			continue
		}
		b.path.Push(el)
		if p, ok := el.EndPoint(); ok {
			b.cur = p
		}
	}
}

const arcTolerance = 0.1

// ClosedPath возвращает копию пути, где каждый незамкнутый подпуть замкнут,
// как это делает заливка canvas.
func (b *Builder) ClosedPath() curve.BezPath {
	closed := make(curve.BezPath, 0, len(b.path)+1)
	open := false
	for _, el := range b.path {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				closed = append(closed, curve.ClosePath())
			}
			open = false
		case curve.ClosePathKind:
			open = false
		default:
			open = true
		}
		closed = append(closed, el)
	}
	if open {
		closed = append(closed, curve.ClosePath())
	}
	return closed
}

// Polylines разбивает путь на ломаные с заданной точностью, по одной на подпуть.
func (b *Builder) Polylines(tolerance float64) [][]curve.Point {
	var lines [][]curve.Point
	var line []curve.Point
	for el := range curve.Flatten(b.path.Elements(), tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			if len(line) > 0 {
				lines = append(lines, line)
			}
			line = []curve.Point{el.P0}
		case curve.LineToKind:
			line = append(line, el.P0)
		case curve.ClosePathKind:
			if len(line) > 0 {
				line = append(line, line[0])
			}
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}
