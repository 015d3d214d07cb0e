// internal/component/curve.go
package component

import (
	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/surface"

	"honnef.co/go/curve"
)

// CurveMode — способ отрисовки кривой, зависит только от числа контрольных точек.
type CurveMode int

const (
	ModeLine CurveMode = iota
	ModeQuadratic
	ModeCubic
)

func (m CurveMode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeQuadratic:
		return "quadratic"
	case ModeCubic:
		return "cubic"
	}
	return "unknown"
}

// Curve — кривая Безье между Start и End. Точками не владеет, собирается
// заново на каждый кадр.
type Curve struct {
	Start, End *Point
	CP1, CP2   *Point // nil, если точка ещё не создана
}

// Mode определяет тип кривой по количеству контрольных точек.
func (c Curve) Mode() CurveMode {
	switch {
	case c.CP1 != nil && c.CP2 != nil:
		return ModeCubic
	case c.CP1 != nil:
		return ModeQuadratic
	}
	return ModeLine
}

// Path возвращает кривую как путь Безье в логических пикселях.
func (c Curve) Path() curve.BezPath {
	var path curve.BezPath
	path.MoveTo(c.Start.Pt())
	switch c.Mode() {
	case ModeCubic:
		path.CubicTo(c.CP1.Pt(), c.CP2.Pt(), c.End.Pt())
	case ModeQuadratic:
		path.QuadTo(c.CP1.Pt(), c.End.Pt())
	default:
		path.LineTo(c.End.Pt())
	}
	return path
}

// Length — длина кривой в логических пикселях.
func (c Curve) Length() float64 {
	return c.Path().Arclen(config.CurveLengthAccuracy)
}

// Render обводит кривую на поверхности.
func (c Curve) Render(s surface.Surface) {
	s.Save()
	defer s.Restore()

	s.SetStrokeColor(config.CurveColor)
	s.SetLineWidth(config.CurveStrokeWidth)
	s.BeginPath()
	for el := range c.Path().Elements() {
		switch el.Kind {
		case curve.MoveToKind:
			s.MoveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			s.LineTo(el.P0.X, el.P0.Y)
		case curve.QuadToKind:
			s.QuadraticCurveTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case curve.CubicToKind:
			s.BezierCurveTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		}
	}
	s.Stroke()
}
