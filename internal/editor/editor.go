// Package editor — контроллер взаимодействия: создание контрольных точек,
// выбор точки для перетаскивания и её перемещение.
package editor

import (
	"go-bezier-editor/internal/component"
	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/event"
	"go-bezier-editor/internal/input"
)

// Stage — сколько контрольных точек уже создано
type Stage int

const (
	NoControlPoints Stage = iota
	OneControlPoint
	TwoControlPoints // Конечное состояние, новых точек больше не будет
)

func (s Stage) String() string {
	switch s {
	case NoControlPoints:
		return "no control points"
	case OneControlPoint:
		return "one control point"
	case TwoControlPoints:
		return "two control points"
	}
	return "unknown"
}

// Affordance — подсказка курсором, что произойдёт при нажатии
type Affordance int

const (
	AffordanceNone Affordance = iota
	AffordanceMove            // Точку можно тащить или она уже тащится
	AffordanceAdd             // Нажатие создаст контрольную точку
)

func (a Affordance) String() string {
	switch a {
	case AffordanceMove:
		return "move"
	case AffordanceAdd:
		return "add"
	}
	return "none"
}

// Editor хранит всё состояние редактора. Создаётся один раз и используется
// только из потока событий хоста.
type Editor struct {
	viewport   *component.Viewport
	start, end *component.Point
	cp1, cp2   *component.Point
	active     *component.Point // Точка, которую сейчас тащат, или nil

	dragRegion  float64
	pointRadius float64
	dispatcher  *event.Dispatcher
}

// New создаёт редактор с точками Start и End. dispatcher может быть nil.
func New(settings config.Settings, vp component.Viewport, dispatcher *event.Dispatcher) *Editor {
	e := &Editor{
		viewport:    &vp,
		dragRegion:  settings.DragRegion,
		pointRadius: settings.PointRadius,
		dispatcher:  dispatcher,
	}
	e.start = e.newPoint(settings.StartRelX, settings.StartRelY, config.StartLabel)
	e.end = e.newPoint(settings.EndRelX, settings.EndRelY, config.EndLabel)
	return e
}

func (e *Editor) newPoint(relX, relY float64, label string) *component.Point {
	p := component.NewPoint(relX, relY, label, e.viewport)
	p.Radius = e.pointRadius
	p.Region = e.dragRegion
	return p
}

// Stage возвращает текущее состояние по числу контрольных точек.
func (e *Editor) Stage() Stage {
	switch {
	case e.cp2 != nil:
		return TwoControlPoints
	case e.cp1 != nil:
		return OneControlPoint
	}
	return NoControlPoints
}

func (e *Editor) Viewport() component.Viewport { return *e.viewport }
func (e *Editor) Start() *component.Point      { return e.start }
func (e *Editor) End() *component.Point        { return e.end }
func (e *Editor) CP1() *component.Point        { return e.cp1 }
func (e *Editor) CP2() *component.Point        { return e.cp2 }

// Active возвращает перетаскиваемую точку или nil.
func (e *Editor) Active() *component.Point { return e.active }

// Points возвращает существующие точки в порядке отрисовки.
func (e *Editor) Points() []*component.Point {
	points := []*component.Point{e.start, e.end}
	if e.cp1 != nil {
		points = append(points, e.cp1)
	}
	if e.cp2 != nil {
		points = append(points, e.cp2)
	}
	return points
}

// Curve собирает кривую из текущих точек.
func (e *Editor) Curve() component.Curve {
	return component.Curve{Start: e.start, End: e.end, CP1: e.cp1, CP2: e.cp2}
}

// Handle обрабатывает нормализованное событие указателя.
func (e *Editor) Handle(ev input.PointerEvent) {
	switch ev.Phase {
	case input.PhaseDown:
		e.down(ev.X, ev.Y)
	case input.PhaseMove:
		e.move(ev.X, ev.Y)
	case input.PhaseUp, input.PhaseLeave:
		e.release()
	}
}

// Resize обновляет размеры поверхности. Доли точек не меняются.
func (e *Editor) Resize(widthPx, heightPx, dpr float64) {
	e.viewport.WidthPx = widthPx
	e.viewport.HeightPx = heightPx
	e.viewport.DPR = dpr
	e.dispatch(event.SurfaceResized, event.ResizeData{WidthPx: widthPx, HeightPx: heightPx, DPR: dpr})
}

// Affordance определяет подсказку курсора по последнему событию.
func (e *Editor) Affordance() Affordance {
	if e.active != nil {
		return AffordanceMove
	}
	for _, p := range []*component.Point{e.cp1, e.cp2} {
		if p != nil && p.Draggable {
			return AffordanceMove
		}
	}
	if e.Stage() != TwoControlPoints {
		return AffordanceAdd
	}
	return AffordanceNone
}

func (e *Editor) down(x, y float64) {
	if e.active != nil {
		return
	}
	relX, relY := e.viewport.ToFraction(x, y)
	switch e.Stage() {
	case NoControlPoints:
		e.cp1 = e.newPoint(relX, relY, config.CP1Label)
		e.dispatchPoint(event.PointCreated, e.cp1)
	case OneControlPoint:
		e.cp2 = e.newPoint(relX, relY, config.CP2Label)
		e.dispatchPoint(event.PointCreated, e.cp2)
	case TwoControlPoints:
		if target := e.dragTarget(x, y); target != nil {
			e.active = target
			e.dispatchPoint(event.DragStarted, target)
		}
	}
}

// dragTarget выбирает ближайшую контрольную точку в пределах dragRegion.
// При равенстве расстояний выигрывает CP1.
func (e *Editor) dragTarget(x, y float64) *component.Point {
	nearer, farther := e.cp1, e.cp2
	if e.cp2.DistanceTo(x, y) < e.cp1.DistanceTo(x, y) {
		nearer, farther = e.cp2, e.cp1
	}
	if nearer.DistanceTo(x, y) < e.dragRegion {
		return nearer
	}
	if farther.DistanceTo(x, y) < e.dragRegion {
		return farther
	}
	return nil
}

func (e *Editor) move(x, y float64) {
	if e.active != nil {
		e.active.SetPosition(e.viewport.ToFraction(x, y))
		e.dispatchPoint(event.PointMoved, e.active)
	}
	if e.refreshHighlight(x, y) {
		e.dispatch(event.HighlightMoved, nil)
	}
}

// refreshHighlight пересчитывает флаги Draggable контрольных точек.
// Подсвечивается не более одной точки: кандидат считается по порогу,
// второй точке флаг принудительно сбрасывается. Возвращает true, если
// какой-либо флаг изменился.
func (e *Editor) refreshHighlight(x, y float64) bool {
	before1, before2 := draggable(e.cp1), draggable(e.cp2)
	off := false

	switch {
	case e.cp1 == nil:
	case e.cp2 == nil:
		e.cp1.UpdateDraggable(x, y, nil)
	default:
		candidate, other := e.cp1, e.cp2
		if e.active != nil {
			candidate = e.active
			if candidate == e.cp2 {
				other = e.cp1
			}
		} else if e.cp2.DistanceTo(x, y) < e.cp1.DistanceTo(x, y) {
			candidate, other = e.cp2, e.cp1
		}
		candidate.UpdateDraggable(x, y, nil)
		other.UpdateDraggable(x, y, &off)
	}

	return before1 != draggable(e.cp1) || before2 != draggable(e.cp2)
}

func draggable(p *component.Point) bool {
	return p != nil && p.Draggable
}

func (e *Editor) release() {
	if e.active == nil {
		return
	}
	p := e.active
	e.active = nil
	e.dispatchPoint(event.DragEnded, p)
}

func (e *Editor) dispatchPoint(t event.EventType, p *component.Point) {
	e.dispatch(t, event.PointData{Label: p.Label, RelX: p.RelX, RelY: p.RelY})
}

func (e *Editor) dispatch(t event.EventType, data interface{}) {
	e.dispatcher.Dispatch(event.Event{Type: t, Data: data})
}
