// Package input приводит события мыши и касаний разных хостов к одному виду.
package input

import "fmt"

// Phase — фаза события указателя
type Phase int

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
	PhaseLeave
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseLeave:
		return "leave"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// PointerEvent — событие указателя в логических пикселях поверхности.
type PointerEvent struct {
	X, Y  float64
	Phase Phase
}

func (e PointerEvent) String() string {
	return fmt.Sprintf("%s(%g,%g)", e.Phase, e.X, e.Y)
}

// Handler принимает нормализованные события.
type Handler interface {
	Handle(ev PointerEvent)
}

// Tracker превращает опрос состояния указателя (нажат ли, где, внутри ли окна)
// в поток событий down/move/up/leave. Хосты с опросом ввода (ebiten, raylib)
// вызывают Sample раз в кадр.
type Tracker struct {
	pressed bool
	inside  bool
	lastX   float64
	lastY   float64
	hasLast bool
}

// Sample сравнивает новое состояние указателя с предыдущим и добавляет
// получившиеся события к events.
func (t *Tracker) Sample(events []PointerEvent, x, y float64, pressed, inside bool) []PointerEvent {
	moved := !t.hasLast || x != t.lastX || y != t.lastY

	switch {
	case !inside:
		if t.inside {
			events = append(events, PointerEvent{X: t.lastX, Y: t.lastY, Phase: PhaseLeave})
		}
		// Кнопка, отпущенная за пределами окна, не должна начинать новое нажатие при возврате.
		t.pressed = pressed
		t.inside = false
		return events
	case pressed && !t.pressed:
		if moved {
			events = append(events, PointerEvent{X: x, Y: y, Phase: PhaseMove})
		}
		events = append(events, PointerEvent{X: x, Y: y, Phase: PhaseDown})
	case !pressed && t.pressed:
		if moved {
			events = append(events, PointerEvent{X: x, Y: y, Phase: PhaseMove})
		}
		events = append(events, PointerEvent{X: x, Y: y, Phase: PhaseUp})
	case moved:
		events = append(events, PointerEvent{X: x, Y: y, Phase: PhaseMove})
	}

	t.pressed = pressed
	t.inside = true
	t.lastX, t.lastY, t.hasLast = x, y, true
	return events
}

// Last возвращает последнее положение указателя внутри окна и состояние кнопки.
// ok равно false, пока Sample ни разу не видел указатель.
func (t *Tracker) Last() (x, y float64, pressed, ok bool) {
	return t.lastX, t.lastY, t.pressed, t.hasLast
}
