// internal/app/render_loop.go
package app

import (
	"log"

	"go-bezier-editor/internal/editor"
	"go-bezier-editor/internal/event"
	"go-bezier-editor/internal/surface"
)

// Redraw полностью перерисовывает поверхность: очистка, точки, кривая.
func Redraw(s surface.Surface, ed *editor.Editor) {
	vp := ed.Viewport()
	w, h := vp.LogicalSize()

	s.Save()
	defer s.Restore()

	s.Scale(vp.DPR, vp.DPR)
	s.ClearRect(0, 0, w, h)

	start := ed.Start()
	for _, p := range ed.Points() {
		p.Render(s, start)
	}
	ed.Curve().Render(s)
}

// RenderLoop перерисовывает поверхность только после событий редактора.
type RenderLoop struct {
	editor *editor.Editor
	dirty  bool
	frames int
}

// NewRenderLoop подписывается на все события редактора. Первый кадр рисуется всегда.
func NewRenderLoop(ed *editor.Editor, dispatcher *event.Dispatcher) *RenderLoop {
	rl := &RenderLoop{editor: ed, dirty: true}
	dispatcher.SubscribeAll(rl)
	return rl
}

func (rl *RenderLoop) OnEvent(event.Event) {
	rl.dirty = true
}

// Invalidate принудительно помечает кадр устаревшим (например, хост потерял содержимое окна).
func (rl *RenderLoop) Invalidate() {
	rl.dirty = true
}

// Dirty сообщает, нужна ли перерисовка.
func (rl *RenderLoop) Dirty() bool {
	return rl.dirty
}

// Frames — сколько раз поверхность была перерисована.
func (rl *RenderLoop) Frames() int {
	return rl.frames
}

// Frame перерисовывает s, если состояние изменилось. Возвращает true, если рисовал.
func (rl *RenderLoop) Frame(s surface.Surface) bool {
	if !rl.dirty {
		return false
	}
	Redraw(s, rl.editor)
	rl.dirty = false
	rl.frames++
	return true
}

// LogListener пишет события редактора в стандартный лог.
type LogListener struct {
	logger *log.Logger
}

func NewLogListener(logger *log.Logger) *LogListener {
	if logger == nil {
		logger = log.Default()
	}
	return &LogListener{logger: logger}
}

func (l *LogListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.PointData:
		l.logger.Printf("%s: %s at (%.3f, %.3f)", e.Type, data.Label, data.RelX, data.RelY)
	case event.ResizeData:
		l.logger.Printf("%s: %gx%g px, dpr %g", e.Type, data.WidthPx, data.HeightPx, data.DPR)
	default:
		l.logger.Printf("%s", e.Type)
	}
}
