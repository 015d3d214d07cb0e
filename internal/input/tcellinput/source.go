// Package tcellinput — источник событий указателя для терминального хоста.
package tcellinput

import (
	"go-bezier-editor/internal/input"

	"github.com/gdamore/tcell/v2"
)

// Source переводит события мыши терминала в input.PointerEvent.
// Ячейка (col, row) отображается в логические пиксели своего центра.
type Source struct {
	tracker    input.Tracker
	cellWidth  float64
	cellHeight float64
}

func NewSource(cellWidth, cellHeight float64) *Source {
	return &Source{cellWidth: cellWidth, cellHeight: cellHeight}
}

// Mouse добавляет к events события, вызванные ev. Терминал не сообщает об уходе
// курсора, поэтому leave отсюда не приходит.
func (s *Source) Mouse(events []input.PointerEvent, ev *tcell.EventMouse) []input.PointerEvent {
	col, row := ev.Position()
	x := (float64(col) + 0.5) * s.cellWidth
	y := (float64(row) + 0.5) * s.cellHeight
	pressed := ev.Buttons()&tcell.Button1 != 0
	return s.tracker.Sample(events, x, y, pressed, true)
}

// Leave завершает перетаскивание, например при потере фокуса терминалом.
// Состояние кнопки сохраняется: если при возврате фокуса она всё ещё нажата,
// нового down не будет.
func (s *Source) Leave(events []input.PointerEvent) []input.PointerEvent {
	x, y, pressed, ok := s.tracker.Last()
	if !ok {
		return events
	}
	return s.tracker.Sample(events, x, y, pressed, false)
}
