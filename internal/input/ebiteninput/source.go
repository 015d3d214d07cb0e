// Package ebiteninput — источник событий указателя для хоста ebiten.
package ebiteninput

import (
	"go-bezier-editor/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source опрашивает мышь и первое касание ebiten и выдаёт input.PointerEvent.
// Координаты ebiten приходят в пикселях Layout (физических), события — в логических.
type Source struct {
	mouse    input.Tracker
	touch    input.Tracker
	touchID  ebiten.TouchID
	touching bool
	lastTX   float64
	lastTY   float64
	events   []input.PointerEvent
}

func NewSource() *Source {
	return &Source{}
}

// Poll собирает события текущего кадра. width/height — размер Layout.
// Возвращаемый срез переиспользуется следующим вызовом.
func (s *Source) Poll(dpr float64, width, height int) []input.PointerEvent {
	s.events = s.events[:0]
	s.pollTouch(dpr)
	if s.touching {
		// Пока палец на экране, эмуляция мыши из касаний не должна давать второй поток событий.
		return s.events
	}

	mx, my := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && mx >= 0 && my >= 0 && mx < width && my < height
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.events = s.mouse.Sample(s.events, float64(mx)/dpr, float64(my)/dpr, pressed, inside)
	return s.events
}

func (s *Source) pollTouch(dpr float64) {
	if s.touching {
		if inpututil.IsTouchJustReleased(s.touchID) {
			s.events = s.touch.Sample(s.events, s.lastTX, s.lastTY, false, true)
			s.touching = false
			return
		}
		tx, ty := ebiten.TouchPosition(s.touchID)
		s.lastTX, s.lastTY = float64(tx)/dpr, float64(ty)/dpr
		s.events = s.touch.Sample(s.events, s.lastTX, s.lastTY, true, true)
		return
	}

	ids := inpututil.AppendJustPressedTouchIDs(nil)
	if len(ids) == 0 {
		return
	}
	s.touchID = ids[0]
	s.touching = true
	tx, ty := ebiten.TouchPosition(s.touchID)
	s.lastTX, s.lastTY = float64(tx)/dpr, float64(ty)/dpr
	s.events = s.touch.Sample(s.events, s.lastTX, s.lastTY, true, true)
}
