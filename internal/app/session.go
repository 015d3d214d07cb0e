package app

import (
	"fmt"
	"log"

	"go-bezier-editor/internal/component"
	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/editor"
	"go-bezier-editor/internal/event"
)

// Session связывает редактор, диспетчер событий и цикл отрисовки.
// Каждый хост создаёт одну Session на окно.
type Session struct {
	Dispatcher *event.Dispatcher
	Editor     *editor.Editor
	Loop       *RenderLoop
}

// NewSession создаёт редактор для поверхности vp. Если logger не nil,
// события редактора пишутся в него.
func NewSession(settings config.Settings, vp component.Viewport, logger *log.Logger) *Session {
	d := event.NewDispatcher()
	ed := editor.New(settings, vp, d)
	s := &Session{
		Dispatcher: d,
		Editor:     ed,
		Loop:       NewRenderLoop(ed, d),
	}
	if logger != nil {
		d.SubscribeAll(NewLogListener(logger))
	}
	return s
}

// LoadSettings читает настройки из path или возвращает значения по умолчанию для пустого пути.
func LoadSettings(path string) (config.Settings, error) {
	if path == "" {
		return config.Default(), nil
	}
	s, err := config.Load(path)
	if err != nil {
		return s, fmt.Errorf("load settings: %w", err)
	}
	return s, nil
}

// Status — строка состояния для отладочного вывода хостов.
func (s *Session) Status() string {
	c := s.Editor.Curve()
	return fmt.Sprintf("%s | %s | length %.1f | %s", s.Editor.Stage(), c.Mode(), c.Length(), s.Editor.Affordance())
}
