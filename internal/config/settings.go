package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Settings — параметры запуска, которые можно переопределить JSON-файлом.
type Settings struct {
	ScreenWidth  int     `json:"screen_width"`
	ScreenHeight int     `json:"screen_height"`
	WindowTitle  string  `json:"window_title"`
	DragRegion   float64 `json:"drag_region"`
	PointRadius  float64 `json:"point_radius"`
	StartRelX    float64 `json:"start_rel_x"`
	StartRelY    float64 `json:"start_rel_y"`
	EndRelX      float64 `json:"end_rel_x"`
	EndRelY      float64 `json:"end_rel_y"`
}

// Default возвращает настройки из констант пакета.
func Default() Settings {
	return Settings{
		ScreenWidth:  ScreenWidth,
		ScreenHeight: ScreenHeight,
		WindowTitle:  WindowTitle,
		DragRegion:   DragRegion,
		PointRadius:  PointRadius,
		StartRelX:    StartRelX,
		StartRelY:    StartRelY,
		EndRelX:      EndRelX,
		EndRelY:      EndRelY,
	}
}

// Load читает настройки из файла. Отсутствующие поля сохраняют значения по умолчанию.
func Load(path string) (Settings, error) {
	s := Default()
	file, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(file, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// Validate отбрасывает значения, с которыми окно или захват точек не имеют смысла.
// Доли Start/End не проверяются: точки могут лежать за пределами поверхности.
func (s Settings) Validate() error {
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.ScreenWidth, s.ScreenHeight)
	}
	if s.DragRegion <= 0 {
		return errors.New("drag_region must be positive")
	}
	if s.PointRadius <= 0 {
		return errors.New("point_radius must be positive")
	}
	return nil
}
