package render

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts хранит разобранный шрифт и кэш начертаний по размеру в пикселях.
type Fonts struct {
	tt    *opentype.Font
	faces map[int]font.Face
}

// NewFonts разбирает встроенный шрифт Go Regular.
func NewFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Fonts{tt: tt, faces: make(map[int]font.Face)}, nil
}

// Face возвращает начертание размером size пикселей (округляется до целого).
func (f *Fonts) Face(size float64) (font.Face, error) {
	px := int(math.Round(size))
	if px < 1 {
		px = 1
	}
	if face, ok := f.faces[px]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.tt, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %dpx font face: %w", px, err)
	}
	f.faces[px] = face
	return face, nil
}
