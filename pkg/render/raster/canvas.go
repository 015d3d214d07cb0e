// Package raster — поверхность рисования в растровое изображение на базе gg.
// Используется там, где окна нет: снимки состояния редактора в PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/surface"
	"go-bezier-editor/pkg/render/pathbuf"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"honnef.co/go/curve"
)

// Canvas рисует в gg.Context. Первая ошибка растеризации сохраняется и
// возвращается из Err; последующие операции продолжают выполняться.
type Canvas struct {
	*pathbuf.Builder
	dc         *gg.Context
	source     *text.FontSource
	background color.Color
	err        error
}

var _ surface.Surface = (*Canvas)(nil)

// NewCanvas создаёт холст width x height физических пикселей.
// ClearRect заливает область цветом background.
func NewCanvas(width, height int, background color.Color) (*Canvas, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Canvas{
		Builder:    pathbuf.NewBuilder(),
		dc:         gg.NewContext(width, height),
		source:     source,
		background: background,
	}, nil
}

// Close освобождает ресурсы контекста и шрифта.
func (c *Canvas) Close() error {
	err := c.dc.Close()
	if cerr := c.source.Close(); err == nil {
		err = cerr
	}
	return err
}

// Err возвращает первую ошибку растеризации.
func (c *Canvas) Err() error { return c.err }

// Image возвращает текущее изображение.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG записывает изображение в w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return fmt.Errorf("canvas has a rendering error: %w", c.err)
	}
	return c.dc.EncodePNG(w)
}

// SavePNG сохраняет изображение в файл.
func (c *Canvas) SavePNG(path string) error {
	if c.err != nil {
		return fmt.Errorf("canvas has a rendering error: %w", c.err)
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func (c *Canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	x0, y0 := c.Apply(x, y)
	x1, y1 := c.Apply(x+w, y+h)
	c.dc.ClearPath()
	c.dc.SetColor(c.background)
	c.dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	c.keep(c.dc.Fill())
}

// loadPath переносит накопленный путь в gg; координаты уже в пикселях устройства.
func (c *Canvas) loadPath() {
	c.dc.ClearPath()
	for el := range c.Path().Elements() {
		switch el.Kind {
		case curve.MoveToKind:
			c.dc.MoveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			c.dc.LineTo(el.P0.X, el.P0.Y)
		case curve.QuadToKind:
			c.dc.QuadraticTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case curve.CubicToKind:
			c.dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case curve.ClosePathKind:
			c.dc.ClosePath()
		}
	}
}

func (c *Canvas) Fill() {
	c.loadPath()
	c.dc.SetColor(c.State().Fill)
	c.keep(c.dc.Fill())
}

func (c *Canvas) Stroke() {
	c.loadPath()
	c.dc.SetColor(c.State().Stroke)
	c.dc.SetLineWidth(c.DeviceLineWidth())
	c.keep(c.dc.Stroke())
}

// FillText рисует текст цветом заливки; (x, y) — верхний левый угол.
func (c *Canvas) FillText(s string, x, y float64) {
	dx, dy := c.Apply(x, y)
	c.dc.SetFont(c.source.Face(config.LabelFontSize * c.ScaleFactor()))
	c.dc.SetColor(c.State().Fill)
	c.dc.DrawStringAnchored(s, dx, dy, 0, 1)
}
