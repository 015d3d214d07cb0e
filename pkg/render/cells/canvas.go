// Package cells — поверхность рисования в ячейках терминала (tcell).
// Логический пиксель отображается в ячейку делением на CellWidth/CellHeight.
package cells

import (
	"image/color"
	"math"

	"go-bezier-editor/internal/surface"
	"go-bezier-editor/pkg/render/pathbuf"

	"github.com/gdamore/tcell/v2"
	"honnef.co/go/curve"
)

// Размер ячейки в логических пикселях. Высота равна расстоянию между строками
// подписей точки, поэтому имя и смещение всегда попадают в соседние строки.
const (
	CellWidth  = 5
	CellHeight = 10
)

const (
	strokeGlyph = '·'
	fillGlyph   = '●'
	tolerance   = 0.5
)

// Canvas рисует в tcell.Screen.
type Canvas struct {
	*pathbuf.Builder
	screen tcell.Screen
}

var _ surface.Surface = (*Canvas)(nil)

func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{Builder: pathbuf.NewBuilder(), screen: screen}
}

// PixelSize возвращает размер экрана в логических пикселях.
func PixelSize(screen tcell.Screen) (float64, float64) {
	w, h := screen.Size()
	return float64(w * CellWidth), float64(h * CellHeight)
}

// CellCenter переводит ячейку в логические пиксели её центра.
func CellCenter(col, row int) (float64, float64) {
	return float64(col*CellWidth) + CellWidth/2.0, float64(row*CellHeight) + CellHeight/2.0
}

func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

func style(c color.Color) tcell.Style {
	r, g, b, _ := c.RGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
}

func (c *Canvas) set(col, row int, ch rune, st tcell.Style) {
	w, h := c.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	c.screen.SetContent(col, row, ch, nil, st)
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	x0, y0 := c.Apply(x, y)
	x1, y1 := c.Apply(x+w, y+h)
	c0, r0 := cellOf(x0, y0)
	c1, r1 := cellOf(x1, y1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			c.set(col, row, ' ', tcell.StyleDefault)
		}
	}
}

// Stroke отмечает ячейки, через которые проходит путь.
func (c *Canvas) Stroke() {
	st := style(c.State().Stroke)
	step := CellWidth / 2.0
	for _, line := range c.Polylines(tolerance) {
		for i := 1; i < len(line); i++ {
			a, b := line[i-1], line[i]
			n := int(math.Ceil(a.Distance(b)/step)) + 1
			for k := 0; k <= n; k++ {
				p := a.Lerp(b, float64(k)/float64(n))
				col, row := cellOf(p.X, p.Y)
				c.set(col, row, strokeGlyph, st)
			}
		}
	}
}

// Fill закрашивает ячейки, центр которых внутри пути по правилу nonzero.
// Фигура меньше ячейки (кружок точки) отмечается в ячейке центра своей рамки.
func (c *Canvas) Fill() {
	path := c.ClosedPath()
	if !path.HasSegments() {
		return
	}
	st := style(c.State().Fill)
	bbox := path.BoundingBox()
	c0, r0 := cellOf(bbox.X0, bbox.Y0)
	c1, r1 := cellOf(bbox.X1, bbox.Y1)
	filled := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if path.Winding(curve.Pt(CellCenter(col, row))) != 0 {
				c.set(col, row, fillGlyph, st)
				filled = true
			}
		}
	}
	if !filled {
		center := bbox.Center()
		col, row := cellOf(center.X, center.Y)
		c.set(col, row, fillGlyph, st)
	}
}

// FillText пишет строку начиная с ячейки, содержащей (x, y).
func (c *Canvas) FillText(s string, x, y float64) {
	col, row := cellOf(c.Apply(x, y))
	st := style(c.State().Fill)
	for _, ch := range s {
		c.set(col, row, ch, st)
		col++
	}
}
