// Package surface описывает 2D-поверхность рисования, на которую выводится редактор.
// Набор операций повторяет canvas-подобный API: путь, заливка, обводка, текст,
// стек состояния и масштаб.
package surface

import "image/color"

// Surface — поверхность рисования, предоставляемая хостом (окно ebiten, raylib,
// терминал, растровое изображение).
//
// Координаты задаются в текущей системе координат поверхности; Scale умножает
// текущее преобразование, Save/Restore сохраняют и восстанавливают его вместе с
// цветами и толщиной линии.
type Surface interface {
	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cpx, cpy, x, y float64)
	BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)
	// Arc добавляет к пути дугу окружности, углы в радианах по часовой стрелке.
	Arc(x, y, r, startAngle, endAngle float64)
	Fill()
	Stroke()

	// FillText рисует строку, (x, y) — левый верхний угол текста.
	FillText(s string, x, y float64)

	Save()
	Restore()
	Scale(sx, sy float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
}
