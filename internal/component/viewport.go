// internal/component/viewport.go
package component

import "go-bezier-editor/internal/utils"

// Viewport — размеры поверхности рисования в физических пикселях и device pixel ratio.
// Точки хранят ссылку на общий Viewport, поэтому изменение размера окна
// пересчитывает их пиксельные позиции без изменения долей.
type Viewport struct {
	WidthPx  float64
	HeightPx float64
	DPR      float64
}

// LogicalSize возвращает размер поверхности в логических пикселях.
func (v *Viewport) LogicalSize() (float64, float64) {
	return v.WidthPx / v.DPR, v.HeightPx / v.DPR
}

// ToFraction переводит логические пиксели события в доли поверхности.
func (v *Viewport) ToFraction(x, y float64) (float64, float64) {
	return utils.PixelToFraction(x, v.WidthPx, v.DPR), utils.PixelToFraction(y, v.HeightPx, v.DPR)
}

// ToPixel переводит доли поверхности в логические пиксели.
func (v *Viewport) ToPixel(relX, relY float64) (float64, float64) {
	return utils.FractionToPixel(relX, v.WidthPx, v.DPR), utils.FractionToPixel(relY, v.HeightPx, v.DPR)
}
