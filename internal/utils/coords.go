package utils

// PixelToFraction переводит пиксельную координату события в долю размера поверхности.
// dimPx — размер поверхности в физических пикселях, dpr — device pixel ratio.
func PixelToFraction(px, dimPx, dpr float64) float64 {
	return px / dimPx * dpr
}

// FractionToPixel выполняет операцию, обратную PixelToFraction.
func FractionToPixel(rel, dimPx, dpr float64) float64 {
	return rel * dimPx / dpr
}
