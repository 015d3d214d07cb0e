// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	WindowTitle  = "Bezier Editor"

	DragRegion  = 50.0 // Радиус захвата точки курсором, в логических пикселях
	PointRadius = 5.0

	LabelOffsetY  = 5.0  // Подпись точки под кружком
	OffsetLabelY  = 15.0 // Смещение относительно Start, строкой ниже
	LabelFontSize = 10

	CurveStrokeWidth = 1.0

	StartRelX = .25
	StartRelY = .5
	EndRelX   = .75
	EndRelY   = .5

	CurveLengthAccuracy = 0.1
	FlattenTolerance    = 0.25
)

// Подписи точек
const (
	StartLabel = "Start"
	EndLabel   = "End"
	CP1Label   = "CP1"
	CP2Label   = "CP2"
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	PointColor      = color.RGBA{0, 0, 0, 255}
	DraggableColor  = color.RGBA{0, 128, 0, 255} // Зелёный, точку можно тащить
	CurveColor      = color.RGBA{0, 0, 0, 255}
	TextColor       = color.RGBA{0, 0, 0, 255}
)
