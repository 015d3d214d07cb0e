package event

const (
	PointCreated   EventType = "PointCreated"   // Создана контрольная точка
	DragStarted    EventType = "DragStarted"    // Выбрана точка для перетаскивания
	PointMoved     EventType = "PointMoved"     // Перетаскиваемая точка сдвинута
	DragEnded      EventType = "DragEnded"      // Перетаскивание завершено
	HighlightMoved EventType = "HighlightMoved" // Изменилась подсветка точек
	SurfaceResized EventType = "SurfaceResized" // Изменился размер поверхности
)

// AllTypes — все события, которые публикует редактор
var AllTypes = []EventType{PointCreated, DragStarted, PointMoved, DragEnded, HighlightMoved, SurfaceResized}

// PointData — данные событий о точке
type PointData struct {
	Label      string
	RelX, RelY float64
}

// ResizeData — данные события изменения размера
type ResizeData struct {
	WidthPx, HeightPx, DPR float64
}
