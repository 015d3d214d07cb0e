// cmd/editor_raylib/main.go
package main

import (
	"flag"
	"log"

	"go-bezier-editor/internal/app"
	"go-bezier-editor/internal/component"
	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/editor"
	"go-bezier-editor/internal/input"
	"go-bezier-editor/pkg/render/rlsurface"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylib сам масштабирует окно на high-DPI экранах, поэтому редактор
// работает в экранных координатах с DPR 1.
const dpr = 1.0

var cursors = map[editor.Affordance]int32{
	editor.AffordanceNone: int32(rl.MouseCursorDefault),
	editor.AffordanceMove: int32(rl.MouseCursorResizeAll),
	editor.AffordanceAdd:  int32(rl.MouseCursorCrosshair),
}

// pointer собирает события мыши или первого касания за кадр.
func pointer(tracker *input.Tracker, events []input.PointerEvent) []input.PointerEvent {
	if rl.GetTouchPointCount() > 0 {
		p := rl.GetTouchPosition(0)
		return tracker.Sample(events, float64(p.X), float64(p.Y), true, true)
	}
	p := rl.GetMousePosition()
	pressed := rl.IsMouseButtonDown(rl.MouseButtonLeft)
	return tracker.Sample(events, float64(p.X), float64(p.Y), pressed, rl.IsCursorOnScreen())
}

func main() {
	configPath := flag.String("config", "", "JSON settings file")
	verbose := flag.Bool("v", false, "log editor events")
	flag.Parse()

	settings, err := app.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	var logger *log.Logger
	if *verbose {
		logger = log.Default()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(settings.ScreenWidth), int32(settings.ScreenHeight), settings.WindowTitle+" | raylib")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	width, height := rl.GetScreenWidth(), rl.GetScreenHeight()
	session := app.NewSession(settings, component.Viewport{
		WidthPx:  float64(width),
		HeightPx: float64(height),
		DPR:      dpr,
	}, logger)
	canvas := rlsurface.NewCanvas(config.BackgroundColor)

	// Кадр рисуется в текстуру только после событий редактора, а на экран
	// каждый кадр выводится готовая текстура.
	target := rl.LoadRenderTexture(int32(width), int32(height))
	defer func() { rl.UnloadRenderTexture(target) }()

	var (
		tracker input.Tracker
		events  []input.PointerEvent
		cursor  = editor.AffordanceNone
	)
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			width, height = rl.GetScreenWidth(), rl.GetScreenHeight()
			session.Editor.Resize(float64(width), float64(height), dpr)
			rl.UnloadRenderTexture(target)
			target = rl.LoadRenderTexture(int32(width), int32(height))
			session.Loop.Invalidate()
		}

		events = pointer(&tracker, events[:0])
		for _, ev := range events {
			session.Editor.Handle(ev)
		}
		if aff := session.Editor.Affordance(); aff != cursor {
			rl.SetMouseCursor(cursors[aff])
			cursor = aff
		}

		if session.Loop.Dirty() {
			rl.BeginTextureMode(target)
			session.Loop.Frame(canvas)
			rl.EndTextureMode()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rlsurface.ToColor(config.BackgroundColor))
		// Текстуры рендера в OpenGL перевёрнуты по вертикали.
		src := rl.NewRectangle(0, 0, float32(target.Texture.Width), -float32(target.Texture.Height))
		rl.DrawTextureRec(target.Texture, src, rl.NewVector2(0, 0), rl.White)
		rl.DrawText(session.Status(), 10, int32(height)-20, 10, rl.DarkGray)
		rl.EndDrawing()
	}
}
