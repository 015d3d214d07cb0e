// cmd/editor/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"go-bezier-editor/internal/app"
	"go-bezier-editor/internal/component"
	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/editor"
	"go-bezier-editor/internal/input/ebiteninput"
	"go-bezier-editor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type AppEditor struct {
	session *app.Session
	source  *ebiteninput.Source
	fonts   *render.Fonts
	canvas  *render.Canvas

	width, height int     // Размер Layout в физических пикселях
	dpr           float64 // Текущий device pixel ratio
	resized       bool    // Layout сообщил новый размер, Update ещё не применил
	cursor        ebiten.CursorShapeType
}

func (a *AppEditor) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if a.resized {
		a.applyResize()
	}
	if a.canvas == nil {
		return nil
	}

	ed := a.session.Editor
	for _, ev := range a.source.Poll(a.dpr, a.width, a.height) {
		ed.Handle(ev)
	}
	a.updateCursor(ed.Affordance())
	return nil
}

// applyResize переносит размер окна в редактор и пересоздаёт изображение холста.
func (a *AppEditor) applyResize() {
	a.resized = false
	a.session.Editor.Resize(float64(a.width), float64(a.height), a.dpr)

	img := ebiten.NewImage(a.width, a.height)
	if a.canvas == nil {
		a.canvas = render.NewCanvas(img, a.fonts)
	} else {
		a.canvas.Target().Deallocate()
		a.canvas.SetTarget(img)
	}
	a.session.Loop.Invalidate()
}

func (a *AppEditor) updateCursor(aff editor.Affordance) {
	shape := ebiten.CursorShapeDefault
	switch aff {
	case editor.AffordanceMove:
		shape = ebiten.CursorShapeMove
	case editor.AffordanceAdd:
		shape = ebiten.CursorShapeCrosshair
	}
	if shape != a.cursor {
		ebiten.SetCursorShape(shape)
		a.cursor = shape
	}
}

func (a *AppEditor) Draw(screen *ebiten.Image) {
	if a.canvas == nil {
		return
	}
	a.session.Loop.Frame(a.canvas)
	screen.Fill(config.BackgroundColor)
	screen.DrawImage(a.canvas.Target(), nil)
	ebitenutil.DebugPrint(screen, a.session.Status())
}

// Layout рисует в физических пикселях, чтобы кривая оставалась чёткой на high-DPI экранах.
func (a *AppEditor) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := ebiten.Monitor().DeviceScaleFactor()
	w := int(float64(outsideWidth) * dpr)
	h := int(float64(outsideHeight) * dpr)
	if w != a.width || h != a.height || dpr != a.dpr {
		a.width, a.height, a.dpr = w, h, dpr
		a.resized = true
	}
	return w, h
}

func main() {
	configPath := flag.String("config", "", "JSON settings file")
	pprofAddr := flag.String("pprof", "", "address for net/http/pprof, e.g. localhost:6060")
	verbose := flag.Bool("v", false, "log editor events")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	settings, err := app.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	fonts, err := render.NewFonts()
	if err != nil {
		log.Fatal(err)
	}

	var logger *log.Logger
	if *verbose {
		logger = log.Default()
	}
	vp := component.Viewport{
		WidthPx:  float64(settings.ScreenWidth),
		HeightPx: float64(settings.ScreenHeight),
		DPR:      1,
	}
	editorApp := &AppEditor{
		session: app.NewSession(settings, vp, logger),
		source:  ebiteninput.NewSource(),
		fonts:   fonts,
		cursor:  ebiten.CursorShapeDefault,
	}

	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle(settings.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(editorApp); err != nil {
		log.Fatal(err)
	}
}
