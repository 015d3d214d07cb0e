// cmd/editor_tui/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-bezier-editor/internal/app"
	"go-bezier-editor/internal/component"
	"go-bezier-editor/internal/input"
	"go-bezier-editor/internal/input/tcellinput"
	"go-bezier-editor/pkg/render/cells"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "JSON settings file")
	logPath := flag.String("log", "", "write editor events to this file")
	flag.Parse()

	settings, err := app.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// Терминал занят экраном, поэтому события пишутся только в файл.
	var logger *log.Logger
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()
	screen.Clear()

	w, h := cells.PixelSize(screen)
	session := app.NewSession(settings, component.Viewport{WidthPx: w, HeightPx: h, DPR: 1}, logger)
	canvas := cells.NewCanvas(screen)
	source := tcellinput.NewSource(cells.CellWidth, cells.CellHeight)

	var events []input.PointerEvent
	for {
		if session.Loop.Frame(canvas) {
			drawStatus(screen, session.Status()+" | Esc to quit")
		}
		screen.Show()

		events = events[:0]
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			w, h := cells.PixelSize(screen)
			session.Editor.Resize(w, h, 1)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return
			}
		case *tcell.EventMouse:
			events = source.Mouse(events, ev)
		case *tcell.EventFocus:
			if !ev.Focused {
				events = source.Leave(events)
			}
		case nil:
			return
		}
		for _, ev := range events {
			session.Editor.Handle(ev)
		}
	}
}

// drawStatus пишет строку состояния в последнюю строку экрана.
func drawStatus(screen tcell.Screen, status string) {
	_, rows := screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range status {
		screen.SetContent(col, rows-1, r, nil, style)
		col++
	}
}
