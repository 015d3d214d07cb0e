// cmd/curvesnap/main.go
//
// curvesnap проигрывает сценарий событий указателя на редакторе без окна
// и сохраняет получившийся кадр в PNG.
//
//	curvesnap -e "down:300,200 up down:700,600 up" -o curve.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go-bezier-editor/internal/app"
	"go-bezier-editor/internal/component"
	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/script"
	"go-bezier-editor/internal/surface"
	"go-bezier-editor/pkg/render/raster"
)

type options struct {
	settings config.Settings
	script   io.Reader
	dpr      float64
	out      string
	ops      io.Writer // Если не nil, сюда выводятся операции кадра
	logger   *log.Logger
}

func snap(opts options) error {
	steps, err := script.Parse(opts.script)
	if err != nil {
		return fmt.Errorf("parse script: %w", err)
	}

	s := opts.settings
	session := app.NewSession(s, component.Viewport{
		WidthPx:  float64(s.ScreenWidth) * opts.dpr,
		HeightPx: float64(s.ScreenHeight) * opts.dpr,
		DPR:      opts.dpr,
	}, opts.logger)
	script.Run(steps, session.Editor)

	rec := surface.NewRecorder()
	session.Loop.Frame(rec)
	if opts.ops != nil {
		if _, err := rec.WriteTo(opts.ops); err != nil {
			return fmt.Errorf("write ops: %w", err)
		}
	}

	vp := session.Editor.Viewport()
	canvas, err := raster.NewCanvas(int(vp.WidthPx), int(vp.HeightPx), config.BackgroundColor)
	if err != nil {
		return err
	}
	defer canvas.Close()
	rec.Replay(canvas)
	return canvas.SavePNG(opts.out)
}

func main() {
	configPath := flag.String("config", "", "JSON settings file")
	scriptPath := flag.String("script", "", "script file, - for stdin")
	inline := flag.String("e", "", "inline script, used when -script is empty")
	out := flag.String("o", "curve.png", "output PNG")
	dpr := flag.Float64("dpr", 1, "device pixel ratio of the snapshot")
	dumpOps := flag.Bool("ops", false, "print drawing operations to stdout")
	verbose := flag.Bool("v", false, "log editor events")
	flag.Parse()

	settings, err := app.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *dpr <= 0 {
		log.Fatalf("dpr must be positive, got %g", *dpr)
	}

	opts := options{settings: settings, dpr: *dpr, out: *out}
	switch *scriptPath {
	case "":
		opts.script = strings.NewReader(*inline)
	case "-":
		opts.script = os.Stdin
	default:
		f, err := os.Open(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		opts.script = f
	}
	if *dumpOps {
		opts.ops = os.Stdout
	}
	if *verbose {
		opts.logger = log.Default()
	}

	if err := snap(opts); err != nil {
		log.Fatal(err)
	}
	log.Printf("saved %s", *out)
}
