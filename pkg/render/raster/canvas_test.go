package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"go-bezier-editor/internal/config"
)

func TestCanvasDrawsCurve(t *testing.T) {
	c, err := NewCanvas(100, 60, config.BackgroundColor)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	c.ClearRect(0, 0, 100, 60)
	c.SetStrokeColor(color.RGBA{255, 0, 0, 255})
	c.SetLineWidth(4)
	c.BeginPath()
	c.MoveTo(10, 30)
	c.LineTo(90, 30)
	c.Stroke()
	if err := c.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	img := c.Image()
	r, g, b, _ := img.At(50, 30).RGBA()
	if r>>8 < 200 || g>>8 > 60 || b>>8 > 60 {
		t.Errorf("pixel on the line = (%d, %d, %d), want red", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(50, 5).RGBA()
	if r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("background pixel = (%d, %d, %d), want white", r>>8, g>>8, b>>8)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 100 || decoded.Bounds().Dy() != 60 {
		t.Errorf("decoded size = %v", decoded.Bounds())
	}
}

func TestCanvasScaledFill(t *testing.T) {
	c, err := NewCanvas(40, 40, config.BackgroundColor)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	c.ClearRect(0, 0, 40, 40)
	c.Scale(2, 2)
	c.SetFillColor(config.DraggableColor)
	c.BeginPath()
	c.Arc(10, 10, 5, 0, 6.283185307179586)
	c.Fill()

	_, g, _, _ := c.Image().At(20, 20).RGBA()
	if g>>8 < 100 {
		t.Errorf("center of scaled circle not filled, g=%d", g>>8)
	}
	r, _, _, _ := c.Image().At(2, 2).RGBA()
	if r>>8 < 250 {
		t.Errorf("corner should stay background, r=%d", r>>8)
	}
}
