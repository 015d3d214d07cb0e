package surface

import (
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecorderReplay(t *testing.T) {
	src := NewRecorder()
	src.Save()
	src.Scale(2, 2)
	src.SetFillColor(color.RGBA{0, 128, 0, 255})
	src.BeginPath()
	src.Arc(10, 20, 5, 0, 6.28)
	src.Fill()
	src.FillText("CP1", 10, 30)
	src.BeginPath()
	src.MoveTo(0, 0)
	src.BezierCurveTo(1, 2, 3, 4, 5, 6)
	src.Stroke()
	src.Restore()

	dst := NewRecorder()
	src.Replay(dst)
	if d := cmp.Diff(src.Ops, dst.Ops); d != "" {
		t.Error(d)
	}
}

func TestRecorderFilterAndString(t *testing.T) {
	r := NewRecorder()
	r.MoveTo(1, 2)
	r.LineTo(3, 4)
	r.FillText("Start", 1, 2)
	r.SetStrokeColor(color.Black)

	if got := len(r.Filter(OpLineTo)); got != 1 {
		t.Errorf("Filter(OpLineTo) returned %d ops, want 1", got)
	}
	var b strings.Builder
	if _, err := r.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	want := "moveTo(1, 2)\nlineTo(3, 4)\nfillText(\"Start\", 1, 2)\nsetStrokeColor(#000000ff)\n"
	if d := cmp.Diff(want, b.String()); d != "" {
		t.Error(d)
	}

	r.Reset()
	if len(r.Ops) != 0 {
		t.Errorf("Reset left %d ops", len(r.Ops))
	}
}
