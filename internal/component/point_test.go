package component

import (
	"math"
	"testing"

	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/surface"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func newViewport() *Viewport {
	return &Viewport{WidthPx: 800, HeightPx: 600, DPR: 1}
}

func TestPixelPosition(t *testing.T) {
	vp := &Viewport{WidthPx: 1600, HeightPx: 1200, DPR: 2}
	p := NewPoint(0.25, 0.5, config.StartLabel, vp)
	x, y := p.PixelPosition()
	if x != 200 || y != 300 {
		t.Errorf("PixelPosition() = (%g, %g), want (200, 300)", x, y)
	}
}

func TestResizeScalesPixelsOnly(t *testing.T) {
	vp := newViewport()
	p := NewPoint(0.3, 0.4, config.CP1Label, vp)
	x0, y0 := p.PixelPosition()

	vp.WidthPx = 1600
	x1, y1 := p.PixelPosition()
	if x1 != 2*x0 {
		t.Errorf("x after resize = %g, want %g", x1, 2*x0)
	}
	if y1 != y0 {
		t.Errorf("y changed on width-only resize: %g -> %g", y0, y1)
	}
	if p.RelX != 0.3 || p.RelY != 0.4 {
		t.Errorf("fractions changed on resize: (%g, %g)", p.RelX, p.RelY)
	}
}

func TestDistanceTo(t *testing.T) {
	p := NewPoint(0.125, 0.25, config.CP1Label, newViewport()) // (100, 150)
	if got := p.DistanceTo(103, 154); got != 5 {
		t.Errorf("DistanceTo = %g, want 5", got)
	}
}

func TestUpdateDraggable(t *testing.T) {
	p := NewPoint(0.125, 0.25, config.CP1Label, newViewport()) // (100, 150)

	p.UpdateDraggable(100, 150+config.DragRegion-1, nil)
	if !p.Draggable {
		t.Error("point within region should be draggable")
	}
	p.UpdateDraggable(100, 150+config.DragRegion, nil)
	if p.Draggable {
		t.Error("threshold is strict: point at exactly DragRegion should not be draggable")
	}

	forced := true
	p.UpdateDraggable(700, 500, &forced)
	if !p.Draggable {
		t.Error("forced value must override distance")
	}
	forced = false
	p.UpdateDraggable(100, 150, &forced)
	if p.Draggable {
		t.Error("forced false must override distance")
	}
}

func TestSetPositionDoesNotClamp(t *testing.T) {
	p := NewPoint(0.5, 0.5, config.CP2Label, newViewport())
	p.SetPosition(-0.2, 1.4)
	if p.RelX != -0.2 || p.RelY != 1.4 {
		t.Errorf("SetPosition clamped: (%g, %g)", p.RelX, p.RelY)
	}
}

func TestOffsetTruncates(t *testing.T) {
	tests := []struct {
		x, ref float64
		want   int
	}{
		{10.9, 0, 10},
		{-10.9, 0, -10},
		{0.5, 1, 0},
		{100, 50.25, 49},
	}
	for _, tt := range tests {
		got, _ := OffsetFrom(tt.x, 0, tt.ref, 0)
		if got != tt.want {
			t.Errorf("OffsetFrom(%g, ref %g) = %d, want %d", tt.x, tt.ref, got, tt.want)
		}
	}
}

func TestPointRender(t *testing.T) {
	vp := newViewport()
	start := NewPoint(0.25, 0.5, config.StartLabel, vp) // (200, 300)
	cp := NewPoint(0.1, 0.1, config.CP1Label, vp)       // (80, 60)
	cp.Draggable = true

	rec := surface.NewRecorder()
	cp.Render(rec, start)

	wantKinds := []surface.OpKind{
		surface.OpSave,
		surface.OpSetFillColor,
		surface.OpBeginPath,
		surface.OpArc,
		surface.OpFill,
		surface.OpSetFillColor,
		surface.OpFillText,
		surface.OpFillText,
		surface.OpRestore,
	}
	if d := cmp.Diff(wantKinds, rec.Kinds()); d != "" {
		t.Fatal(d)
	}
	if got := rec.Ops[1].Color; got != config.DraggableColor {
		t.Errorf("fill color = %v, want draggable color", got)
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	if d := cmp.Diff([]float64{80, 60, config.PointRadius, 0, 2 * math.Pi}, rec.Ops[3].Args, approx); d != "" {
		t.Error(d)
	}
	texts := rec.Filter(surface.OpFillText)
	if texts[0].Text != config.CP1Label || texts[1].Text != "-120 -240" {
		t.Errorf("labels = %q, %q", texts[0].Text, texts[1].Text)
	}
	if d := cmp.Diff([]float64{80, 60 + config.PointRadius + config.OffsetLabelY}, texts[1].Args, approx); d != "" {
		t.Error(d)
	}
}
