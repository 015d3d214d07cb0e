package component

import (
	"testing"

	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/surface"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// curvePoints — Start (0,0), End (100,0), контрольные (50,50) и (75,-25) при поверхности 100x100.
func curvePoints() (start, end, cp1, cp2 *Point) {
	vp := &Viewport{WidthPx: 100, HeightPx: 100, DPR: 1}
	start = NewPoint(0, 0, config.StartLabel, vp)
	end = NewPoint(1, 0, config.EndLabel, vp)
	cp1 = NewPoint(0.5, 0.5, config.CP1Label, vp)
	cp2 = NewPoint(0.75, -0.25, config.CP2Label, vp)
	return
}

func TestCurveMode(t *testing.T) {
	start, end, cp1, cp2 := curvePoints()
	tests := []struct {
		curve Curve
		want  CurveMode
	}{
		{Curve{Start: start, End: end}, ModeLine},
		{Curve{Start: start, End: end, CP1: cp1}, ModeQuadratic},
		{Curve{Start: start, End: end, CP1: cp1, CP2: cp2}, ModeCubic},
	}
	for _, tt := range tests {
		if got := tt.curve.Mode(); got != tt.want {
			t.Errorf("Mode() = %v, want %v", got, tt.want)
		}
	}
}

func strokeOps(c Curve) []surface.Op {
	rec := surface.NewRecorder()
	c.Render(rec)
	var ops []surface.Op
	for _, op := range rec.Ops {
		switch op.Kind {
		case surface.OpMoveTo, surface.OpLineTo, surface.OpQuadraticCurveTo, surface.OpBezierCurveTo:
			ops = append(ops, op)
		}
	}
	return ops
}

func TestCurveRender(t *testing.T) {
	start, end, cp1, cp2 := curvePoints()
	approx := cmpopts.EquateApprox(0, 1e-9)

	line := strokeOps(Curve{Start: start, End: end})
	want := []surface.Op{
		{Kind: surface.OpMoveTo, Args: []float64{0, 0}},
		{Kind: surface.OpLineTo, Args: []float64{100, 0}},
	}
	if d := cmp.Diff(want, line, approx); d != "" {
		t.Errorf("line: %s", d)
	}

	quad := strokeOps(Curve{Start: start, End: end, CP1: cp1})
	want = []surface.Op{
		{Kind: surface.OpMoveTo, Args: []float64{0, 0}},
		{Kind: surface.OpQuadraticCurveTo, Args: []float64{50, 50, 100, 0}},
	}
	if d := cmp.Diff(want, quad, approx); d != "" {
		t.Errorf("quadratic: %s", d)
	}

	cubic := strokeOps(Curve{Start: start, End: end, CP1: cp1, CP2: cp2})
	want = []surface.Op{
		{Kind: surface.OpMoveTo, Args: []float64{0, 0}},
		{Kind: surface.OpBezierCurveTo, Args: []float64{50, 50, 75, -25, 100, 0}},
	}
	if d := cmp.Diff(want, cubic, approx); d != "" {
		t.Errorf("cubic: %s", d)
	}
}

func TestCurveRenderIsBalanced(t *testing.T) {
	start, end, _, _ := curvePoints()
	rec := surface.NewRecorder()
	Curve{Start: start, End: end}.Render(rec)
	kinds := rec.Kinds()
	if kinds[0] != surface.OpSave || kinds[len(kinds)-1] != surface.OpRestore {
		t.Errorf("render not wrapped in save/restore: %v", kinds)
	}
	if len(rec.Filter(surface.OpStroke)) != 1 {
		t.Error("expected exactly one stroke")
	}
}

func TestCurveLength(t *testing.T) {
	start, end, _, _ := curvePoints()
	if got := (Curve{Start: start, End: end}).Length(); !cmp.Equal(got, 100.0, cmpopts.EquateApprox(0, 1e-9)) {
		t.Errorf("line length = %g, want 100", got)
	}
}
