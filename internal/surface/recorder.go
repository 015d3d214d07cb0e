package surface

import (
	"fmt"
	"image/color"
	"io"
	"strings"
)

// OpKind — тип записанной операции
type OpKind uint8

const (
	OpClearRect OpKind = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpQuadraticCurveTo
	OpBezierCurveTo
	OpArc
	OpFill
	OpStroke
	OpFillText
	OpSave
	OpRestore
	OpScale
	OpSetFillColor
	OpSetStrokeColor
	OpSetLineWidth
)

var opNames = [...]string{
	OpClearRect:        "clearRect",
	OpBeginPath:        "beginPath",
	OpMoveTo:           "moveTo",
	OpLineTo:           "lineTo",
	OpQuadraticCurveTo: "quadraticCurveTo",
	OpBezierCurveTo:    "bezierCurveTo",
	OpArc:              "arc",
	OpFill:             "fill",
	OpStroke:           "stroke",
	OpFillText:         "fillText",
	OpSave:             "save",
	OpRestore:          "restore",
	OpScale:            "scale",
	OpSetFillColor:     "setFillColor",
	OpSetStrokeColor:   "setStrokeColor",
	OpSetLineWidth:     "setLineWidth",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", k)
}

// Op — одна записанная операция. Text и Color заполняются только для
// FillText и SetFillColor/SetStrokeColor соответственно.
type Op struct {
	Kind  OpKind
	Args  []float64
	Text  string
	Color color.RGBA
}

func (op Op) String() string {
	var b strings.Builder
	b.WriteString(op.Kind.String())
	b.WriteByte('(')
	switch op.Kind {
	case OpFillText:
		fmt.Fprintf(&b, "%q", op.Text)
		for _, a := range op.Args {
			fmt.Fprintf(&b, ", %g", a)
		}
	case OpSetFillColor, OpSetStrokeColor:
		fmt.Fprintf(&b, "#%02x%02x%02x%02x", op.Color.R, op.Color.G, op.Color.B, op.Color.A)
	default:
		for i, a := range op.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", a)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// Recorder — Surface, который ничего не рисует, а запоминает вызовы.
// Используется в тестах и для воспроизведения кадра на другой поверхности.
type Recorder struct {
	Ops []Op
}

var _ Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset очищает запись, сохраняя выделенную память.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Kinds возвращает последовательность типов записанных операций.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Filter возвращает операции указанного типа в порядке записи.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Replay повторяет записанные операции на другой поверхности.
func (r *Recorder) Replay(s Surface) {
	for _, op := range r.Ops {
		a := op.Args
		switch op.Kind {
		case OpClearRect:
			s.ClearRect(a[0], a[1], a[2], a[3])
		case OpBeginPath:
			s.BeginPath()
		case OpMoveTo:
			s.MoveTo(a[0], a[1])
		case OpLineTo:
			s.LineTo(a[0], a[1])
		case OpQuadraticCurveTo:
			s.QuadraticCurveTo(a[0], a[1], a[2], a[3])
		case OpBezierCurveTo:
			s.BezierCurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case OpArc:
			s.Arc(a[0], a[1], a[2], a[3], a[4])
		case OpFill:
			s.Fill()
		case OpStroke:
			s.Stroke()
		case OpFillText:
			s.FillText(op.Text, a[0], a[1])
		case OpSave:
			s.Save()
		case OpRestore:
			s.Restore()
		case OpScale:
			s.Scale(a[0], a[1])
		case OpSetFillColor:
			s.SetFillColor(op.Color)
		case OpSetStrokeColor:
			s.SetStrokeColor(op.Color)
		case OpSetLineWidth:
			s.SetLineWidth(a[0])
		}
	}
}

// WriteTo выводит операции по одной на строку.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, op := range r.Ops {
		m, err := fmt.Fprintln(w, op)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (r *Recorder) record(kind OpKind, args ...float64) {
	r.Ops = append(r.Ops, Op{Kind: kind, Args: args})
}

func (r *Recorder) ClearRect(x, y, w, h float64) { r.record(OpClearRect, x, y, w, h) }
func (r *Recorder) BeginPath()                   { r.record(OpBeginPath) }
func (r *Recorder) MoveTo(x, y float64)          { r.record(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64)          { r.record(OpLineTo, x, y) }

func (r *Recorder) QuadraticCurveTo(cpx, cpy, x, y float64) {
	r.record(OpQuadraticCurveTo, cpx, cpy, x, y)
}

func (r *Recorder) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	r.record(OpBezierCurveTo, cp1x, cp1y, cp2x, cp2y, x, y)
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.record(OpArc, x, y, radius, startAngle, endAngle)
}

func (r *Recorder) Fill()   { r.record(OpFill) }
func (r *Recorder) Stroke() { r.record(OpStroke) }

func (r *Recorder) FillText(s string, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFillText, Args: []float64{x, y}, Text: s})
}

func (r *Recorder) Save()                { r.record(OpSave) }
func (r *Recorder) Restore()             { r.record(OpRestore) }
func (r *Recorder) Scale(sx, sy float64) { r.record(OpScale, sx, sy) }

func (r *Recorder) SetFillColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpSetFillColor, Color: toRGBA(c)})
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpSetStrokeColor, Color: toRGBA(c)})
}

func (r *Recorder) SetLineWidth(w float64) { r.record(OpSetLineWidth, w) }

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
