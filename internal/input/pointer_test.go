package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTrackerSequence(t *testing.T) {
	var tr Tracker
	var got []PointerEvent

	got = tr.Sample(got, 10, 10, false, true)  // первое появление — move
	got = tr.Sample(got, 10, 10, false, true)  // без изменений — ничего
	got = tr.Sample(got, 10, 10, true, true)   // нажатие на месте — down
	got = tr.Sample(got, 20, 15, true, true)   // перетаскивание — move
	got = tr.Sample(got, 25, 15, false, true)  // отпускание со сдвигом — move, up
	got = tr.Sample(got, 25, 15, false, false) // курсор ушёл — leave
	got = tr.Sample(got, 30, 30, false, false) // вне окна — ничего

	want := []PointerEvent{
		{X: 10, Y: 10, Phase: PhaseMove},
		{X: 10, Y: 10, Phase: PhaseDown},
		{X: 20, Y: 15, Phase: PhaseMove},
		{X: 25, Y: 15, Phase: PhaseMove},
		{X: 25, Y: 15, Phase: PhaseUp},
		{X: 25, Y: 15, Phase: PhaseLeave},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestTrackerPressOutsideDoesNotDown(t *testing.T) {
	var tr Tracker
	var got []PointerEvent
	got = tr.Sample(got, 5, 5, false, true)
	got = tr.Sample(got, 5, 5, true, false) // кнопка нажата за окном
	got = tr.Sample(got, 6, 6, true, true)  // вернулись с зажатой кнопкой
	got = tr.Sample(got, 6, 6, false, true) // отпустили

	want := []PointerEvent{
		{X: 5, Y: 5, Phase: PhaseMove},
		{X: 5, Y: 5, Phase: PhaseLeave},
		{X: 6, Y: 6, Phase: PhaseMove},
		{X: 6, Y: 6, Phase: PhaseUp},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestPhaseString(t *testing.T) {
	ev := PointerEvent{X: 1.5, Y: 2, Phase: PhaseDown}
	if got := ev.String(); got != "down(1.5,2)" {
		t.Errorf("String() = %q", got)
	}
}

func TestTrackerLast(t *testing.T) {
	var tr Tracker
	if _, _, _, ok := tr.Last(); ok {
		t.Error("fresh tracker reports a position")
	}
	tr.Sample(nil, 3, 4, true, true)
	x, y, pressed, ok := tr.Last()
	if !ok || x != 3 || y != 4 || !pressed {
		t.Errorf("Last() = %g, %g, %v, %v", x, y, pressed, ok)
	}
}
