package event

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordingListener struct {
	name string
	log  *[]string
}

func (l *recordingListener) OnEvent(e Event) {
	*l.log = append(*l.log, l.name+":"+string(e.Type))
}

func TestDispatchOrder(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recordingListener{"a", &log}
	b := &recordingListener{"b", &log}
	d.Subscribe(PointCreated, a)
	d.Subscribe(PointCreated, b)
	d.Subscribe(DragEnded, b)

	d.Dispatch(Event{Type: PointCreated})
	d.Dispatch(Event{Type: DragEnded})
	d.Dispatch(Event{Type: PointMoved})

	want := []string{"a:PointCreated", "b:PointCreated", "b:DragEnded"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Error(diff)
	}
}

func TestUnsubscribe(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recordingListener{"a", &log}
	d.SubscribeAll(a)
	d.Unsubscribe(PointMoved, a)

	d.Dispatch(Event{Type: PointMoved})
	d.Dispatch(Event{Type: SurfaceResized})

	if diff := cmp.Diff([]string{"a:SurfaceResized"}, log); diff != "" {
		t.Error(diff)
	}
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: PointCreated}) // не паникует
}

func TestListenerFunc(t *testing.T) {
	n := 0
	d := NewDispatcher()
	d.Subscribe(DragStarted, ListenerFunc(func(Event) { n++ }))
	d.Dispatch(Event{Type: DragStarted})
	if n != 1 {
		t.Errorf("listener called %d times, want 1", n)
	}
}
