package presenter

import "testing"

func TestDispatcher_RunsRegisteredHandler(t *testing.T) {
	d := NewDispatcher(nil)
	n := 0
	d.Register(ActionStartCamera, func() { n++ })
	if !d.Dispatch(ActionStartCamera) || n != 1 {
		t.Fatalf("handler not run")
	}
	d.Command(ActionStartCamera)()
	if n != 2 {
		t.Fatalf("command closure did not dispatch")
	}
}

func TestDispatcher_UnknownAction(t *testing.T) {
	d := NewDispatcher(nil)
	if d.Dispatch(ActionExit) {
		t.Fatalf("unknown action reported handled")
	}
	var nilD *Dispatcher
	if nilD.Dispatch(ActionExit) {
		t.Fatalf("nil dispatcher reported handled")
	}
}

func TestDispatcher_RecoversPanics(t *testing.T) {
	d := NewDispatcher(nil)
	d.Register(ActionAnalyzeText, func() { panic("boom") })
	if d.Dispatch(ActionAnalyzeText) {
		t.Fatalf("panicking handler reported ok")
	}
}
