package v1

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
)

func TestRecordingLoopTimer(t *testing.T) {
	loop := NewRecordingLoop()
	loop.ScheduleQuit(5 * time.Second)

	loop.Advance(2 * time.Second)
	if loop.QuitRequested() {
		t.Fatal("quit fired early")
	}

	loop.Advance(2999 * time.Millisecond)
	if loop.QuitRequested() {
		t.Fatal("quit fired at 4999ms")
	}

	loop.Advance(time.Millisecond)
	if !loop.QuitRequested() {
		t.Fatal("quit did not fire at 5000ms")
	}

	events := loop.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %v", events)
	}
	if events[0].Kind != EventQuitScheduled || events[0].At != 0 {
		t.Errorf("unexpected schedule event: %+v", events[0])
	}
	if events[1].Kind != EventQuitRequested || events[1].At != 5*time.Second {
		t.Errorf("unexpected quit event: %+v", events[1])
	}
}

func TestRecordingLoopTimerFiresOnce(t *testing.T) {
	loop := NewRecordingLoop()
	loop.ScheduleQuit(time.Second)

	loop.Advance(time.Second)
	loop.Advance(time.Second)
	loop.Quit()

	var quits int
	for _, e := range loop.Events() {
		if e.Kind == EventQuitRequested {
			quits++
		}
	}
	if quits != 1 {
		t.Fatalf("expected exactly one quit event, got %d", quits)
	}
}

func TestRecordingLoopWindowEvents(t *testing.T) {
	loop := NewRecordingLoop()

	w := loop.NewWindow("Nexlify IDE")
	loop.Resize(w, fyne.NewSize(1280, 720))

	events := loop.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %v", events)
	}
	if events[0].Kind != EventWindowCreated || events[0].Detail != "Nexlify IDE" {
		t.Errorf("unexpected window event: %+v", events[0])
	}
	if events[1].Kind != EventWindowResized || events[1].Detail != "1280x720" {
		t.Errorf("unexpected resize event: %+v", events[1])
	}
}

func TestRecordingLoopRunBlocksUntilQuit(t *testing.T) {
	loop := NewRecordingLoop()

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Run returned before quit")
	case <-time.After(50 * time.Millisecond):
	}

	loop.Quit()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after quit")
	}
}

func TestDesktopLoop(t *testing.T) {
	// Creating the real application requires a window system and can only
	// happen once per process. Covered by running the smoke scripts.
	t.Skip("Skipping desktop loop test")
}
