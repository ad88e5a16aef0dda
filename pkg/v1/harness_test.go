package v1

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHarnessRunsStepsInOrder(t *testing.T) {
	loop := NewRecordingLoop()
	// Quit up front so Run returns as soon as the steps finish.
	loop.Quit()

	h := NewHarness("order", loop)

	var ran []string
	h.Step("first", func() error {
		ran = append(ran, "first")
		return nil
	})
	h.Step("second", func() error {
		ran = append(ran, "second")
		return nil
	})

	if code := h.Run(); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if len(ran) != 2 || ran[0] != "first" || ran[1] != "second" {
		t.Fatalf("steps ran out of order: %v", ran)
	}
}

func TestHarnessStepErrorAborts(t *testing.T) {
	loop := NewRecordingLoop()
	h := NewHarness("fail", loop)

	var laterRan bool
	h.Step("boom", func() error {
		return errors.New("constructor failed")
	})
	h.Step("later", func() error {
		laterRan = true
		return nil
	})

	if code := h.Run(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if laterRan {
		t.Error("steps after a failure must not run")
	}
	if loop.QuitRequested() {
		t.Error("event loop should never start after a setup failure")
	}
}

func TestHarnessStepPanicIsCaught(t *testing.T) {
	loop := NewRecordingLoop()
	h := NewHarness("panic", loop)

	h.Step("crash", func() error {
		panic("widget exploded")
	})

	// The panic must not escape Run.
	if code := h.Run(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestHarnessFailHelper(t *testing.T) {
	loop := NewRecordingLoop()
	h := NewHarness("fail-helper", loop)

	h.Step("helper", func() error {
		Fail("no such asset: %s", "cube.mesh")
		return nil
	})

	if code := h.Run(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestHarnessReportsFailureOnce(t *testing.T) {
	var errLines int
	RegisterLogHandler(func(e LogEntry) {
		if e.Type == LogTypeError && strings.Contains(e.Summary, "FAILED") {
			errLines++
		}
	})
	defer func() { logHandlers = nil }()

	loop := NewRecordingLoop()
	h := NewHarness("once", loop)
	h.Step("boom", func() error { return errors.New("nope") })

	h.Run()
	if errLines != 1 {
		t.Fatalf("expected exactly one failure report, got %d", errLines)
	}
}

func TestHarnessAutoClose(t *testing.T) {
	loop := NewRecordingLoop()
	h := NewHarness("auto-close", loop)
	h.Step("noop", func() error { return nil })
	h.AutoClose(5 * time.Second)

	done := make(chan int, 1)
	go func() { done <- h.Run() }()

	// Wait for the harness to arm the timer and enter the loop.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if hasEvent(loop.Events(), EventQuitScheduled) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("auto-close timer was never scheduled")
		}
		time.Sleep(time.Millisecond)
	}

	loop.Advance(4999 * time.Millisecond)
	if loop.QuitRequested() {
		t.Fatal("quit requested before the configured delay")
	}

	loop.Advance(time.Millisecond)
	if !loop.QuitRequested() {
		t.Fatal("quit not requested once the delay elapsed")
	}

	select {
	case code := <-done:
		if code != 0 {
			t.Fatalf("expected exit code 0, got %d", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}

	for _, e := range loop.Events() {
		if e.Kind == EventQuitRequested && e.At != 5*time.Second {
			t.Errorf("quit requested at %s, want 5s", e.At)
		}
	}
}

func TestHarnessLoopAttachedFromStep(t *testing.T) {
	loop := NewRecordingLoop()
	loop.Quit()

	h := NewHarness("late-loop", nil)
	h.Step("Application created!", func() error {
		h.SetLoop(loop)
		return nil
	})

	if code := h.Run(); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if h.Loop() != loop {
		t.Error("loop was not attached")
	}
}

func TestHarnessMissingLoop(t *testing.T) {
	h := NewHarness("no-loop", nil)
	h.Step("noop", func() error { return nil })

	if code := h.Run(); code != 1 {
		t.Fatalf("expected exit code 1 without a loop, got %d", code)
	}
}

func TestHarnessMilestoneOrdering(t *testing.T) {
	var lines []string
	RegisterLogHandler(func(e LogEntry) {
		if e.Type == LogTypeStep {
			lines = append(lines, e.Summary)
		}
	})
	defer func() { logHandlers = nil }()

	loop := NewRecordingLoop()
	loop.Quit()

	h := NewHarness("ordering", loop)
	h.Step("IDE loaded with asset browser!", func() error { return nil })
	h.Guide(GlyphFile, "Asset browser should be visible below the 3D viewport")
	h.Guide(GlyphCheck, "Try clicking on different asset categories")

	if code := h.Run(); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	want := []string{
		"IDE loaded with asset browser!",
		"Asset browser should be visible below the 3D viewport",
		"Try clicking on different asset categories",
	}
	var got []string
	for _, l := range lines {
		for _, w := range want {
			if l == w {
				got = append(got, l)
			}
		}
	}
	if len(got) != len(want) {
		t.Fatalf("missing milestone lines: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("milestone %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func hasEvent(events []LoopEvent, kind LoopEventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
