package v1

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// StepFunc is one setup step of a smoke run. A non-nil error aborts the run.
type StepFunc func() error

// StepDef represents a defined setup step.
type StepDef struct {
	Name string
	Func StepFunc
}

// Harness boots a GUI application, walks its setup steps, runs the event
// loop until quit and reports coarse pass/fail on the console. Every
// failure is fatal to the run: no retries, no partial recovery. Errors are
// reported exactly once, at the top level, and turned into the process exit
// code by the caller.
type Harness struct {
	Name string

	mu        sync.Mutex
	loop      Loop
	steps     []StepDef
	guidance  []guideLine
	autoClose time.Duration
	reported  bool
}

type guideLine struct {
	glyph string
	msg   string
}

// NewHarness creates a harness. The event loop may be attached up front or
// later from a setup step via SetLoop, so that application-instance
// creation is itself a reported milestone.
func NewHarness(name string, loop Loop) *Harness {
	return &Harness{Name: name, loop: loop}
}

// SetLoop attaches the event loop. Typically called from the first step.
func (h *Harness) SetLoop(loop Loop) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loop = loop
}

// Loop returns the event loop the harness drives, or nil if not yet set.
func (h *Harness) Loop() Loop {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loop
}

// App returns the application instance owned by the loop.
func (h *Harness) App() fyne.App {
	return h.Loop().App()
}

// Step registers a setup step. Steps run in registration order; each
// successful step prints a ✅ milestone carrying its name.
func (h *Harness) Step(name string, fn StepFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.steps = append(h.steps, StepDef{Name: name, Func: fn})
}

// Guide queues a glyph-prefixed hint for the human operator, printed after
// the setup milestones and before the event loop starts.
func (h *Harness) Guide(glyph, format string, args ...interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.guidance = append(h.guidance, guideLine{glyph: glyph, msg: fmt.Sprintf(format, args...)})
}

// AutoClose arms a one-shot timer that requests quit after d once the event
// loop starts. Zero disables it (the default): the window then stays open
// until closed manually.
func (h *Harness) AutoClose(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.autoClose = d
}

// Run executes the setup steps, enters the event loop and returns the
// process exit code: 0 on clean termination, 1 on any failure. Panics from
// collaborator constructors and from the event loop are caught here; none
// propagate past Run.
func (h *Harness) Run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			h.report(recoveredErr(r), debug.Stack())
			code = 1
		}
	}()

	Logf(LogTypeStep, "Starting smoke run: %s", h.Name)

	h.mu.Lock()
	steps := make([]StepDef, len(h.steps))
	copy(steps, h.steps)
	h.mu.Unlock()

	for _, s := range steps {
		trace, err := h.runStep(s)
		if err != nil {
			h.report(err, trace)
			return 1
		}
		Milestone(GlyphOK, "%s", s.Name)
	}

	h.mu.Lock()
	loop := h.loop
	autoClose := h.autoClose
	guidance := h.guidance
	h.mu.Unlock()

	if loop == nil {
		h.report(fmt.Errorf("no event loop configured"), nil)
		return 1
	}

	for _, g := range guidance {
		Milestone(g.glyph, "%s", g.msg)
	}

	if autoClose > 0 {
		loop.ScheduleQuit(autoClose)
		Milestone(GlyphOK, "Starting app (will close in %d seconds)...", int(autoClose/time.Second))
	} else {
		Logf(LogTypeApp, "Entering event loop (close the window to exit)")
	}

	loop.Run()
	Logf(LogTypeApp, "Event loop finished")
	return 0
}

// runStep executes one step, converting panics into errors so the caller
// sees a single failure value with the stack captured at the panic site.
func (h *Harness) runStep(s StepDef) (trace []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			trace = debug.Stack()
			err = recoveredErr(r)
		}
	}()
	Logf(LogTypeStep, "Running step: %s", s.Name)
	return nil, s.Func()
}

// report prints the single error line and stack trace for a failed run.
// Guarded so a failure is never reported twice.
func (h *Harness) report(err error, trace []byte) {
	h.mu.Lock()
	if h.reported {
		h.mu.Unlock()
		return
	}
	h.reported = true
	h.mu.Unlock()

	if trace == nil {
		trace = debug.Stack()
	}
	Milestone(GlyphFail, "Error: %v", err)
	fmt.Fprintf(os.Stderr, "%s", trace)
	Log(LogTypeError, fmt.Sprintf("Smoke run %s FAILED", h.Name), err.Error())
}

func recoveredErr(r interface{}) error {
	switch v := r.(type) {
	case SetupError:
		return v
	case error:
		return v
	default:
		return fmt.Errorf("panic: %v", v)
	}
}
