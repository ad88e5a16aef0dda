package v1

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/test"
)

// Loop drives the GUI event loop for one smoke run. The desktop
// implementation wraps a real toolkit application; the recording
// implementation is a headless stub for verifying harness behavior without a
// display.
type Loop interface {
	// App returns the process-wide application instance owned by the loop.
	App() fyne.App
	// NewWindow creates a top-level window on the loop's application.
	NewWindow(title string) fyne.Window
	// ScheduleQuit arms a one-shot timer that requests application quit
	// after d. It fires at most once.
	ScheduleQuit(d time.Duration)
	// Run blocks until quit is requested, manually or by the timer.
	Run()
	// Quit requests loop termination.
	Quit()
}

var (
	desktopMu      sync.Mutex
	desktopCreated bool
)

// DesktopLoop owns the real application instance. The toolkit allows only
// one per process, so a second construction is refused instead of silently
// re-creating global state.
type DesktopLoop struct {
	fyneApp fyne.App
	timer   *time.Timer
}

// NewDesktopLoop creates the process-wide application instance.
func NewDesktopLoop() (*DesktopLoop, error) {
	desktopMu.Lock()
	defer desktopMu.Unlock()
	if desktopCreated {
		return nil, fmt.Errorf("application instance already exists for this process")
	}
	desktopCreated = true
	Log(LogTypeApp, "Application instance created", "")
	return &DesktopLoop{fyneApp: app.New()}, nil
}

// App returns the underlying application instance.
func (l *DesktopLoop) App() fyne.App {
	return l.fyneApp
}

// NewWindow creates a top-level window.
func (l *DesktopLoop) NewWindow(title string) fyne.Window {
	return l.fyneApp.NewWindow(title)
}

// ScheduleQuit arms the auto-close timer.
func (l *DesktopLoop) ScheduleQuit(d time.Duration) {
	Logf(LogTypeTimer, "Auto-close armed: %s", d)
	l.timer = time.AfterFunc(d, l.Quit)
}

// Run enters the event loop and blocks until quit is requested.
func (l *DesktopLoop) Run() {
	l.fyneApp.Run()
	if l.timer != nil {
		l.timer.Stop()
	}
}

// Quit requests application termination.
func (l *DesktopLoop) Quit() {
	Log(LogTypeApp, "Quit requested", "")
	l.fyneApp.Quit()
}

// LoopEventKind labels an event recorded by the RecordingLoop.
type LoopEventKind string

const (
	EventWindowCreated LoopEventKind = "WindowCreated"
	EventWindowResized LoopEventKind = "WindowResized"
	EventQuitScheduled LoopEventKind = "QuitScheduled"
	EventQuitRequested LoopEventKind = "QuitRequested"
)

// LoopEvent is one recorded event with its fake-clock timestamp.
type LoopEvent struct {
	Kind   LoopEventKind
	At     time.Duration
	Detail string
}

// RecordingLoop is a headless event-loop stub backed by the toolkit's test
// driver. Time is simulated: ScheduleQuit stores a deadline and Advance
// moves the clock, firing the quit request when the deadline passes. Every
// observable event is recorded with its timestamp so tests can assert on
// ordering and timing instead of watching a screen.
type RecordingLoop struct {
	fyneApp fyne.App

	mu        sync.Mutex
	now       time.Duration
	quitAt    time.Duration
	scheduled bool
	quit      bool
	quitCh    chan struct{}
	events    []LoopEvent
}

// NewRecordingLoop creates a headless loop. It never touches the real
// application singleton, so any number can coexist in one test binary.
func NewRecordingLoop() *RecordingLoop {
	return &RecordingLoop{
		fyneApp: test.NewApp(),
		quitCh:  make(chan struct{}),
	}
}

// App returns the headless test application.
func (l *RecordingLoop) App() fyne.App {
	return l.fyneApp
}

// NewWindow creates a headless window and records the event.
func (l *RecordingLoop) NewWindow(title string) fyne.Window {
	w := l.fyneApp.NewWindow(title)
	l.record(EventWindowCreated, title)
	return w
}

// ScheduleQuit stores the auto-close deadline on the fake clock.
func (l *RecordingLoop) ScheduleQuit(d time.Duration) {
	l.mu.Lock()
	l.quitAt = l.now + d
	l.scheduled = true
	l.mu.Unlock()
	l.record(EventQuitScheduled, d.String())
}

// Advance moves the fake clock forward, firing the scheduled quit if its
// deadline has been reached.
func (l *RecordingLoop) Advance(d time.Duration) {
	l.mu.Lock()
	l.now += d
	due := l.scheduled && !l.quit && l.now >= l.quitAt
	l.mu.Unlock()
	if due {
		l.Quit()
	}
}

// Resize resizes a window and records the new size, standing in for the
// user dragging a window edge.
func (l *RecordingLoop) Resize(w fyne.Window, size fyne.Size) {
	w.Resize(size)
	l.record(EventWindowResized, fmt.Sprintf("%.0fx%.0f", size.Width, size.Height))
}

// Run blocks until Quit is called.
func (l *RecordingLoop) Run() {
	<-l.quitCh
}

// Quit records the quit request and releases Run. Safe to call more than
// once; only the first call is recorded.
func (l *RecordingLoop) Quit() {
	l.mu.Lock()
	if l.quit {
		l.mu.Unlock()
		return
	}
	l.quit = true
	l.mu.Unlock()
	l.record(EventQuitRequested, "")
	close(l.quitCh)
}

// QuitRequested reports whether quit has been requested.
func (l *RecordingLoop) QuitRequested() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.quit
}

// Events returns a copy of the recorded events.
func (l *RecordingLoop) Events() []LoopEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LoopEvent, len(l.events))
	copy(out, l.events)
	return out
}

func (l *RecordingLoop) record(kind LoopEventKind, detail string) {
	l.mu.Lock()
	l.events = append(l.events, LoopEvent{Kind: kind, At: l.now, Detail: detail})
	l.mu.Unlock()
}
