// Package gui contains the IDE's Fyne widgets: the header bar, the AI chat
// panel, the asset browser and the main window composition.
package gui

import (
	"fmt"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// TransformTools are the header's transform mode choices.
var TransformTools = []string{"Move", "Rotate", "Scale"}

// Header is the IDE header bar: play controls and transform tools on the
// left, the project title in the center, a performance readout on the right.
type Header struct {
	playing bool

	playBtn   *widget.Button
	tools     *widget.RadioGroup
	title     *widget.Label
	perf      *widget.Label
	content   fyne.CanvasObject
	stopPerf  chan struct{}
	onPlay    func(playing bool)
	onTool    func(tool string)
	startedAt time.Time
}

// NewHeader builds the header widget.
func NewHeader() *Header {
	h := &Header{startedAt: time.Now()}

	h.playBtn = widget.NewButton("▶ Play", h.togglePlay)

	h.tools = widget.NewRadioGroup(TransformTools, func(tool string) {
		if h.onTool != nil && tool != "" {
			h.onTool(tool)
		}
	})
	h.tools.Horizontal = true
	h.tools.SetSelected(TransformTools[0])

	h.title = widget.NewLabelWithStyle("Nexlify Game Design IDE", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	h.perf = widget.NewLabel("")
	h.RefreshPerformance()

	h.content = container.NewHBox(
		h.playBtn,
		h.tools,
		layout.NewSpacer(),
		h.title,
		layout.NewSpacer(),
		h.perf,
	)
	return h
}

// Content returns the header's canvas object for embedding in a window.
func (h *Header) Content() fyne.CanvasObject {
	return h.content
}

// Playing reports whether play mode is active.
func (h *Header) Playing() bool {
	return h.playing
}

// SetPlaying switches play mode and updates the button.
func (h *Header) SetPlaying(playing bool) {
	h.playing = playing
	if playing {
		h.playBtn.SetText("⏸ Pause")
	} else {
		h.playBtn.SetText("▶ Play")
	}
	if h.onPlay != nil {
		h.onPlay(playing)
	}
}

// OnPlayChanged registers a callback for play state changes.
func (h *Header) OnPlayChanged(fn func(playing bool)) {
	h.onPlay = fn
}

// OnToolChanged registers a callback for transform tool changes.
func (h *Header) OnToolChanged(fn func(tool string)) {
	h.onTool = fn
}

// SelectedTool returns the active transform tool.
func (h *Header) SelectedTool() string {
	return h.tools.Selected
}

// RefreshPerformance updates the uptime/memory readout once.
func (h *Header) RefreshPerformance() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	up := time.Since(h.startedAt).Round(time.Second)
	h.perf.SetText(fmt.Sprintf("up %s | %d MB", up, ms.Alloc/1024/1024))
}

// StartPerformanceUpdates refreshes the readout on a ticker until
// StopPerformanceUpdates is called.
func (h *Header) StartPerformanceUpdates(interval time.Duration) {
	if h.stopPerf != nil {
		return
	}
	h.stopPerf = make(chan struct{})
	go func(stop chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(h.RefreshPerformance)
			case <-stop:
				return
			}
		}
	}(h.stopPerf)
}

// StopPerformanceUpdates stops the ticker.
func (h *Header) StopPerformanceUpdates() {
	if h.stopPerf != nil {
		close(h.stopPerf)
		h.stopPerf = nil
	}
}

func (h *Header) togglePlay() {
	h.SetPlaying(!h.playing)
}
