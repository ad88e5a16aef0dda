// Smoke test for the IDE header widget: show it alone and auto-close
// after 5 seconds.
package main

import (
	"os"
	"time"

	"fyne.io/fyne/v2"

	"github.com/nexlify/nexlify-smoke/ide/gui"
	v1 "github.com/nexlify/nexlify-smoke/pkg/v1"
)

func main() {
	os.Exit(run())
}

func run() int {
	v1.Milestone(v1.GlyphOK, "All imports resolved!")

	h := v1.NewHarness("Header Smoke Test", nil)

	var header *gui.Header

	h.Step("Application created!", func() error {
		loop, err := v1.NewDesktopLoop()
		if err != nil {
			return err
		}
		h.SetLoop(loop)
		return nil
	})

	h.Step("Header created!", func() error {
		header = gui.NewHeader()
		return nil
	})

	h.Step("Header shown!", func() error {
		w := h.Loop().NewWindow("IDE Header Test")
		w.SetContent(header.Content())
		w.Resize(fyne.NewSize(1200, 64))
		header.StartPerformanceUpdates(time.Second)
		w.Show()
		return nil
	})

	h.AutoClose(5 * time.Second)
	return h.Run()
}
