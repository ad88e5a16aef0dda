// Smoke test for the AI chat panel: open the full IDE window and verify
// by eye that the panel extends to the bottom and follows resizes.
package main

import (
	"os"

	"github.com/nexlify/nexlify-smoke/ide/ai"
	"github.com/nexlify/nexlify-smoke/ide/asset"
	"github.com/nexlify/nexlify-smoke/ide/gui"
	v1 "github.com/nexlify/nexlify-smoke/pkg/v1"

	_ "github.com/mattn/go-sqlite3"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	os.Exit(run())
}

func run() int {
	v1.Milestone(v1.GlyphOK, "All imports resolved!")

	h := v1.NewHarness("AI Chat Panel Smoke Test", nil)

	var manager *asset.Manager

	h.Step("Application created!", func() error {
		loop, err := v1.NewDesktopLoop()
		if err != nil {
			return err
		}
		h.SetLoop(loop)
		return nil
	})

	h.Step("Asset manager ready!", func() error {
		var err error
		manager, err = asset.NewManager(asset.Options{})
		if err != nil {
			return err
		}
		return manager.Initialize()
	})

	h.Step("IDE loaded!", func() error {
		ide := gui.NewIDE(manager, ai.NewAssistant(getEnv("NEXLIFY_ASSISTANT_URL", "")))
		w := h.Loop().NewWindow(gui.WindowTitle)
		w.SetContent(ide.Content())
		w.Resize(ide.MinWindowSize())
		w.Show()
		return nil
	})

	h.Guide(v1.GlyphCheck, "Check if AI chat panel extends to the bottom")
	h.Guide(v1.GlyphCheck, "Send a message and watch the transcript grow")
	h.Guide(v1.GlyphCheck, "Try resizing the window to see if layout updates properly")

	return h.Run()
}
