// Smoke test for the asset browser: build the asset manager, inject it
// into the main IDE window and leave the window open for visual
// inspection.
package main

import (
	"os"
	"time"

	"github.com/nexlify/nexlify-smoke/ide/ai"
	"github.com/nexlify/nexlify-smoke/ide/asset"
	"github.com/nexlify/nexlify-smoke/ide/gui"
	v1 "github.com/nexlify/nexlify-smoke/pkg/v1"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/sijms/go-ora/v2"
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

	h := v1.NewHarness("Asset Browser Smoke Test", nil)

	var (
		manager *asset.Manager
		ide     *gui.IDE
	)

	h.Step("Application created!", func() error {
		loop, err := v1.NewDesktopLoop()
		if err != nil {
			return err
		}
		h.SetLoop(loop)
		return nil
	})

	h.Step("Asset manager ready!", func() error {
		opts := asset.Options{
			Driver: getEnv("NEXLIFY_ASSET_DRIVER", "sqlite3"),
			DSN:    getEnv("NEXLIFY_ASSET_DSN", ""),
		}
		if addr := getEnv("NEXLIFY_REDIS_ADDR", ""); addr != "" {
			cache, err := asset.NewCache(addr, getEnv("NEXLIFY_REDIS_PASS", ""), 0, 5*time.Minute)
			if err != nil {
				return err
			}
			opts.Cache = cache
		}

		var err error
		manager, err = asset.NewManager(opts)
		if err != nil {
			return err
		}
		return manager.Initialize()
	})

	h.Step("IDE loaded with asset browser!", func() error {
		ide = gui.NewIDE(manager, ai.NewAssistant(getEnv("NEXLIFY_ASSISTANT_URL", "")))
		w := h.Loop().NewWindow(gui.WindowTitle)
		w.SetContent(ide.Content())
		w.Resize(ide.MinWindowSize())
		w.Show()
		return nil
	})

	h.Guide(v1.GlyphFile, "Asset browser should be visible below the 3D viewport")
	h.Guide(v1.GlyphCheck, "Try clicking on different asset categories")
	h.Guide(v1.GlyphCheck, "Try searching for assets")

	return h.Run()
}
