// Command nexlify-smoke runs the IDE smoke-test scripts one after another,
// each in its own process so no toolkit state leaks between runs.
//
// Build the scripts first, then point this runner at them:
//
//	go build -o bin/ ./cmd/...
//	go run . -dir bin -timeout 60s
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	v1 "github.com/nexlify/nexlify-smoke/pkg/v1"
)

var scripts = []string{
	"smoke-header",
	"smoke-asset-browser",
	"smoke-chat-panel",
}

func main() {
	dir := flag.String("dir", "bin", "Directory containing the smoke-test binaries")
	timeout := flag.Duration("timeout", 60*time.Second, "Per-script timeout")
	flag.Parse()

	failed := 0
	for _, name := range scripts {
		path := filepath.Join(*dir, name)
		v1.Logf(v1.LogTypeScript, "=== %s ===", name)

		code, err := v1.RunScript(*timeout, path)
		if err != nil {
			v1.Milestone(v1.GlyphFail, "%s: failed to start: %v", name, err)
			failed++
			continue
		}
		if code != 0 {
			v1.Milestone(v1.GlyphFail, "%s: exit code %d", name, code)
			failed++
			continue
		}
		v1.Milestone(v1.GlyphOK, "%s: passed", name)
	}

	if failed > 0 {
		v1.Milestone(v1.GlyphFail, "%d of %d scripts failed", failed, len(scripts))
		os.Exit(1)
	}
	v1.Milestone(v1.GlyphOK, "All %d scripts passed", len(scripts))
}
