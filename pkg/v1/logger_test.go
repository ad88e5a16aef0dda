package v1

import (
	"sync"
	"testing"
)

func TestLogger(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	var captured LogEntry
	handler := func(e LogEntry) {
		captured = e
		wg.Done()
	}

	logHandlers = nil                    // Clear previous handlers
	defer func() { logHandlers = nil }() // Clear after test
	RegisterLogHandler(handler)

	Log(LogTypeInfo, "Test Summary", "Test Detail")

	wg.Wait()

	if captured.Type != LogTypeInfo {
		t.Errorf("Expected LogTypeInfo, got %s", captured.Type)
	}
	if captured.Summary != "Test Summary" {
		t.Errorf("Expected 'Test Summary', got '%s'", captured.Summary)
	}
	if captured.Detail != "Test Detail" {
		t.Errorf("Expected 'Test Detail', got '%s'", captured.Detail)
	}
}

func TestLogf(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	var captured LogEntry
	handler := func(e LogEntry) {
		captured = e
		wg.Done()
	}

	logHandlers = nil
	defer func() { logHandlers = nil }()
	RegisterLogHandler(handler)

	Logf(LogTypeInfo, "Hello %s", "World")

	wg.Wait()

	if captured.Summary != "Hello World" {
		t.Errorf("Expected 'Hello World', got '%s'", captured.Summary)
	}
}

func TestMilestone(t *testing.T) {
	var captured LogEntry
	logHandlers = nil
	defer func() { logHandlers = nil }()
	RegisterLogHandler(func(e LogEntry) { captured = e })

	Milestone(GlyphOK, "Header %s!", "shown")

	if captured.Type != LogTypeStep {
		t.Errorf("Expected LogTypeStep, got %s", captured.Type)
	}
	if captured.Summary != "Header shown!" {
		t.Errorf("Expected 'Header shown!', got '%s'", captured.Summary)
	}
}
