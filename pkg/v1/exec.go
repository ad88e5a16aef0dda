package v1

import (
	"os"
	"os/exec"
	"time"
)

// ScriptProcess represents a running smoke-test script.
type ScriptProcess struct {
	cmd *exec.Cmd
}

// StartScript launches a smoke-test binary as a child process with its
// output attached to this process's console. Each script gets a fresh
// process and therefore a fresh application instance; nothing leaks
// between sequential runs.
func StartScript(path string, args ...string) (*ScriptProcess, error) {
	cmd := exec.Command(path, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	Logf(LogTypeScript, "Starting script: %s %v", path, args)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &ScriptProcess{cmd: cmd}, nil
}

// Wait blocks until the script exits, or kills it when the timeout passes.
// It returns the script's exit code; a killed script reports -1.
func (s *ScriptProcess) Wait(timeout time.Duration) int {
	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()

	select {
	case err := <-done:
		if err == nil {
			return 0
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		return -1
	case <-time.After(timeout):
		Logf(LogTypeScript, "Script timed out after %s, killing", timeout)
		s.Stop()
		<-done
		return -1
	}
}

// Stop kills the script process.
func (s *ScriptProcess) Stop() {
	if s.cmd != nil && s.cmd.Process != nil {
		Log(LogTypeScript, "Stopping script", "")
		s.cmd.Process.Kill()
	}
}

// RunScript is a convenience wrapper: start, wait with timeout, return the
// exit code.
func RunScript(timeout time.Duration, path string, args ...string) (int, error) {
	p, err := StartScript(path, args...)
	if err != nil {
		return -1, err
	}
	return p.Wait(timeout), nil
}
