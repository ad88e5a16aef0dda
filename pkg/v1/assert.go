package v1

import "fmt"

// SetupError represents a controlled smoke-test failure.
type SetupError struct {
	Message string
}

func (e SetupError) Error() string {
	return e.Message
}

// Fail aborts the current harness step with a message.
// It uses panic with SetupError to stop execution, which is caught once by
// Harness.Run.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	Log(LogTypeError, "Setup FAILED", msg)
	panic(SetupError{Message: msg})
}

// Assert checks if the condition is true. If not, it fails the current step.
func Assert(condition bool, format string, args ...interface{}) {
	if !condition {
		Fail(format, args...)
	}
}

// AssertNoError asserts that the error is nil.
func AssertNoError(err error) {
	if err != nil {
		Fail("Unexpected error: %v", err)
	}
}
