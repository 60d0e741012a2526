package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/flowmind/internal/logger"
)

// RecoverableError marks a failure the caller may report and carry on from,
// such as a settings save that failed after the in-memory change was applied.
type RecoverableError struct {
	Op  string
	Err error
}

func (e *RecoverableError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RecoverableError) Unwrap() error {
	return e.Err
}

// Recoverable wraps err as a RecoverableError. It returns nil for a nil err.
func Recoverable(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RecoverableError{Op: op, Err: err}
}

// IsRecoverable reports whether any error in err's chain is a RecoverableError.
func IsRecoverable(err error) bool {
	var re *RecoverableError
	return stderrors.As(err, &re)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	if IsRecoverable(err) {
		return fmt.Sprintf("Warning: %v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
