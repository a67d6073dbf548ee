// Package errors turns failures from the storage and input layers into the
// messages shown on the terminal.
package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/Radha57/Pcod-Tracker/internal/logger"
	"github.com/Radha57/Pcod-Tracker/internal/models"
	"github.com/Radha57/Pcod-Tracker/internal/storage"
)

// Format formats an error message with a consistent "Error: " prefix and,
// for known failure kinds, a hint on what to do next.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\nHint: " + hint
	}
	return msg
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint suggests a next step for the error, or returns "" when there is none.
func Hint(err error) string {
	var verr *models.ValidationError
	var perr *storage.PersistenceError

	// A malformed file can wrap both of the others
	switch {
	case stderrors.Is(err, storage.ErrMalformed) && stderrors.As(err, &perr):
		return "your entry was not saved and the data file is unchanged; repair it with 'pcod-tracker validate --fix' or restore a backup with 'pcod-tracker backup restore'"
	case stderrors.Is(err, storage.ErrMalformed):
		return "run 'pcod-tracker validate --fix' or restore a backup with 'pcod-tracker backup restore'"
	case stderrors.As(err, &verr):
		return fmt.Sprintf("check the value given for %s", verr.Field)
	case stderrors.As(err, &perr):
		return "your entry was not saved; make sure the data directory is writable and try again"
	case stderrors.Is(err, storage.ErrStorageUnavailable):
		return "make sure the data file location exists and is accessible"
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
