package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/drakoger/tracker/internal/logger"
)

// CategoryNotFoundError reports a strict save against a category that does
// not exist in the store. The save is aborted and nothing is written.
type CategoryNotFoundError struct {
	Name string
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category %q not found", e.Name)
}

// IsCategoryNotFound reports whether err is a CategoryNotFoundError.
func IsCategoryNotFound(err error) bool {
	var target *CategoryNotFoundError
	return stderrors.As(err, &target)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
