package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Exit codes of splitdemo.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // a check failed
	ExitCommandError = 2 // bad flags or params
)

// ExitError carries the process exit code for err.
type ExitError struct {
	Code int
	Err  error
}

func newExitError(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// GetExitCode returns ExitSuccess for nil, the code of a wrapped ExitError,
// and ExitFailure otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// NewLogger returns a tint logger writing to w.
// Colors are enabled only if w is a terminal.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}
