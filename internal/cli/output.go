package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aevon-lab/interval/internal/core/interval"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The interval operation failed (bad syntax, unsupported rendering)
	ExitCommandError = 2 // Command error (wrong arguments, unknown flags)
)

// Error codes reported in CLI output.
const (
	ErrCodeParse       = "E_PARSE"
	ErrCodeType        = "E_TYPE"
	ErrCodeUnsupported = "E_UNSUPPORTED"
	ErrCodeArgument    = "E_ARGUMENT"
)

// ExitError is an error that has already been reported to the user and
// carries the process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// GetExitCode extracts the exit code from an error. Errors that are not an
// ExitError come from cobra itself (arguments, flags) and map to
// ExitCommandError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

// CLIResponse is the JSON envelope for every command.
type CLIResponse struct {
	Status string      `json:"status"` // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`
	Error  *CLIError   `json:"error,omitempty"`
}

type CLIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success prints text in text mode and data wrapped in a CLIResponse in
// JSON mode.
func (f *OutputFormatter) Success(text string, data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	}
	_, err := fmt.Fprintln(f.Writer, text)
	return err
}

// Error reports err and returns the ExitError the command should return.
func (f *OutputFormatter) Error(err error) error {
	code, details := describe(err)
	if f.Format == "json" {
		if encErr := json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: err.Error(), Details: details},
		}); encErr != nil {
			return encErr
		}
	} else {
		fmt.Fprintf(f.errWriter(), "Error [%s]: %s\n", code, err.Error())
		if f.Verbose && details != nil {
			fmt.Fprintf(f.errWriter(), "Details: %v\n", details)
		}
	}

	exitCode := ExitFailure
	if code == ErrCodeArgument {
		exitCode = ExitCommandError
	}
	return &ExitError{Code: exitCode, Message: code, Err: err}
}

// VerboseLog writes to ErrWriter when verbose output is enabled, so JSON
// output stays parseable.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.errWriter(), format+"\n", args...)
}

func (f *OutputFormatter) errWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// argumentError marks a malformed non-interval argument.
type argumentError struct {
	arg string
	err error
}

func (e *argumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %v", e.arg, e.err)
}

func (e *argumentError) Unwrap() error {
	return e.err
}

func describe(err error) (string, interface{}) {
	var parseErr *interval.ParseError
	var argErr *argumentError
	switch {
	case errors.As(err, &parseErr):
		return ErrCodeParse, map[string]string{"input": parseErr.Input}
	case errors.Is(err, interval.ErrType):
		return ErrCodeType, nil
	case errors.Is(err, interval.ErrUnsupported):
		return ErrCodeUnsupported, nil
	case errors.As(err, &argErr):
		return ErrCodeArgument, map[string]string{"argument": argErr.arg}
	default:
		return ErrCodeArgument, nil
	}
}
