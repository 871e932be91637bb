package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPackageName is returned when the requested package name is blank.
	ErrEmptyPackageName = errors.New("please enter a package name")

	// ErrNoSelection is returned when the selection does not point at an inventory entry.
	ErrNoSelection = errors.New("no package selected")

	// ErrNoInventory is returned when an operation is given no inventory to update.
	ErrNoInventory = errors.New("no package inventory")
)

// ValidationError reports invalid user input. No process is spawned for it.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ProcessExecutionError reports a package manager invocation that could not be
// started or exited non-zero.
type ProcessExecutionError struct {
	Command  []string
	ExitCode int // -1 when the process never ran
	Stderr   string
	Err      error
}

func (e *ProcessExecutionError) Error() string {
	var sb strings.Builder
	sb.WriteString("command '")
	sb.WriteString(strings.Join(e.Command, " "))
	sb.WriteString("'")
	if e.ExitCode >= 0 {
		fmt.Fprintf(&sb, " returned non-zero exit status %d", e.ExitCode)
	} else {
		fmt.Fprintf(&sb, " could not be started: %v", e.Err)
	}
	if detail := strings.TrimSpace(e.Stderr); detail != "" {
		sb.WriteString(": ")
		sb.WriteString(lastLine(detail))
	}
	return sb.String()
}

func (e *ProcessExecutionError) Unwrap() error { return e.Err }

// ParseError reports structured package manager output that could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed package manager output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// lastLine keeps error messages on one line; pip prints the actual cause last.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
