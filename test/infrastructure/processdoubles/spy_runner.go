//go:build integration || unit || test

// Package processdoubles provides a hand-crafted spy for process.Runner.
package processdoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/modinstaller/internal/infrastructure/process"
)

// RunCall records a single invocation of Run.
type RunCall struct {
	Name string
	Args []string
}

// Argv returns the full command line of the call.
func (c RunCall) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// SpyRunner implements process.Runner without spawning anything.
type SpyRunner struct {
	// --- responses ---
	Stdout    []byte
	Err       error
	ErrOnCall map[int]error // zero-based call index -> error

	// --- spy ---
	Calls []RunCall
}

var _ process.Runner = (*SpyRunner)(nil)

func (r *SpyRunner) Run(_ context.Context, name string, args ...string) (*process.Output, error) {
	index := len(r.Calls)
	r.Calls = append(r.Calls, RunCall{Name: name, Args: append([]string(nil), args...)})
	if err, ok := r.ErrOnCall[index]; ok {
		return &process.Output{}, err
	}
	if r.Err != nil {
		return &process.Output{}, r.Err
	}
	return &process.Output{Stdout: r.Stdout}, nil
}
