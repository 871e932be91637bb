//go:build !windows

package process

import "os/exec"

// hideConsoleWindow is a no-op where children never get a console window of their own.
func hideConsoleWindow(_ *exec.Cmd) {}
