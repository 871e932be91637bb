// Package interpreter pins the interpreter executable every package manager
// invocation runs against. It never searches PATH: installing into whatever
// Python happens to be first on PATH would put packages where the host
// application never loads them.
package interpreter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	logger "github.com/sirupsen/logrus"
)

// EnvVar names the environment variable that may carry the interpreter path.
const EnvVar = "MODINSTALLER_PYTHON"

// ErrNotConfigured is returned when no interpreter path was given anywhere.
var ErrNotConfigured = errors.New(
	"no host interpreter configured; pass --python, set " + EnvVar + ", or set interpreter in the config file",
)

// Resolve picks the interpreter path from, in order, the flag value, the
// environment, and the configured value, then returns its absolute form.
// Symlinks are kept: a venv's bin/python links to the base interpreter, and
// only the link path runs with the venv's prefix. The target must exist and
// be an executable regular file.
func Resolve(flagValue, configured string) (string, error) {
	candidate, source := flagValue, "--python"
	if candidate == "" {
		candidate, source = os.Getenv(EnvVar), EnvVar
	}
	if candidate == "" {
		candidate, source = configured, "config"
	}
	if candidate == "" {
		return "", ErrNotConfigured
	}

	abs, err := filepath.Abs(candidate)
	if err != nil {
		return "", fmt.Errorf("invalid interpreter path %q: %w", candidate, err)
	}

	info, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("interpreter %q (from %s) not found: %w", candidate, source, err)
	}
	if err != nil {
		return "", fmt.Errorf("interpreter %q (from %s) not accessible: %w", candidate, source, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("interpreter %q (from %s) is not a regular file", abs, source)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o111 == 0 {
		return "", fmt.Errorf("interpreter %q (from %s) is not executable", abs, source)
	}

	logger.Debugf("Using interpreter %s (from %s)", abs, source)
	return abs, nil
}
