//go:build unit

package controllers_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

// runController executes the controller as a subcommand of a root command
// carrying the global flags, with a pinned interpreter and config file.
func runController(t *testing.T, ctrl entities.Controller, stdin string, args ...string) string {
	t.Helper()

	dir := t.TempDir()
	python := filepath.Join(dir, "python3.11")
	require.NoError(t, os.WriteFile(python, []byte("#!/bin/sh\n"), 0o755))
	config := filepath.Join(dir, ".modinstaller.yaml")
	require.NoError(t, os.WriteFile(config, []byte("manager: pip\n"), 0o600))

	root := &cobra.Command{Use: "modinstaller", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().StringP("config", "c", "", "")
	root.PersistentFlags().String("python", "", "")
	root.PersistentFlags().BoolP("verbose", "v", false, "")

	bind := ctrl.GetBind()
	sub := &cobra.Command{
		Use: bind.Use,
		Run: func(command *cobra.Command, arguments []string) {
			ctrl.Execute(command, arguments)
		},
	}
	if fc, ok := ctrl.(entities.FlaggedController); ok {
		fc.AddFlags(sub)
	}
	root.AddCommand(sub)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(
		[]string{strings.Fields(bind.Use)[0], "--python", python, "--config", config},
		args...,
	))
	require.NoError(t, root.Execute())

	return out.String()
}
