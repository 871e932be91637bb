package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	"github.com/rios0rios0/modinstaller/internal/infrastructure/interpreter"
)

// resolveTarget loads the settings and pins the interpreter for this
// invocation. Every operation of the session reuses the returned target.
func resolveTarget(cmd *cobra.Command) (entities.Target, error) {
	configPath, _ := cmd.Flags().GetString("config")
	pythonFlag, _ := cmd.Flags().GetString("python")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return entities.Target{}, fmt.Errorf("failed to load config: %w", err)
	}

	interpreterPath, err := interpreter.Resolve(pythonFlag, settings.Interpreter)
	if err != nil {
		return entities.Target{}, err
	}
	logger.Debugf("Using interpreter %s with %s", interpreterPath, settings.Manager)

	return entities.Target{
		Manager:      settings.Manager,
		Interpreter:  interpreterPath,
		InstallFlags: settings.InstallFlags,
		Env:          settings.EnvList(),
	}, nil
}
