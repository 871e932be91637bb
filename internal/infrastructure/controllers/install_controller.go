package controllers

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/modinstaller/internal/domain/commands"
	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

// InstallController handles the "install" subcommand.
type InstallController struct {
	command   commands.Install
	inventory *entities.Inventory
}

// NewInstallController creates a new InstallController.
func NewInstallController(command commands.Install, inventory *entities.Inventory) *InstallController {
	return &InstallController{command: command, inventory: inventory}
}

// GetBind returns the Cobra command metadata for the install controller.
func (it *InstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "install <package>",
		Short: "Install a package for the host interpreter",
		Long: `Install one package by name. The name is passed to the package manager
as a single literal argument; no shell is involved.`,
	}
}

// Execute installs the package named by the arguments.
func (it *InstallController) Execute(cmd *cobra.Command, args []string) {
	target, err := resolveTarget(cmd)
	if err != nil {
		logger.Errorf("Cannot install package: %v", err)
		return
	}

	result := it.command.Execute(context.Background(), target, it.inventory, strings.Join(args, " "))
	printResult(cmd.OutOrStdout(), result)
}

// AddFlags restricts the command to exactly one package name.
func (it *InstallController) AddFlags(cmd *cobra.Command) {
	cmd.Args = cobra.ExactArgs(1)
}
