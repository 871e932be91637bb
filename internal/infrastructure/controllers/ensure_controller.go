package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/modinstaller/internal/domain/commands"
	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

// EnsureController handles the "ensure" subcommand.
type EnsureController struct {
	list      commands.List
	command   commands.Ensure
	inventory *entities.Inventory
}

// NewEnsureController creates a new EnsureController.
func NewEnsureController(
	list commands.List,
	command commands.Ensure,
	inventory *entities.Inventory,
) *EnsureController {
	return &EnsureController{list: list, command: command, inventory: inventory}
}

// GetBind returns the Cobra command metadata for the ensure controller.
func (it *EnsureController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "ensure",
		Short: "Install or upgrade the package manager itself",
		Long: `Bootstrap the package manager for the host interpreter and upgrade it
to the latest available version.`,
	}
}

// Execute ensures the package manager is present and current.
func (it *EnsureController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	target, err := resolveTarget(cmd)
	if err != nil {
		logger.Errorf("Cannot ensure package manager: %v", err)
		return
	}

	// A failed listing only means the previous version is unknown.
	_ = it.list.Execute(ctx, target, it.inventory)

	result := it.command.Execute(ctx, target, it.inventory)
	printResult(cmd.OutOrStdout(), result)
}
