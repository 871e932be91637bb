package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/modinstaller/internal/domain/commands"
	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command   commands.List
	inventory *entities.Inventory
}

// NewListController creates a new ListController.
func NewListController(command commands.List, inventory *entities.Inventory) *ListController {
	return &ListController{command: command, inventory: inventory}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "List the packages installed for the host interpreter",
		Long: `List every package installed for the host interpreter, as reported
by the configured package manager.`,
	}
}

// Execute lists the packages and prints them.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) {
	target, err := resolveTarget(cmd)
	if err != nil {
		logger.Errorf("Cannot list packages: %v", err)
		return
	}

	result := it.command.Execute(context.Background(), target, it.inventory)
	printResult(cmd.OutOrStdout(), result)
	if result.OK {
		printInventory(cmd.OutOrStdout(), it.inventory.Records(), noSelection)
	}
}
