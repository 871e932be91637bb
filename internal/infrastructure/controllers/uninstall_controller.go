package controllers

import (
	"context"
	"strconv"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/modinstaller/internal/domain/commands"
	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

// UninstallController handles the "uninstall" subcommand.
type UninstallController struct {
	list      commands.List
	command   commands.Uninstall
	inventory *entities.Inventory
}

// NewUninstallController creates a new UninstallController.
func NewUninstallController(
	list commands.List,
	command commands.Uninstall,
	inventory *entities.Inventory,
) *UninstallController {
	return &UninstallController{list: list, command: command, inventory: inventory}
}

// GetBind returns the Cobra command metadata for the uninstall controller.
func (it *UninstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "uninstall <index|package>",
		Short: "Uninstall a package from the host interpreter",
		Long: `Uninstall one package, selected either by its index in the "list"
output or by its name.`,
	}
}

// Execute refreshes the inventory, since it is never persisted between
// invocations, and then uninstalls the selected package.
func (it *UninstallController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	target, err := resolveTarget(cmd)
	if err != nil {
		logger.Errorf("Cannot uninstall package: %v", err)
		return
	}

	refreshed := it.list.Execute(ctx, target, it.inventory)
	if !refreshed.OK {
		printResult(cmd.OutOrStdout(), refreshed)
		return
	}

	result := it.command.Execute(ctx, target, it.inventory, selectionFor(it.inventory, args[0]))
	printResult(cmd.OutOrStdout(), result)
}

// AddFlags restricts the command to exactly one selector.
func (it *UninstallController) AddFlags(cmd *cobra.Command) {
	cmd.Args = cobra.ExactArgs(1)
}

// selectionFor treats a numeric selector as an index and anything else as
// a package name. Unknown names give an out-of-range selection.
func selectionFor(inventory *entities.Inventory, selector string) entities.Selection {
	if index, err := strconv.Atoi(selector); err == nil {
		return entities.NewSelection(index)
	}
	return entities.NewSelection(inventory.IndexOf(selector))
}
