package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	infraRepos "github.com/rios0rios0/modinstaller/internal/infrastructure/repositories"
)

// Uninstall is the interface for the uninstall command.
type Uninstall interface {
	Execute(
		ctx context.Context,
		target entities.Target,
		inventory *entities.Inventory,
		selection entities.Selection,
	) entities.OperationResult
}

// UninstallCommand removes the package the selection points at.
type UninstallCommand struct {
	managerRegistry *infraRepos.ManagerRegistry
	list            List
}

// NewUninstallCommand creates a new UninstallCommand.
func NewUninstallCommand(managerRegistry *infraRepos.ManagerRegistry, list List) *UninstallCommand {
	return &UninstallCommand{
		managerRegistry: managerRegistry,
		list:            list,
	}
}

// Execute resolves the selection against the current inventory first; an
// out-of-range selection spawns nothing.
func (it *UninstallCommand) Execute(
	ctx context.Context,
	target entities.Target,
	inventory *entities.Inventory,
	selection entities.Selection,
) entities.OperationResult {
	record, err := selection.Resolve(inventory)
	if err != nil {
		logger.Error("No package selected")
		return entities.Failed("No package selected", err)
	}

	manager, err := it.managerRegistry.Get(target)
	if err != nil {
		return failure(fmt.Sprintf("Failed to uninstall %s", record.Name), err)
	}

	logger.Infof("[%s] Uninstalling %s...", manager.Name(), record.Name)
	if uninstallErr := manager.Uninstall(ctx, record.Name); uninstallErr != nil {
		return failure(fmt.Sprintf("Failed to uninstall %s", record.Name), uninstallErr)
	}

	message := fmt.Sprintf("Successfully uninstalled %s", record.Name)
	logger.Infof("[%s] %s", manager.Name(), message)
	return refreshAfterMutation(ctx, it.list, target, inventory, func() string { return message })
}
