package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	infraRepos "github.com/rios0rios0/modinstaller/internal/infrastructure/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, target entities.Target, inventory *entities.Inventory) entities.OperationResult
}

// ListCommand asks the package manager for the installed packages and
// replaces the inventory with the answer.
type ListCommand struct {
	managerRegistry *infraRepos.ManagerRegistry
}

// NewListCommand creates a new ListCommand with the given manager registry.
func NewListCommand(managerRegistry *infraRepos.ManagerRegistry) *ListCommand {
	return &ListCommand{managerRegistry: managerRegistry}
}

// Execute replaces the inventory only when the listing succeeded and parsed.
// On any failure the inventory keeps its previous records.
func (it *ListCommand) Execute(
	ctx context.Context,
	target entities.Target,
	inventory *entities.Inventory,
) entities.OperationResult {
	if rejected, ok := requireInventory(inventory, "Failed to list packages"); !ok {
		return rejected
	}

	manager, err := it.managerRegistry.Get(target)
	if err != nil {
		return failure("Failed to list packages", err)
	}

	records, listErr := manager.List(ctx)
	if listErr != nil {
		return failure("Failed to list packages", listErr)
	}

	inventory.Replace(records)

	message := fmt.Sprintf("Found %d packages", len(records))
	logger.Infof("[%s] %s", manager.Name(), message)
	return entities.Succeeded(message, inventory.Records())
}
