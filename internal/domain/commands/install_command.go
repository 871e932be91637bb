package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	infraRepos "github.com/rios0rios0/modinstaller/internal/infrastructure/repositories"
)

// Install is the interface for the install command.
type Install interface {
	Execute(
		ctx context.Context,
		target entities.Target,
		inventory *entities.Inventory,
		name string,
	) entities.OperationResult
}

// InstallCommand installs one package by its literal name and refreshes the
// inventory afterwards.
type InstallCommand struct {
	managerRegistry *infraRepos.ManagerRegistry
	list            List
}

// NewInstallCommand creates a new InstallCommand.
func NewInstallCommand(managerRegistry *infraRepos.ManagerRegistry, list List) *InstallCommand {
	return &InstallCommand{
		managerRegistry: managerRegistry,
		list:            list,
	}
}

// Execute validates the name before anything is spawned. A failed install
// leaves the inventory untouched and triggers no refresh.
func (it *InstallCommand) Execute(
	ctx context.Context,
	target entities.Target,
	inventory *entities.Inventory,
	name string,
) entities.OperationResult {
	packageName := strings.TrimSpace(name)
	if packageName == "" {
		err := &entities.ValidationError{Field: "package name", Err: entities.ErrEmptyPackageName}
		logger.Error("Please enter a package name")
		return entities.Failed("Please enter a package name", err)
	}

	if rejected, ok := requireInventory(inventory, fmt.Sprintf("Failed to install %s", packageName)); !ok {
		return rejected
	}

	manager, err := it.managerRegistry.Get(target)
	if err != nil {
		return failure(fmt.Sprintf("Failed to install %s", packageName), err)
	}

	logger.Infof("[%s] Installing %s...", manager.Name(), packageName)
	if installErr := manager.Install(ctx, packageName); installErr != nil {
		return failure(fmt.Sprintf("Failed to install %s", packageName), installErr)
	}

	message := fmt.Sprintf("Successfully installed %s", packageName)
	logger.Infof("[%s] %s", manager.Name(), message)
	return refreshAfterMutation(ctx, it.list, target, inventory, func() string { return message })
}
