package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	infraRepos "github.com/rios0rios0/modinstaller/internal/infrastructure/repositories"
)

// Ensure is the interface for the ensure command.
type Ensure interface {
	Execute(ctx context.Context, target entities.Target, inventory *entities.Inventory) entities.OperationResult
}

// EnsureCommand bootstraps the package manager and upgrades it to the latest version.
type EnsureCommand struct {
	managerRegistry *infraRepos.ManagerRegistry
	list            List
}

// NewEnsureCommand creates a new EnsureCommand.
func NewEnsureCommand(managerRegistry *infraRepos.ManagerRegistry, list List) *EnsureCommand {
	return &EnsureCommand{
		managerRegistry: managerRegistry,
		list:            list,
	}
}

// Execute never attempts the upgrade when the bootstrap failed.
func (it *EnsureCommand) Execute(
	ctx context.Context,
	target entities.Target,
	inventory *entities.Inventory,
) entities.OperationResult {
	if rejected, ok := requireInventory(inventory, "Error installing package manager"); !ok {
		return rejected
	}

	manager, err := it.managerRegistry.Get(target)
	if err != nil {
		return failure("Error installing package manager", err)
	}

	self := manager.SelfPackage()
	before := versionOf(inventory, self)

	logger.Infof("[%s] Ensuring the package manager is present...", manager.Name())
	if bootstrapErr := manager.Bootstrap(ctx); bootstrapErr != nil {
		return failure(fmt.Sprintf("Error installing %s", manager.Name()), bootstrapErr)
	}

	logger.Infof("[%s] Upgrading the package manager...", manager.Name())
	if upgradeErr := manager.Upgrade(ctx); upgradeErr != nil {
		return failure(fmt.Sprintf("Error upgrading %s", manager.Name()), upgradeErr)
	}

	return refreshAfterMutation(ctx, it.list, target, inventory, func() string {
		message := describeUpgrade(manager.Name(), before, versionOf(inventory, self))
		logger.Infof("[%s] %s", manager.Name(), message)
		return message
	})
}

func versionOf(inventory *entities.Inventory, name string) string {
	if name == "" {
		return ""
	}
	record, ok := inventory.At(inventory.IndexOf(name))
	if !ok {
		return ""
	}
	return record.Version
}

func describeUpgrade(manager, before, after string) string {
	switch {
	case after == "":
		return fmt.Sprintf("%s checked/installed successfully", manager)
	case before == "":
		return fmt.Sprintf("%s checked/installed successfully (%s %s)", manager, manager, after)
	case isNewerVersion(before, after):
		return fmt.Sprintf("%s upgraded from %s to %s", manager, before, after)
	default:
		return fmt.Sprintf("%s already at %s", manager, after)
	}
}

// --- version helpers ---

func isNewerVersion(current, newVersion string) bool {
	cur := normalizeVersion(current)
	nv := normalizeVersion(newVersion)
	if semver.IsValid(cur) && semver.IsValid(nv) {
		return semver.Compare(nv, cur) > 0
	}
	return newVersion > current
}

func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return version
}
