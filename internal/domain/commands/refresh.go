package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

// refreshAfterMutation runs exactly one list after a successful mutation.
// The mutation already happened, so a failed refresh keeps the result
// successful and says so in the message.
func refreshAfterMutation(
	ctx context.Context,
	list List,
	target entities.Target,
	inventory *entities.Inventory,
	describe func() string,
) entities.OperationResult {
	refreshed := list.Execute(ctx, target, inventory)
	if !refreshed.OK {
		message := describe()
		logger.Warnf("Package list could not be refreshed: %v", refreshed.Err)
		return entities.OperationResult{
			OK:       true,
			Message:  fmt.Sprintf("%s, but the package list could not be refreshed", message),
			Packages: inventory.Records(),
			Err:      refreshed.Err,
		}
	}
	return entities.Succeeded(describe(), refreshed.Packages)
}

// failure logs and wraps an error into a failed result.
func failure(prefix string, err error) entities.OperationResult {
	message := fmt.Sprintf("%s: %v", prefix, err)
	logger.Error(message)
	return entities.Failed(message, err)
}

// requireInventory rejects a nil inventory before anything is spawned.
func requireInventory(inventory *entities.Inventory, prefix string) (entities.OperationResult, bool) {
	if inventory != nil {
		return entities.OperationResult{}, true
	}
	return failure(prefix, &entities.ValidationError{Field: "inventory", Err: entities.ErrNoInventory}), false
}
