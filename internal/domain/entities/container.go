package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Panel state is created per interactive session by the panel controller.
	return container.Provide(NewInventory)
}
