package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewListController); err != nil {
		return err
	}
	if err := container.Provide(NewInstallController); err != nil {
		return err
	}
	if err := container.Provide(NewUninstallController); err != nil {
		return err
	}
	if err := container.Provide(NewEnsureController); err != nil {
		return err
	}
	if err := container.Provide(NewPanelController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	listController *ListController,
	installController *InstallController,
	uninstallController *UninstallController,
	ensureController *EnsureController,
	panelController *PanelController,
) *[]entities.Controller {
	return &[]entities.Controller{
		listController,
		installController,
		uninstallController,
		ensureController,
		panelController,
	}
}
