//go:build integration || unit || test

// Package commanddoubles provides hand-crafted stubs for the gateway command interfaces.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/modinstaller/internal/domain/commands"
	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

// StubListCommand implements commands.List. A zero Result reports an empty
// successful listing.
type StubListCommand struct {
	Result    entities.OperationResult
	Records   []entities.PackageRecord // replaced into the inventory on success
	CallCount int
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	_ entities.Target,
	inventory *entities.Inventory,
) entities.OperationResult {
	s.CallCount++
	if s.Result.Message == "" && s.Result.Err == nil {
		inventory.Replace(s.Records)
		return entities.Succeeded("Found packages", inventory.Records())
	}
	if s.Result.OK {
		inventory.Replace(s.Records)
	}
	return s.Result
}

// StubInstallCommand implements commands.Install.
type StubInstallCommand struct {
	Result    entities.OperationResult
	Names     []string
	CallCount int
}

var _ commands.Install = (*StubInstallCommand)(nil)

func (s *StubInstallCommand) Execute(
	_ context.Context,
	_ entities.Target,
	_ *entities.Inventory,
	name string,
) entities.OperationResult {
	s.CallCount++
	s.Names = append(s.Names, name)
	return s.Result
}

// StubUninstallCommand implements commands.Uninstall.
type StubUninstallCommand struct {
	Result     entities.OperationResult
	Selections []entities.Selection
	CallCount  int
}

var _ commands.Uninstall = (*StubUninstallCommand)(nil)

func (s *StubUninstallCommand) Execute(
	_ context.Context,
	_ entities.Target,
	_ *entities.Inventory,
	selection entities.Selection,
) entities.OperationResult {
	s.CallCount++
	s.Selections = append(s.Selections, selection)
	return s.Result
}

// StubEnsureCommand implements commands.Ensure.
type StubEnsureCommand struct {
	Result    entities.OperationResult
	CallCount int
}

var _ commands.Ensure = (*StubEnsureCommand)(nil)

func (s *StubEnsureCommand) Execute(
	_ context.Context,
	_ entities.Target,
	_ *entities.Inventory,
) entities.OperationResult {
	s.CallCount++
	return s.Result
}
