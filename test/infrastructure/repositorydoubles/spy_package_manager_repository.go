//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	"github.com/rios0rios0/modinstaller/internal/domain/repositories"
)

// SpyPackageManagerRepository implements repositories.PackageManagerRepository
// as a configurable spy. Installed is the simulated environment: Install and
// Uninstall mutate it when they succeed, and List reports it.
type SpyPackageManagerRepository struct {
	// --- identity ---
	ManagerName string
	SelfName    string

	// --- simulated environment ---
	Installed []entities.PackageRecord

	// --- List ---
	ListErr   error
	ListCalls int

	// --- Install ---
	InstallErr     error
	InstallVersion string // version recorded for newly installed packages
	InstalledNames []string

	// --- Uninstall ---
	UninstallErr     error
	UninstalledNames []string

	// --- Bootstrap / Upgrade ---
	BootstrapErr   error
	BootstrapCalls int
	UpgradeErr     error
	UpgradeCalls   int
	UpgradeTo      string // new version of SelfName after a successful upgrade
}

var _ repositories.PackageManagerRepository = (*SpyPackageManagerRepository)(nil)

func (s *SpyPackageManagerRepository) Name() string {
	if s.ManagerName == "" {
		return "spy"
	}
	return s.ManagerName
}

func (s *SpyPackageManagerRepository) SelfPackage() string { return s.SelfName }

func (s *SpyPackageManagerRepository) List(_ context.Context) ([]entities.PackageRecord, error) {
	s.ListCalls++
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]entities.PackageRecord, len(s.Installed))
	copy(out, s.Installed)
	return out, nil
}

func (s *SpyPackageManagerRepository) Install(_ context.Context, name string) error {
	s.InstalledNames = append(s.InstalledNames, name)
	if s.InstallErr != nil {
		return s.InstallErr
	}
	version := s.InstallVersion
	if version == "" {
		version = "1.0.0"
	}
	s.Installed = append(s.Installed, entities.PackageRecord{Name: name, Version: version})
	return nil
}

func (s *SpyPackageManagerRepository) Uninstall(_ context.Context, name string) error {
	s.UninstalledNames = append(s.UninstalledNames, name)
	if s.UninstallErr != nil {
		return s.UninstallErr
	}
	kept := s.Installed[:0]
	for _, record := range s.Installed {
		if record.Name != name {
			kept = append(kept, record)
		}
	}
	s.Installed = kept
	return nil
}

func (s *SpyPackageManagerRepository) Bootstrap(_ context.Context) error {
	s.BootstrapCalls++
	return s.BootstrapErr
}

func (s *SpyPackageManagerRepository) Upgrade(_ context.Context) error {
	s.UpgradeCalls++
	if s.UpgradeErr != nil {
		return s.UpgradeErr
	}
	if s.UpgradeTo != "" && s.SelfName != "" {
		for i := range s.Installed {
			if s.Installed[i].Name == s.SelfName {
				s.Installed[i].Version = s.UpgradeTo
			}
		}
	}
	return nil
}

// Invocations returns the number of simulated child processes spawned.
func (s *SpyPackageManagerRepository) Invocations() int {
	return s.ListCalls + len(s.InstalledNames) + len(s.UninstalledNames) + s.BootstrapCalls + s.UpgradeCalls
}
