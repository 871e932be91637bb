//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	domainRepos "github.com/rios0rios0/modinstaller/internal/domain/repositories"
	"github.com/rios0rios0/modinstaller/internal/infrastructure/process"
	infraRepos "github.com/rios0rios0/modinstaller/internal/infrastructure/repositories"
	processdoubles "github.com/rios0rios0/modinstaller/test/infrastructure/processdoubles"
)

// NewRegistryWith returns a registry whose only backend, registered as "pip",
// is the given repository.
func NewRegistryWith(repo domainRepos.PackageManagerRepository) *infraRepos.ManagerRegistry {
	registry := infraRepos.NewManagerRegistry(func(_ []string) process.Runner {
		return &processdoubles.SpyRunner{}
	})
	registry.Register("pip", func(_ process.Runner, _ entities.Target) domainRepos.PackageManagerRepository {
		return repo
	})
	return registry
}

// PipTarget is the target every gateway test runs against.
func PipTarget() entities.Target {
	return entities.Target{Manager: "pip", Interpreter: "/opt/host/python/bin/python3.11"}
}
