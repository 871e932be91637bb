package repositories

import (
	"github.com/rios0rios0/modinstaller/internal/infrastructure/process"
	pipRepo "github.com/rios0rios0/modinstaller/internal/infrastructure/repositories/pip"
	uvRepo "github.com/rios0rios0/modinstaller/internal/infrastructure/repositories/uv"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register manager registry with all backend factories
	return container.Provide(NewDefaultManagerRegistry)
}

// NewDefaultManagerRegistry registers every backend a config may name,
// spawning real processes.
func NewDefaultManagerRegistry() *ManagerRegistry {
	reg := NewManagerRegistry(func(env []string) process.Runner {
		return process.NewExecRunner(env)
	})
	reg.Register("pip", pipRepo.NewPackageManagerRepository)
	reg.Register("uv", uvRepo.NewPackageManagerRepository)
	return reg
}
