package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	domainRepos "github.com/rios0rios0/modinstaller/internal/domain/repositories"
	"github.com/rios0rios0/modinstaller/internal/infrastructure/process"
)

// ManagerFactory is a constructor function that creates a PackageManagerRepository
// bound to the given target.
type ManagerFactory func(runner process.Runner, target entities.Target) domainRepos.PackageManagerRepository

// RunnerFactory creates the process runner for a target's extra environment.
type RunnerFactory func(env []string) process.Runner

// ManagerRegistry manages all registered package manager backends.
type ManagerRegistry struct {
	managers  map[string]ManagerFactory
	newRunner RunnerFactory
}

// NewManagerRegistry creates an empty manager registry.
func NewManagerRegistry(newRunner RunnerFactory) *ManagerRegistry {
	return &ManagerRegistry{
		managers:  make(map[string]ManagerFactory),
		newRunner: newRunner,
	}
}

// Register adds a backend factory under the given name (e.g. "pip").
func (r *ManagerRegistry) Register(name string, factory ManagerFactory) {
	r.managers[name] = factory
}

// Get returns a backend bound to the target's manager and interpreter.
func (r *ManagerRegistry) Get(target entities.Target) (domainRepos.PackageManagerRepository, error) {
	factory, ok := r.managers[target.Manager]
	if !ok {
		return nil, fmt.Errorf("unknown package manager: %q", target.Manager)
	}
	return factory(r.newRunner(target.Env), target), nil
}

// Names returns the registered backend names in sorted order.
func (r *ManagerRegistry) Names() []string {
	names := make([]string, 0, len(r.managers))
	for name := range r.managers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
