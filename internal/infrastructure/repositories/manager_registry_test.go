//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	domainRepos "github.com/rios0rios0/modinstaller/internal/domain/repositories"
	"github.com/rios0rios0/modinstaller/internal/infrastructure/process"
	infraRepos "github.com/rios0rios0/modinstaller/internal/infrastructure/repositories"
	processdoubles "github.com/rios0rios0/modinstaller/test/infrastructure/processdoubles"
	doubles "github.com/rios0rios0/modinstaller/test/infrastructure/repositorydoubles"
)

func TestManagerRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should build the registered backend with a runner for the target env", func(t *testing.T) {
		t.Parallel()

		// given
		var runnerEnv []string
		var builtTarget entities.Target
		spy := &doubles.SpyPackageManagerRepository{ManagerName: "pip"}
		registry := infraRepos.NewManagerRegistry(func(env []string) process.Runner {
			runnerEnv = env
			return &processdoubles.SpyRunner{}
		})
		registry.Register("pip", func(_ process.Runner, target entities.Target) domainRepos.PackageManagerRepository {
			builtTarget = target
			return spy
		})
		target := entities.Target{Manager: "pip", Interpreter: "/opt/python", Env: []string{"A=1"}}

		// when
		repo, err := registry.Get(target)

		// then
		require.NoError(t, err)
		assert.Same(t, spy, repo)
		assert.Equal(t, []string{"A=1"}, runnerEnv)
		assert.Equal(t, target, builtTarget)
	})

	t.Run("should return error for unknown manager", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewManagerRegistry(func(_ []string) process.Runner {
			return &processdoubles.SpyRunner{}
		})

		// when
		repo, err := registry.Get(entities.Target{Manager: "conda"})

		// then
		require.Error(t, err)
		assert.Nil(t, repo)
		assert.Contains(t, err.Error(), "unknown package manager")
	})

	t.Run("should list names in sorted order", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewManagerRegistry(nil)
		registry.Register("uv", nil)
		registry.Register("pip", nil)

		// when
		names := registry.Names()

		// then
		assert.Equal(t, []string{"pip", "uv"}, names)
	})

	t.Run("should register exactly the managers a config may name", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewDefaultManagerRegistry()

		// when
		names := registry.Names()

		// then
		assert.ElementsMatch(t, entities.SupportedManagers, names)
	})
}
