//go:build unit

package uv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	"github.com/rios0rios0/modinstaller/internal/infrastructure/repositories/uv"
	doubles "github.com/rios0rios0/modinstaller/test/infrastructure/processdoubles"
)

const interpreterPath = "/opt/host/python/bin/python3.11"

func TestUvPackageManagerRepository(t *testing.T) {
	t.Parallel()

	t.Run("should pin every environment command to the interpreter", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &doubles.SpyRunner{Stdout: []byte(`[{"name": "numpy", "version": "2.0.0"}]`)}
		repo := uv.NewPackageManagerRepository(runner, entities.Target{
			Manager:      "uv",
			Interpreter:  interpreterPath,
			InstallFlags: []string{"--no-cache"},
		})
		ctx := context.Background()

		// when
		records, listErr := repo.List(ctx)
		installErr := repo.Install(ctx, "numpy")
		uninstallErr := repo.Uninstall(ctx, "numpy")

		// then
		require.NoError(t, listErr)
		require.NoError(t, installErr)
		require.NoError(t, uninstallErr)
		assert.Equal(t, []entities.PackageRecord{{Name: "numpy", Version: "2.0.0"}}, records)
		require.Len(t, runner.Calls, 3)
		assert.Equal(t,
			[]string{"uv", "pip", "list", "--format=json", "--python", interpreterPath},
			runner.Calls[0].Argv(),
		)
		assert.Equal(t,
			[]string{"uv", "pip", "install", "--python", interpreterPath, "--no-cache", "numpy"},
			runner.Calls[1].Argv(),
		)
		assert.Equal(t,
			[]string{"uv", "pip", "uninstall", "--python", interpreterPath, "numpy"},
			runner.Calls[2].Argv(),
		)
	})

	t.Run("should verify and self-update uv for ensure", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &doubles.SpyRunner{}
		repo := uv.NewPackageManagerRepository(runner, entities.Target{Manager: "uv", Interpreter: interpreterPath})

		// when
		require.NoError(t, repo.Bootstrap(context.Background()))
		require.NoError(t, repo.Upgrade(context.Background()))

		// then
		assert.Empty(t, repo.SelfPackage())
		assert.Equal(t, []string{"uv", "--version"}, runner.Calls[0].Argv())
		assert.Equal(t, []string{"uv", "self", "update"}, runner.Calls[1].Argv())
	})
}
