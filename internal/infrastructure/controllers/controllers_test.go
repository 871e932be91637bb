//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	"github.com/rios0rios0/modinstaller/internal/infrastructure/controllers"
	"github.com/rios0rios0/modinstaller/test/domain/commanddoubles"
	"github.com/rios0rios0/modinstaller/test/domain/entitybuilders"
)

func TestListController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should print the inventory table after a successful listing", func(t *testing.T) {
		t.Parallel()

		// given
		list := &commanddoubles.StubListCommand{
			Records: entitybuilders.NewPackageRecordBuilder().WithVersion("2.31.0").Records("requests"),
		}
		ctrl := controllers.NewListController(list, entities.NewInventory())

		// when
		out := runController(t, ctrl, "")

		// then
		assert.Equal(t, 1, list.CallCount)
		assert.Contains(t, out, "[INFO] Found packages")
		assert.Contains(t, out, "PACKAGE")
		assert.Contains(t, out, "requests")
		assert.Contains(t, out, "2.31.0")
	})

	t.Run("should print only the error when the listing fails", func(t *testing.T) {
		t.Parallel()

		// given
		list := &commanddoubles.StubListCommand{
			Result: entities.Failed("Failed to list packages: boom", &entities.ParseError{}),
		}
		ctrl := controllers.NewListController(list, entities.NewInventory())

		// when
		out := runController(t, ctrl, "")

		// then
		assert.Contains(t, out, "[ERROR] Failed to list packages: boom")
		assert.NotContains(t, out, "PACKAGE")
	})
}

func TestInstallController_Execute(t *testing.T) {
	t.Parallel()

	// given
	install := &commanddoubles.StubInstallCommand{
		Result: entities.Succeeded("Successfully installed requests", nil),
	}
	ctrl := controllers.NewInstallController(install, entities.NewInventory())

	// when
	out := runController(t, ctrl, "", "requests")

	// then
	assert.Equal(t, []string{"requests"}, install.Names)
	assert.Contains(t, out, "[INFO] Successfully installed requests")
}

func TestUninstallController_Execute(t *testing.T) {
	t.Parallel()

	installed := entitybuilders.NewPackageRecordBuilder().Records("numpy", "requests", "six")

	t.Run("should refresh first and select by index", func(t *testing.T) {
		t.Parallel()

		// given
		list := &commanddoubles.StubListCommand{Records: installed}
		uninstall := &commanddoubles.StubUninstallCommand{
			Result: entities.Succeeded("Successfully uninstalled six", nil),
		}
		ctrl := controllers.NewUninstallController(list, uninstall, entities.NewInventory())

		// when
		out := runController(t, ctrl, "", "2")

		// then
		assert.Equal(t, 1, list.CallCount)
		require.Len(t, uninstall.Selections, 1)
		assert.Equal(t, 2, uninstall.Selections[0].Index)
		assert.Contains(t, out, "[INFO] Successfully uninstalled six")
	})

	t.Run("should select by name case insensitively", func(t *testing.T) {
		t.Parallel()

		// given
		list := &commanddoubles.StubListCommand{Records: installed}
		uninstall := &commanddoubles.StubUninstallCommand{
			Result: entities.Succeeded("Successfully uninstalled requests", nil),
		}
		ctrl := controllers.NewUninstallController(list, uninstall, entities.NewInventory())

		// when
		runController(t, ctrl, "", "Requests")

		// then
		require.Len(t, uninstall.Selections, 1)
		assert.Equal(t, 1, uninstall.Selections[0].Index)
	})

	t.Run("should pass an out of range selection for unknown names", func(t *testing.T) {
		t.Parallel()

		// given
		list := &commanddoubles.StubListCommand{Records: installed}
		uninstall := &commanddoubles.StubUninstallCommand{
			Result: entities.Failed("No package selected", entities.ErrNoSelection),
		}
		ctrl := controllers.NewUninstallController(list, uninstall, entities.NewInventory())

		// when
		out := runController(t, ctrl, "", "flask")

		// then
		require.Len(t, uninstall.Selections, 1)
		assert.Equal(t, -1, uninstall.Selections[0].Index)
		assert.Contains(t, out, "[ERROR] No package selected")
	})

	t.Run("should not uninstall when the refresh fails", func(t *testing.T) {
		t.Parallel()

		// given
		list := &commanddoubles.StubListCommand{
			Result: entities.Failed("Failed to list packages: boom", &entities.ParseError{}),
		}
		uninstall := &commanddoubles.StubUninstallCommand{}
		ctrl := controllers.NewUninstallController(list, uninstall, entities.NewInventory())

		// when
		out := runController(t, ctrl, "", "0")

		// then
		assert.Equal(t, 0, uninstall.CallCount)
		assert.Contains(t, out, "[ERROR] Failed to list packages")
	})
}

func TestEnsureController_Execute(t *testing.T) {
	t.Parallel()

	// given
	list := &commanddoubles.StubListCommand{}
	ensure := &commanddoubles.StubEnsureCommand{
		Result: entities.Succeeded("pip upgraded from 23.0.1 to 24.2", nil),
	}
	ctrl := controllers.NewEnsureController(list, ensure, entities.NewInventory())

	// when
	out := runController(t, ctrl, "")

	// then
	assert.Equal(t, 1, ensure.CallCount)
	assert.Contains(t, out, "[INFO] pip upgraded from 23.0.1 to 24.2")
}
