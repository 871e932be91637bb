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

type panelDoubles struct {
	list      *commanddoubles.StubListCommand
	install   *commanddoubles.StubInstallCommand
	uninstall *commanddoubles.StubUninstallCommand
	ensure    *commanddoubles.StubEnsureCommand
}

func newPanel() (*controllers.PanelController, *panelDoubles) {
	doubles := &panelDoubles{
		list: &commanddoubles.StubListCommand{
			Records: entitybuilders.NewPackageRecordBuilder().Records("numpy", "requests"),
		},
		install:   &commanddoubles.StubInstallCommand{Result: entities.Succeeded("Successfully installed six", nil)},
		uninstall: &commanddoubles.StubUninstallCommand{Result: entities.Succeeded("Successfully uninstalled requests", nil)},
		ensure:    &commanddoubles.StubEnsureCommand{Result: entities.Succeeded("pip already at 24.2", nil)},
	}
	return controllers.NewPanelController(doubles.list, doubles.install, doubles.uninstall, doubles.ensure), doubles
}

func TestPanelController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should load the inventory once on start", func(t *testing.T) {
		t.Parallel()

		// given
		panel, doubles := newPanel()

		// when
		out := runController(t, panel, "quit\n")

		// then
		assert.Equal(t, 1, doubles.list.CallCount)
		assert.Contains(t, out, "numpy")
		assert.Contains(t, out, "requests")
	})

	t.Run("should install the name set with the name command", func(t *testing.T) {
		t.Parallel()

		// given
		panel, doubles := newPanel()

		// when
		out := runController(t, panel, "name six\ninstall\n")

		// then
		assert.Equal(t, []string{"six"}, doubles.install.Names)
		assert.Contains(t, out, "[INFO] Successfully installed six")
	})

	t.Run("should prefer the inline name and keep it as input", func(t *testing.T) {
		t.Parallel()

		// given
		panel, doubles := newPanel()

		// when
		runController(t, panel, "name six\ninstall flask\ninstall\n")

		// then
		assert.Equal(t, []string{"flask", "flask"}, doubles.install.Names)
	})

	t.Run("should uninstall the selected package", func(t *testing.T) {
		t.Parallel()

		// given
		panel, doubles := newPanel()

		// when
		out := runController(t, panel, "select 1\nuninstall\n")

		// then
		require.Len(t, doubles.uninstall.Selections, 1)
		assert.Equal(t, 1, doubles.uninstall.Selections[0].Index)
		assert.Contains(t, out, "[INFO] Selected requests 1.0.0")
		assert.Contains(t, out, "[INFO] Successfully uninstalled requests")
	})

	t.Run("should clear the selection after a successful uninstall", func(t *testing.T) {
		t.Parallel()

		// given
		panel, doubles := newPanel()

		// when
		runController(t, panel, "select 0\nuninstall\nuninstall\n")

		// then
		require.Len(t, doubles.uninstall.Selections, 2)
		assert.Equal(t, 0, doubles.uninstall.Selections[0].Index)
		assert.Equal(t, -1, doubles.uninstall.Selections[1].Index)
	})

	t.Run("should keep the selection when the uninstall fails", func(t *testing.T) {
		t.Parallel()

		// given
		panel, doubles := newPanel()
		doubles.uninstall.Result = entities.Failed(
			"Failed to uninstall requests",
			&entities.ProcessExecutionError{ExitCode: 1},
		)

		// when
		runController(t, panel, "select 1\nuninstall\nuninstall\n")

		// then
		require.Len(t, doubles.uninstall.Selections, 2)
		assert.Equal(t, 1, doubles.uninstall.Selections[1].Index)
	})

	t.Run("should refuse selections outside the inventory", func(t *testing.T) {
		t.Parallel()

		// given
		panel, doubles := newPanel()

		// when
		out := runController(t, panel, "select 5\nselect abc\n")

		// then
		assert.Contains(t, out, "[ERROR] No package selected")
		assert.Contains(t, out, "[ERROR] \"abc\" is not a package index")
		assert.Equal(t, 0, doubles.uninstall.CallCount)
	})

	t.Run("should run ensure and refresh on demand", func(t *testing.T) {
		t.Parallel()

		// given
		panel, doubles := newPanel()

		// when
		out := runController(t, panel, "ensure\nrefresh\n")

		// then
		assert.Equal(t, 1, doubles.ensure.CallCount)
		assert.Equal(t, 2, doubles.list.CallCount)
		assert.Contains(t, out, "[INFO] pip already at 24.2")
	})

	t.Run("should report unknown commands and keep running", func(t *testing.T) {
		t.Parallel()

		// given
		panel, doubles := newPanel()

		// when
		out := runController(t, panel, "frobnicate\nhelp\nname x\ninstall\n")

		// then
		assert.Contains(t, out, "[ERROR] Unknown command \"frobnicate\"")
		assert.Contains(t, out, "select <index>")
		assert.Equal(t, []string{"x"}, doubles.install.Names)
	})
}
