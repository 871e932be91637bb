package repositories

import (
	"context"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

// PackageManagerRepository abstracts the package manager of one interpreter.
// Every method spawns exactly one child process and blocks until it exits.
// Implementations never run two invocations concurrently on their own; callers
// serialize operations.
type PackageManagerRepository interface {
	// Name returns the backend identifier (e.g. "pip", "uv").
	Name() string

	// SelfPackage returns the package name under which the manager reports
	// itself in List output, or "" when it does not.
	SelfPackage() string

	// List returns the installed packages in the manager's own output order.
	List(ctx context.Context) ([]entities.PackageRecord, error)

	// Install installs the literal package name.
	Install(ctx context.Context, name string) error

	// Uninstall removes the package without prompting for confirmation.
	Uninstall(ctx context.Context, name string) error

	// Bootstrap guarantees the manager itself is present.
	Bootstrap(ctx context.Context) error

	// Upgrade brings the manager to its latest version.
	Upgrade(ctx context.Context) error
}
