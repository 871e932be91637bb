package uv

import (
	"context"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	"github.com/rios0rios0/modinstaller/internal/domain/repositories"
	"github.com/rios0rios0/modinstaller/internal/infrastructure/process"
	"github.com/rios0rios0/modinstaller/internal/infrastructure/repositories/listing"
)

const (
	managerName = "uv"
	binaryName  = "uv"
)

// UvPackageManagerRepository drives `uv pip`. uv is a standalone binary, so
// the interpreter is pinned on every call with --python.
type UvPackageManagerRepository struct {
	runner       process.Runner
	interpreter  string
	installFlags []string
}

// NewPackageManagerRepository creates a uv backend bound to target's interpreter.
func NewPackageManagerRepository(
	runner process.Runner,
	target entities.Target,
) repositories.PackageManagerRepository {
	return &UvPackageManagerRepository{
		runner:       runner,
		interpreter:  target.Interpreter,
		installFlags: target.InstallFlags,
	}
}

func (it *UvPackageManagerRepository) Name() string { return managerName }

// SelfPackage is empty: uv does not live inside the interpreter's environment.
func (it *UvPackageManagerRepository) SelfPackage() string { return "" }

func (it *UvPackageManagerRepository) List(ctx context.Context) ([]entities.PackageRecord, error) {
	output, err := it.runner.Run(ctx, binaryName, "pip", "list", "--format=json", "--python", it.interpreter)
	if err != nil {
		return nil, err
	}
	return listing.ParseJSON(output.Stdout)
}

// Install passes install_flags verbatim; pip-only flags are rejected by uv.
func (it *UvPackageManagerRepository) Install(ctx context.Context, name string) error {
	args := []string{"pip", "install", "--python", it.interpreter}
	args = append(args, it.installFlags...)
	args = append(args, name)
	_, err := it.runner.Run(ctx, binaryName, args...)
	return err
}

// Uninstall needs no confirmation flag: uv never prompts.
func (it *UvPackageManagerRepository) Uninstall(ctx context.Context, name string) error {
	_, err := it.runner.Run(ctx, binaryName, "pip", "uninstall", "--python", it.interpreter, name)
	return err
}

// Bootstrap only verifies uv is reachable; it cannot install itself.
func (it *UvPackageManagerRepository) Bootstrap(ctx context.Context) error {
	_, err := it.runner.Run(ctx, binaryName, "--version")
	return err
}

func (it *UvPackageManagerRepository) Upgrade(ctx context.Context) error {
	_, err := it.runner.Run(ctx, binaryName, "self", "update")
	return err
}
