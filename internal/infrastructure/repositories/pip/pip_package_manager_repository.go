package pip

import (
	"context"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	"github.com/rios0rios0/modinstaller/internal/domain/repositories"
	"github.com/rios0rios0/modinstaller/internal/infrastructure/process"
	"github.com/rios0rios0/modinstaller/internal/infrastructure/repositories/listing"
)

const (
	managerName     = "pip"
	bootstrapModule = "ensurepip"
)

// PipPackageManagerRepository drives pip through `<interpreter> -m pip`, so
// every invocation targets exactly the configured interpreter.
type PipPackageManagerRepository struct {
	runner       process.Runner
	interpreter  string
	installFlags []string
}

// NewPackageManagerRepository creates a pip backend bound to target's interpreter.
func NewPackageManagerRepository(
	runner process.Runner,
	target entities.Target,
) repositories.PackageManagerRepository {
	return &PipPackageManagerRepository{
		runner:       runner,
		interpreter:  target.Interpreter,
		installFlags: target.InstallFlags,
	}
}

func (it *PipPackageManagerRepository) Name() string { return managerName }

func (it *PipPackageManagerRepository) SelfPackage() string { return managerName }

// List runs `pip list --format=json`.
func (it *PipPackageManagerRepository) List(ctx context.Context) ([]entities.PackageRecord, error) {
	output, err := it.pip(ctx, "list", "--format=json")
	if err != nil {
		return nil, err
	}
	return listing.ParseJSON(output.Stdout)
}

// Install runs `pip install [flags] <name>`.
func (it *PipPackageManagerRepository) Install(ctx context.Context, name string) error {
	args := make([]string, 0, len(it.installFlags)+2) //nolint:mnd // "install" + name
	args = append(args, "install")
	args = append(args, it.installFlags...)
	args = append(args, name)
	_, err := it.pip(ctx, args...)
	return err
}

// Uninstall runs `pip uninstall -y <name>`.
func (it *PipPackageManagerRepository) Uninstall(ctx context.Context, name string) error {
	_, err := it.pip(ctx, "uninstall", "-y", name)
	return err
}

// Bootstrap runs `ensurepip --default-pip`.
func (it *PipPackageManagerRepository) Bootstrap(ctx context.Context) error {
	_, err := it.runner.Run(ctx, it.interpreter, "-m", bootstrapModule, "--default-pip")
	return err
}

// Upgrade runs `pip install --upgrade pip`.
func (it *PipPackageManagerRepository) Upgrade(ctx context.Context) error {
	_, err := it.pip(ctx, "install", "--upgrade", managerName)
	return err
}

func (it *PipPackageManagerRepository) pip(ctx context.Context, args ...string) (*process.Output, error) {
	return it.runner.Run(ctx, it.interpreter, append([]string{"-m", managerName}, args...)...)
}
