package pip

import (
	"context"
	"fmt"
	"os"

	"github.com/hiro2620/sphero-controll/internal/application/ports"
	"github.com/hiro2620/sphero-controll/internal/executor"
	"github.com/hiro2620/sphero-controll/internal/ui"
)

// Installer installs Python dependencies with pip3
type Installer struct {
	runner executor.Runner
}

// NewInstaller creates a pip3-backed Python installer
func NewInstaller(runner executor.Runner) ports.PythonInstaller {
	return &Installer{runner: runner}
}

// InstallRequirements installs the packages listed in the manifest,
// scoped to the current user. --break-system-packages permits the
// install into Debian's externally-managed environment.
func (i *Installer) InstallRequirements(ctx context.Context, manifest string) error {
	if _, err := os.Stat(manifest); err != nil {
		return fmt.Errorf("requirements manifest not found: %s: %w", manifest, err)
	}

	ui.SubStep("Installing Python dependencies from %s", manifest)

	err := i.runner.Run(ctx, "pip3", "install", "--user", "--break-system-packages", "-r", manifest)
	if err != nil {
		return fmt.Errorf("failed to install python packages: %w", err)
	}
	return nil
}
