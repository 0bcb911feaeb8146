package apt

import (
	"context"
	"fmt"
	"strings"

	"github.com/hiro2620/sphero-controll/internal/application/ports"
	"github.com/hiro2620/sphero-controll/internal/executor"
	"github.com/hiro2620/sphero-controll/internal/ui"
)

// Installer installs OS packages through apt-get
type Installer struct {
	runner executor.Runner
}

// NewInstaller creates an apt-backed package installer
func NewInstaller(runner executor.Runner) ports.PackageInstaller {
	return &Installer{runner: runner}
}

// Install installs the given packages non-interactively.
// Re-running on already-installed packages is a no-op for apt.
func (i *Installer) Install(ctx context.Context, packages []string) error {
	ui.SubStep("Installing: %s", strings.Join(packages, ", "))

	args := append([]string{"install", "-y"}, packages...)
	if err := i.runner.Run(ctx, "apt-get", args...); err != nil {
		return fmt.Errorf("failed to install packages: %w", err)
	}
	return nil
}

// Installed reports whether every package is registered with dpkg
func (i *Installer) Installed(ctx context.Context, packages []string) (bool, error) {
	for _, pkg := range packages {
		if err := i.runner.Run(ctx, "dpkg", "-s", pkg); err != nil {
			return false, nil
		}
	}
	return true, nil
}
