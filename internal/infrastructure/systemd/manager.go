package systemd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hiro2620/sphero-controll/internal/application/ports"
	"github.com/hiro2620/sphero-controll/internal/executor"
	"github.com/hiro2620/sphero-controll/internal/ui"
)

// Manager installs and enables units through systemctl
type Manager struct {
	runner  executor.Runner
	unitDir string
}

// NewManager creates a unit manager writing into unitDir
func NewManager(runner executor.Runner, unitDir string) ports.UnitManager {
	return &Manager{runner: runner, unitDir: unitDir}
}

// InstallUnit renders the template and writes the unit file.
// An existing unit of the same name is overwritten.
func (m *Manager) InstallUnit(ctx context.Context, templatePath, unitName, installDir string) error {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read unit template %s: %w", templatePath, err)
	}

	rendered := RenderUnit(data, installDir)
	target := m.UnitPath(unitName)

	ui.SubStep("Installing unit %s", target)
	if err := os.WriteFile(target, rendered, 0644); err != nil {
		return fmt.Errorf("failed to write unit file %s: %w", target, err)
	}
	return nil
}

// Reload reloads the systemd configuration cache
func (m *Manager) Reload(ctx context.Context) error {
	if err := m.runner.Run(ctx, "systemctl", "daemon-reload"); err != nil {
		return fmt.Errorf("failed to reload systemd: %w", err)
	}
	return nil
}

// Enable marks a unit for automatic start on boot
func (m *Manager) Enable(ctx context.Context, unit string) error {
	ui.SubStep("Enabling %s", unit)
	if err := m.runner.Run(ctx, "systemctl", "enable", unit); err != nil {
		return fmt.Errorf("failed to enable %s: %w", unit, err)
	}
	return nil
}

// IsEnabled probes whether a unit is enabled
func (m *Manager) IsEnabled(ctx context.Context, unit string) (bool, error) {
	out, err := m.runner.Output(ctx, "systemctl", "is-enabled", unit)
	if err != nil {
		// is-enabled exits non-zero for disabled and unknown units
		return false, nil
	}
	return strings.TrimSpace(out) == "enabled", nil
}

// UnitPath returns where a unit of the given name is installed
func (m *Manager) UnitPath(unitName string) string {
	return filepath.Join(m.unitDir, unitName)
}
