package systemd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hiro2620/sphero-controll/test/mocks"
)

func TestInstallUnitRendersAndWrites(t *testing.T) {
	srcDir := t.TempDir()
	unitDir := t.TempDir()
	template := filepath.Join(srcDir, "sphero.service")
	if err := os.WriteFile(template, []byte("ExecStart=INSTALL_DIR/main.py\n"), 0644); err != nil {
		t.Fatalf("WriteFile() returned error: %v", err)
	}

	manager := NewManager(mocks.NewFakeRunner(), unitDir)

	err := manager.InstallUnit(context.Background(), template, "sphero.service", "/opt/sphero")
	if err != nil {
		t.Fatalf("InstallUnit() returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(unitDir, "sphero.service"))
	if err != nil {
		t.Fatalf("rendered unit not written: %v", err)
	}
	if !strings.Contains(string(data), "ExecStart=/opt/sphero/main.py") {
		t.Errorf("placeholder not substituted:\n%s", data)
	}
}

func TestInstallUnitMissingTemplate(t *testing.T) {
	manager := NewManager(mocks.NewFakeRunner(), t.TempDir())

	err := manager.InstallUnit(context.Background(), "/nonexistent/sphero.service", "sphero.service", "/opt/sphero")
	if err == nil {
		t.Fatal("InstallUnit() should fail when the template is missing")
	}
}

func TestReloadAndEnable(t *testing.T) {
	runner := mocks.NewFakeRunner()
	manager := NewManager(runner, t.TempDir())
	ctx := context.Background()

	if err := manager.Reload(ctx); err != nil {
		t.Fatalf("Reload() returned error: %v", err)
	}
	if err := manager.Enable(ctx, "sphero.service"); err != nil {
		t.Fatalf("Enable() returned error: %v", err)
	}

	if !runner.CalledWith("systemctl daemon-reload") {
		t.Errorf("daemon-reload not run: %v", runner.Calls)
	}
	if !runner.CalledWith("systemctl enable sphero.service") {
		t.Errorf("enable not run: %v", runner.Calls)
	}
}

func TestIsEnabled(t *testing.T) {
	runner := mocks.NewFakeRunner()
	runner.Outputs["systemctl is-enabled sphero.service"] = "enabled\n"
	runner.Outputs["systemctl is-enabled pigpiod"] = "disabled\n"
	runner.FailOn["systemctl is-enabled missing.service"] = errors.New("exit status 4")
	manager := NewManager(runner, t.TempDir())
	ctx := context.Background()

	if on, err := manager.IsEnabled(ctx, "sphero.service"); err != nil || !on {
		t.Errorf("IsEnabled(sphero.service) = %v, %v, expected true", on, err)
	}
	if on, err := manager.IsEnabled(ctx, "pigpiod"); err != nil || on {
		t.Errorf("IsEnabled(pigpiod) = %v, %v, expected false", on, err)
	}
	// Unknown units exit non-zero; that is a false, not an error
	if on, err := manager.IsEnabled(ctx, "missing.service"); err != nil || on {
		t.Errorf("IsEnabled(missing.service) = %v, %v, expected false, nil", on, err)
	}
}

func TestUnitPath(t *testing.T) {
	manager := NewManager(mocks.NewFakeRunner(), "/etc/systemd/system").(*Manager)

	if got := manager.UnitPath("sphero.service"); got != "/etc/systemd/system/sphero.service" {
		t.Errorf("UnitPath() = %s", got)
	}
}
