package commands

import (
	"context"
	"fmt"

	"github.com/hiro2620/sphero-controll/internal/application/ports"
	"github.com/hiro2620/sphero-controll/internal/config"
	"github.com/hiro2620/sphero-controll/internal/ui"
)

// requiredTools are the host programs the workflow shells out to
var requiredTools = []string{"apt-get", "pip3", "raspi-config", "bluetoothctl", "systemctl"}

// VerifyCommand checks the host preconditions without mutating anything
type VerifyCommand struct{}

// VerifyCommandHandler handles the verify command
type VerifyCommandHandler struct {
	cfg       *config.ProvisionConfig
	bluetooth ports.BluetoothInspector
	lookPath  func(tool string) error
}

// NewVerifyCommandHandler creates a verify command handler
func NewVerifyCommandHandler(cfg *config.ProvisionConfig, bluetooth ports.BluetoothInspector, lookPath func(string) error) *VerifyCommandHandler {
	return &VerifyCommandHandler{
		cfg:       cfg,
		bluetooth: bluetooth,
		lookPath:  lookPath,
	}
}

// Handle runs the precondition checks and returns an error when any
// is unmet
func (h *VerifyCommandHandler) Handle(ctx context.Context, cmd VerifyCommand) error {
	unmet := 0

	for _, tool := range requiredTools {
		if err := h.lookPath(tool); err != nil {
			ui.Errorf("  ✗ %s not found on PATH", tool)
			unmet++
		} else {
			ui.Successf("  ✓ %s", tool)
		}
	}

	if *h.cfg.Bluetooth.Required {
		devices, err := h.bluetooth.KnownDevices(ctx)
		switch {
		case err != nil:
			ui.Errorf("  ✗ bluetooth query failed: %v", err)
			unmet++
		case len(devices) > 0:
			ui.Successf("  ✓ bluetooth (%d device(s))", len(devices))
		default:
			// Empty device cache; fall back to counting controllers
			controllers, err := h.bluetooth.Controllers(ctx)
			switch {
			case err != nil:
				ui.Errorf("  ✗ bluetooth query failed: %v", err)
				unmet++
			case len(controllers) == 0:
				ui.Errorf("  ✗ No bluetooth controller found")
				unmet++
			default:
				ui.Warnf("  ✓ bluetooth controller present, no devices known yet")
			}
		}
	}

	if unmet > 0 {
		return fmt.Errorf("%d precondition(s) unmet", unmet)
	}

	ui.Successf("Host is ready for provisioning")
	return nil
}
