package raspiconfig

import (
	"context"
	"fmt"
	"strings"

	"github.com/hiro2620/sphero-controll/internal/application/ports"
	"github.com/hiro2620/sphero-controll/internal/executor"
	"github.com/hiro2620/sphero-controll/internal/ui"
)

// Configurer drives raspi-config in non-interactive mode.
// The tool's getters print "0" when an interface is enabled.
type Configurer struct {
	runner executor.Runner
}

// NewConfigurer creates a raspi-config backed interface configurer
func NewConfigurer(runner executor.Runner) ports.InterfaceConfigurer {
	return &Configurer{runner: runner}
}

// EnableI2C enables the I2C bus
func (c *Configurer) EnableI2C(ctx context.Context) error {
	ui.SubStep("Enabling I2C")
	if err := c.runner.Run(ctx, "raspi-config", "nonint", "do_i2c", "0"); err != nil {
		return fmt.Errorf("failed to enable I2C: %w", err)
	}
	return nil
}

// EnableRemoteGPIO enables GPIO access over the network daemon
func (c *Configurer) EnableRemoteGPIO(ctx context.Context) error {
	ui.SubStep("Enabling remote GPIO")
	if err := c.runner.Run(ctx, "raspi-config", "nonint", "do_rgpio", "0"); err != nil {
		return fmt.Errorf("failed to enable remote GPIO: %w", err)
	}
	return nil
}

// EnableOverlayFS switches the root filesystem to overlay (read-only)
// mode. The change takes effect on the next boot.
func (c *Configurer) EnableOverlayFS(ctx context.Context) error {
	ui.SubStep("Enabling overlay filesystem")
	if err := c.runner.Run(ctx, "raspi-config", "nonint", "do_overlayfs", "0"); err != nil {
		return fmt.Errorf("failed to enable overlayfs: %w", err)
	}
	return nil
}

// I2CEnabled probes the I2C interface state
func (c *Configurer) I2CEnabled(ctx context.Context) (bool, error) {
	return c.getter(ctx, "get_i2c")
}

// RemoteGPIOEnabled probes the remote GPIO state
func (c *Configurer) RemoteGPIOEnabled(ctx context.Context) (bool, error) {
	return c.getter(ctx, "get_rgpio")
}

// OverlayFSEnabled probes the overlay filesystem state
func (c *Configurer) OverlayFSEnabled(ctx context.Context) (bool, error) {
	return c.getter(ctx, "get_overlay_now")
}

func (c *Configurer) getter(ctx context.Context, name string) (bool, error) {
	out, err := c.runner.Output(ctx, "raspi-config", "nonint", name)
	if err != nil {
		return false, fmt.Errorf("raspi-config %s: %w", name, err)
	}
	return strings.TrimSpace(out) == "0", nil
}
