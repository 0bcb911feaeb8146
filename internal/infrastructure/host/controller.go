package host

import (
	"context"
	"fmt"
	"time"

	"github.com/hiro2620/sphero-controll/internal/executor"
	"github.com/hiro2620/sphero-controll/internal/ui"
)

// Controller performs terminal host actions. The reboot is an
// intentional, unrecoverable termination of the host.
type Controller struct {
	runner executor.Runner
	// Sleep is replaceable in tests
	Sleep func(time.Duration)
}

// NewController creates a host controller
func NewController(runner executor.Runner) *Controller {
	return &Controller{
		runner: runner,
		Sleep:  time.Sleep,
	}
}

// Reboot pauses for delay, then reboots the host. On success the
// call never returns control to a running system.
func (c *Controller) Reboot(ctx context.Context, delay time.Duration) error {
	ui.Infof("Rebooting in %s...", delay)
	c.Sleep(delay)

	if err := c.runner.Run(ctx, "reboot"); err != nil {
		return fmt.Errorf("failed to reboot: %w", err)
	}
	return nil
}
