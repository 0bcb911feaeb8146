package bluetooth

import (
	"context"
	"fmt"
	"strings"

	"github.com/hiro2620/sphero-controll/internal/application/ports"
	"github.com/hiro2620/sphero-controll/internal/executor"
)

// Inspector queries the Bluetooth controller through bluetoothctl
type Inspector struct {
	runner executor.Runner
}

// NewInspector creates a bluetoothctl-backed inspector
func NewInspector(runner executor.Runner) ports.BluetoothInspector {
	return &Inspector{runner: runner}
}

// KnownDevices lists the devices the controller knows about, one
// entry per non-empty output line. An empty result means no usable
// Bluetooth hardware is present.
func (i *Inspector) KnownDevices(ctx context.Context) ([]string, error) {
	out, err := i.runner.Output(ctx, "bluetoothctl", "devices")
	if err != nil {
		return nil, fmt.Errorf("bluetoothctl devices: %w", err)
	}
	return nonEmptyLines(out), nil
}

// Controllers lists the Bluetooth controllers on the host. A host can
// have a working controller with an empty device cache.
func (i *Inspector) Controllers(ctx context.Context) ([]string, error) {
	out, err := i.runner.Output(ctx, "bluetoothctl", "list")
	if err != nil {
		return nil, fmt.Errorf("bluetoothctl list: %w", err)
	}
	return nonEmptyLines(out), nil
}

func nonEmptyLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
