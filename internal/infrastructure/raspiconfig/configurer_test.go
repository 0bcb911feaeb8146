package raspiconfig

import (
	"context"
	"errors"
	"testing"

	"github.com/hiro2620/sphero-controll/test/mocks"
)

func TestEnableCommands(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Configurer, ctx context.Context) error
		want string
	}{
		{
			name: "i2c",
			call: func(c *Configurer, ctx context.Context) error { return c.EnableI2C(ctx) },
			want: "raspi-config nonint do_i2c 0",
		},
		{
			name: "remote gpio",
			call: func(c *Configurer, ctx context.Context) error { return c.EnableRemoteGPIO(ctx) },
			want: "raspi-config nonint do_rgpio 0",
		},
		{
			name: "overlayfs",
			call: func(c *Configurer, ctx context.Context) error { return c.EnableOverlayFS(ctx) },
			want: "raspi-config nonint do_overlayfs 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := mocks.NewFakeRunner()
			configurer := NewConfigurer(runner).(*Configurer)

			if err := tt.call(configurer, context.Background()); err != nil {
				t.Fatalf("enable returned error: %v", err)
			}
			if len(runner.Calls) != 1 || runner.Calls[0] != tt.want {
				t.Errorf("commands = %v, expected [%q]", runner.Calls, tt.want)
			}
		})
	}
}

func TestGettersParseState(t *testing.T) {
	runner := mocks.NewFakeRunner()
	runner.Outputs["raspi-config nonint get_i2c"] = "0\n"
	runner.Outputs["raspi-config nonint get_rgpio"] = "1\n"
	runner.Outputs["raspi-config nonint get_overlay_now"] = "0"
	configurer := NewConfigurer(runner).(*Configurer)
	ctx := context.Background()

	if on, err := configurer.I2CEnabled(ctx); err != nil || !on {
		t.Errorf("I2CEnabled() = %v, %v, expected true", on, err)
	}
	if on, err := configurer.RemoteGPIOEnabled(ctx); err != nil || on {
		t.Errorf("RemoteGPIOEnabled() = %v, %v, expected false", on, err)
	}
	if on, err := configurer.OverlayFSEnabled(ctx); err != nil || !on {
		t.Errorf("OverlayFSEnabled() = %v, %v, expected true", on, err)
	}
}

func TestGetterPropagatesError(t *testing.T) {
	runner := mocks.NewFakeRunner()
	runner.FailOn["raspi-config nonint get_i2c"] = errors.New("raspi-config: command not found")
	configurer := NewConfigurer(runner).(*Configurer)

	if _, err := configurer.I2CEnabled(context.Background()); err == nil {
		t.Fatal("I2CEnabled() should propagate runner errors")
	}
}
