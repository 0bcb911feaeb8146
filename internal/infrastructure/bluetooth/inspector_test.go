package bluetooth

import (
	"context"
	"errors"
	"testing"

	"github.com/hiro2620/sphero-controll/test/mocks"
)

func TestKnownDevicesParsesLines(t *testing.T) {
	runner := mocks.NewFakeRunner()
	runner.Outputs["bluetoothctl devices"] = "Device AA:BB:CC:DD:EE:FF SB-1234\nDevice 11:22:33:44:55:66 SB-5678\n"
	inspector := NewInspector(runner)

	devices, err := inspector.KnownDevices(context.Background())
	if err != nil {
		t.Fatalf("KnownDevices() returned error: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("KnownDevices() returned %d devices, expected 2: %v", len(devices), devices)
	}
	if devices[0] != "Device AA:BB:CC:DD:EE:FF SB-1234" {
		t.Errorf("devices[0] = %q", devices[0])
	}
}

func TestKnownDevicesEmptyOutput(t *testing.T) {
	runner := mocks.NewFakeRunner()
	runner.Outputs["bluetoothctl devices"] = "\n"
	inspector := NewInspector(runner)

	devices, err := inspector.KnownDevices(context.Background())
	if err != nil {
		t.Fatalf("KnownDevices() returned error: %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("KnownDevices() = %v, expected no devices", devices)
	}
}

func TestControllersParsesLines(t *testing.T) {
	runner := mocks.NewFakeRunner()
	runner.Outputs["bluetoothctl list"] = "Controller B8:27:EB:12:34:56 raspberrypi [default]\n"
	inspector := NewInspector(runner)

	controllers, err := inspector.Controllers(context.Background())
	if err != nil {
		t.Fatalf("Controllers() returned error: %v", err)
	}
	if len(controllers) != 1 {
		t.Fatalf("Controllers() returned %d entries, expected 1: %v", len(controllers), controllers)
	}
}

func TestControllersEmptyOutput(t *testing.T) {
	runner := mocks.NewFakeRunner()
	runner.Outputs["bluetoothctl list"] = "\n"
	inspector := NewInspector(runner)

	controllers, err := inspector.Controllers(context.Background())
	if err != nil {
		t.Fatalf("Controllers() returned error: %v", err)
	}
	if len(controllers) != 0 {
		t.Errorf("Controllers() = %v, expected none", controllers)
	}
}

func TestKnownDevicesPropagatesError(t *testing.T) {
	runner := mocks.NewFakeRunner()
	runner.FailOn["bluetoothctl"] = errors.New("No default controller available")
	inspector := NewInspector(runner)

	if _, err := inspector.KnownDevices(context.Background()); err == nil {
		t.Fatal("KnownDevices() should propagate runner errors")
	}
}
