package host

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hiro2620/sphero-controll/test/mocks"
)

func TestRebootSleepsThenReboots(t *testing.T) {
	runner := mocks.NewFakeRunner()
	controller := NewController(runner)

	var slept time.Duration
	controller.Sleep = func(d time.Duration) { slept = d }

	if err := controller.Reboot(context.Background(), 5*time.Second); err != nil {
		t.Fatalf("Reboot() returned error: %v", err)
	}
	if slept != 5*time.Second {
		t.Errorf("slept %s, expected 5s", slept)
	}
	if len(runner.Calls) != 1 || runner.Calls[0] != "reboot" {
		t.Errorf("commands = %v, expected [reboot]", runner.Calls)
	}
}

func TestRebootWrapsFailure(t *testing.T) {
	runner := mocks.NewFakeRunner()
	runner.FailOn["reboot"] = errors.New("permission denied")
	controller := NewController(runner)
	controller.Sleep = func(time.Duration) {}

	if err := controller.Reboot(context.Background(), time.Second); err == nil {
		t.Fatal("Reboot() should propagate runner errors")
	}
}
