package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hiro2620/sphero-controll/internal/application/ports"
	"github.com/hiro2620/sphero-controll/internal/config"
	"github.com/hiro2620/sphero-controll/internal/domain/step"
	"github.com/hiro2620/sphero-controll/internal/ui"
)

// Step names of the provisioning workflow
const (
	StepInstallPackages   step.Name = "install-packages"
	StepInstallPythonDeps step.Name = "install-python-deps"
	StepEnableInterfaces  step.Name = "enable-interfaces"
	StepEnableGPIODaemon  step.Name = "enable-gpio-daemon"
	StepVerifyBluetooth   step.Name = "verify-bluetooth"
	StepPlaceArtifacts    step.Name = "place-artifacts"
	StepRegisterService   step.Name = "register-service"
	StepEnableService     step.Name = "enable-service"
	StepEnableOverlay     step.Name = "enable-overlay"
)

// gpioDaemonUnit is the hardware-access helper the application talks to
const gpioDaemonUnit = "pigpiod"

// ProvisionCommand represents one provisioning run
type ProvisionCommand struct {
	// SkipReboot defers the final reboot, for image-build pipelines
	SkipReboot bool
}

// ProvisionCommandHandler executes the provisioning workflow: an
// ordered sequence of host mutations that halts on the first failure
// and ends with a scheduled reboot. There is no rollback; a failed
// run leaves the host partially provisioned.
type ProvisionCommandHandler struct {
	cfg        *config.ProvisionConfig
	packages   ports.PackageInstaller
	python     ports.PythonInstaller
	interfaces ports.InterfaceConfigurer
	bluetooth  ports.BluetoothInspector
	units      ports.UnitManager
	source     ports.ArtifactSource
	host       ports.HostController
	publishers []ports.ReportPublisher
}

// NewProvisionCommandHandler creates a provision command handler
func NewProvisionCommandHandler(
	cfg *config.ProvisionConfig,
	packages ports.PackageInstaller,
	python ports.PythonInstaller,
	interfaces ports.InterfaceConfigurer,
	bluetooth ports.BluetoothInspector,
	units ports.UnitManager,
	source ports.ArtifactSource,
	host ports.HostController,
	publishers []ports.ReportPublisher,
) *ProvisionCommandHandler {
	return &ProvisionCommandHandler{
		cfg:        cfg,
		packages:   packages,
		python:     python,
		interfaces: interfaces,
		bluetooth:  bluetooth,
		units:      units,
		source:     source,
		host:       host,
		publishers: publishers,
	}
}

// Handle executes the provision command
func (h *ProvisionCommandHandler) Handle(ctx context.Context, cmd ProvisionCommand) error {
	startedAt := time.Now()

	stagedDir, err := h.source.Stage(ctx)
	if err != nil {
		return fmt.Errorf("failed to stage artifacts: %w", err)
	}

	plan, err := h.BuildPlan(stagedDir)
	if err != nil {
		return fmt.Errorf("failed to build provisioning plan: %w", err)
	}

	ui.Infof("Provisioning %s from %s", h.cfg.Service.Name, h.source.Describe())

	results, execErr := plan.Execute(ctx)
	h.publishReport(ctx, results, startedAt, execErr)

	if execErr != nil {
		return execErr
	}

	ui.Successf("The %s service is installed and enabled", h.cfg.Service.Name)

	if !*h.cfg.Reboot.Enabled || cmd.SkipReboot {
		ui.Infof("Reboot skipped; changes take effect after the next boot")
		return nil
	}

	ui.Infof("The host will now reboot to apply the changes")
	return h.host.Reboot(ctx, h.cfg.RebootDelay())
}

// BuildPlan assembles the step plan. Each step assumes the previous
// step's postcondition, so the needs-edges form a chain; disabled
// steps drop out without breaking it. stagedDir may be empty when
// the plan is only probed, never applied.
func (h *ProvisionCommandHandler) BuildPlan(stagedDir string) (*step.Plan, error) {
	cfg := h.cfg
	installDir := cfg.InstallDir()

	var steps []*step.Step
	var prev step.Name
	add := func(s *step.Step) {
		if prev != "" {
			s.Needs = append(s.Needs, prev)
		}
		steps = append(steps, s)
		prev = s.Name
	}

	add(&step.Step{
		Name:        StepInstallPackages,
		Description: "Install OS packages",
		// Historical fixed message, printed regardless of which package failed
		Diagnostic: "Failed to install python3 and python3-pip",
		Apply: func(ctx context.Context) error {
			return h.packages.Install(ctx, cfg.Packages.Apt)
		},
		Probe: func(ctx context.Context) (bool, error) {
			return h.packages.Installed(ctx, cfg.Packages.Apt)
		},
	})

	add(&step.Step{
		Name:        StepInstallPythonDeps,
		Description: "Install Python dependencies",
		Diagnostic:  "Failed to install the required python packages",
		Apply: func(ctx context.Context) error {
			return h.python.InstallRequirements(ctx, filepath.Join(stagedDir, cfg.Artifacts.Requirements))
		},
	})

	if *cfg.Interfaces.I2C || *cfg.Interfaces.RemoteGPIO {
		add(&step.Step{
			Name:        StepEnableInterfaces,
			Description: "Enable hardware interfaces",
			Diagnostic:  "Failed to enable the hardware interfaces",
			Apply: func(ctx context.Context) error {
				if *cfg.Interfaces.I2C {
					if err := h.interfaces.EnableI2C(ctx); err != nil {
						return err
					}
				}
				if *cfg.Interfaces.RemoteGPIO {
					if err := h.interfaces.EnableRemoteGPIO(ctx); err != nil {
						return err
					}
				}
				return nil
			},
			Probe: func(ctx context.Context) (bool, error) {
				if *cfg.Interfaces.I2C {
					on, err := h.interfaces.I2CEnabled(ctx)
					if err != nil || !on {
						return false, err
					}
				}
				if *cfg.Interfaces.RemoteGPIO {
					on, err := h.interfaces.RemoteGPIOEnabled(ctx)
					if err != nil || !on {
						return false, err
					}
				}
				return true, nil
			},
		})
	}

	add(&step.Step{
		Name:        StepEnableGPIODaemon,
		Description: "Enable the GPIO daemon",
		Diagnostic:  "Failed to enable the pigpio daemon",
		Apply: func(ctx context.Context) error {
			return h.units.Enable(ctx, gpioDaemonUnit)
		},
		Probe: func(ctx context.Context) (bool, error) {
			return h.units.IsEnabled(ctx, gpioDaemonUnit)
		},
	})

	if *cfg.Bluetooth.Required {
		add(&step.Step{
			Name:        StepVerifyBluetooth,
			Description: "Verify Bluetooth availability",
			Diagnostic:  "No bluetooth devices found",
			Apply: func(ctx context.Context) error {
				devices, err := h.bluetooth.KnownDevices(ctx)
				if err != nil {
					return err
				}
				if len(devices) == 0 {
					return fmt.Errorf("bluetooth controller reported no devices")
				}
				ui.SubStep("Found %d bluetooth device(s)", len(devices))
				return nil
			},
			Probe: func(ctx context.Context) (bool, error) {
				devices, err := h.bluetooth.KnownDevices(ctx)
				if err != nil {
					return false, err
				}
				return len(devices) > 0, nil
			},
		})
	}

	add(&step.Step{
		Name:        StepPlaceArtifacts,
		Description: "Place application files",
		Diagnostic:  "Failed to copy the application files",
		Apply: func(ctx context.Context) error {
			return h.source.Place(ctx, stagedDir, installDir)
		},
		Probe: func(ctx context.Context) (bool, error) {
			for _, name := range cfg.Artifacts.Files {
				if _, err := os.Stat(filepath.Join(installDir, filepath.Base(name))); err != nil {
					return false, nil
				}
			}
			return true, nil
		},
	})

	add(&step.Step{
		Name:        StepRegisterService,
		Description: "Install the service unit",
		Diagnostic:  "Failed to copy the service file",
		Apply: func(ctx context.Context) error {
			return h.units.InstallUnit(ctx, filepath.Join(stagedDir, cfg.Service.UnitTemplate), cfg.UnitName(), installDir)
		},
		Probe: func(ctx context.Context) (bool, error) {
			if _, err := os.Stat(h.units.UnitPath(cfg.UnitName())); err != nil {
				return false, nil
			}
			return true, nil
		},
	})

	add(&step.Step{
		Name:        StepEnableService,
		Description: "Enable the service",
		Diagnostic:  "Failed to enable the service",
		Apply: func(ctx context.Context) error {
			if err := h.units.Reload(ctx); err != nil {
				return err
			}
			return h.units.Enable(ctx, cfg.UnitName())
		},
		Probe: func(ctx context.Context) (bool, error) {
			return h.units.IsEnabled(ctx, cfg.UnitName())
		},
	})

	if *cfg.Overlay.Enabled {
		add(&step.Step{
			Name:        StepEnableOverlay,
			Description: "Enable the overlay filesystem",
			Diagnostic:  "Failed to enable overlayfs",
			Apply: func(ctx context.Context) error {
				if err := h.interfaces.EnableOverlayFS(ctx); err != nil {
					return err
				}
				ui.Infof("The root filesystem will be mounted read-only after reboot")
				return nil
			},
			Probe: func(ctx context.Context) (bool, error) {
				return h.interfaces.OverlayFSEnabled(ctx)
			},
		})
	}

	return step.NewPlan(steps...)
}

// publishReport delivers the run outcome to the configured fleet
// sinks. Publish failures are logged, never allowed to mask the
// provisioning result.
func (h *ProvisionCommandHandler) publishReport(ctx context.Context, results []step.Result, startedAt time.Time, execErr error) {
	if len(h.publishers) == 0 {
		return
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	status := "succeeded"
	if execErr != nil {
		status = "aborted"
	}

	report := ports.Report{
		Host:       hostname,
		Service:    h.cfg.Service.Name,
		Status:     status,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}
	for _, r := range results {
		sr := ports.StepReport{Name: r.Name.String(), State: r.State.String()}
		if r.Err != nil {
			sr.Error = r.Err.Error()
		}
		report.Steps = append(report.Steps, sr)
	}

	for _, pub := range h.publishers {
		if err := pub.Publish(ctx, report); err != nil {
			ui.Warnf("Failed to publish provision report to %s: %v", pub.Describe(), err)
		} else {
			ui.Debug("Published provision report to %s", pub.Describe())
		}
	}
}
