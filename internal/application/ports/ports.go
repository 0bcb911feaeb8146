package ports

import (
	"context"
	"time"
)

// PackageInstaller installs OS packages
type PackageInstaller interface {
	Install(ctx context.Context, packages []string) error
	// Installed reports whether every package is already present
	Installed(ctx context.Context, packages []string) (bool, error)
}

// PythonInstaller installs Python dependencies from a manifest file
type PythonInstaller interface {
	InstallRequirements(ctx context.Context, manifest string) error
}

// InterfaceConfigurer enables kernel hardware interfaces and probes
// their current state through the platform configuration tool
type InterfaceConfigurer interface {
	EnableI2C(ctx context.Context) error
	EnableRemoteGPIO(ctx context.Context) error
	EnableOverlayFS(ctx context.Context) error
	I2CEnabled(ctx context.Context) (bool, error)
	RemoteGPIOEnabled(ctx context.Context) (bool, error)
	OverlayFSEnabled(ctx context.Context) (bool, error)
}

// BluetoothInspector queries the Bluetooth stack
type BluetoothInspector interface {
	// KnownDevices returns the devices the controller knows about.
	// An empty list means no usable Bluetooth is present.
	KnownDevices(ctx context.Context) ([]string, error)
	// Controllers returns the Bluetooth controllers on the host,
	// distinguishing an empty device cache from missing hardware
	Controllers(ctx context.Context) ([]string, error)
}

// UnitManager installs and enables systemd units
type UnitManager interface {
	// InstallUnit renders the template at templatePath, substituting
	// the install directory for the placeholder token, and writes it
	// into the unit directory under unitName
	InstallUnit(ctx context.Context, templatePath, unitName, installDir string) error
	Reload(ctx context.Context) error
	Enable(ctx context.Context, unit string) error
	IsEnabled(ctx context.Context, unit string) (bool, error)
	// UnitPath returns where a unit of the given name is installed
	UnitPath(unitName string) string
}

// ArtifactSource stages application files and places them into the
// install directory. Stage returns a local directory holding the
// files; for a local source that is the source directory itself.
type ArtifactSource interface {
	Stage(ctx context.Context) (string, error)
	Place(ctx context.Context, stagedDir, installDir string) error
	// Describe names the source for log output
	Describe() string
}

// HostController performs the terminal host actions
type HostController interface {
	// Reboot pauses for delay, then reboots the host. It does not
	// return on success.
	Reboot(ctx context.Context, delay time.Duration) error
}

// ReportPublisher delivers the provision report to a fleet sink
type ReportPublisher interface {
	Publish(ctx context.Context, report Report) error
	// Describe names the sink for log output
	Describe() string
}

// Report summarizes one provisioning run
type Report struct {
	Host       string       `yaml:"host"`
	Service    string       `yaml:"service"`
	Status     string       `yaml:"status"`
	StartedAt  time.Time    `yaml:"started_at"`
	FinishedAt time.Time    `yaml:"finished_at"`
	Steps      []StepReport `yaml:"steps"`
}

// StepReport is the outcome of a single step
type StepReport struct {
	Name  string `yaml:"name"`
	State string `yaml:"state"`
	Error string `yaml:"error,omitempty"`
}
