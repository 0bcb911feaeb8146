package config

import (
	"path/filepath"
	"time"
)

const (
	// DefaultServiceName is the service installed by this provisioner
	DefaultServiceName = "sphero"

	// DefaultConfigFileName is the default name for the provision manifest
	DefaultConfigFileName = "sphero.yaml"

	// EnvConfigFile is the environment variable for a custom manifest path
	EnvConfigFile = "SPHERO_PROVISION_CONFIG"

	// DefaultInstallRoot is the directory under which the service is installed
	DefaultInstallRoot = "/opt"

	// DefaultUnitDir is where systemd unit files are installed
	DefaultUnitDir = "/etc/systemd/system"

	// DefaultRebootDelaySeconds is the pause before the final reboot
	DefaultRebootDelaySeconds = 5
)

// DefaultAptPackages are the OS packages the sphero service needs:
// the JPEG 2000 codec for the OLED display, the Python runtime and
// installer, and the GPIO daemon.
var DefaultAptPackages = []string{"libopenjp2-7", "python3", "python3-pip", "pigpiod"}

// DefaultArtifactFiles are the application files placed into the install dir
var DefaultArtifactFiles = []string{"main.py"}

// ProvisionConfig is the sphero.yaml manifest. Every field has a
// default, so provisioning works with no manifest at all.
type ProvisionConfig struct {
	Version    string           `yaml:"version"`
	Service    ServiceInfo      `yaml:"service"`
	Artifacts  ArtifactsConfig  `yaml:"artifacts"`
	Packages   PackagesConfig   `yaml:"packages"`
	Interfaces InterfacesConfig `yaml:"interfaces"`
	Bluetooth  BluetoothConfig  `yaml:"bluetooth"`
	Overlay    OverlayConfig    `yaml:"overlay"`
	Reboot     RebootConfig     `yaml:"reboot"`
	AWS        *AWSConfig       `yaml:"aws,omitempty"`
	Report     *ReportConfig    `yaml:"report,omitempty"`
}

// ServiceInfo identifies the service being provisioned
type ServiceInfo struct {
	Name string `yaml:"name"`
	// InstallDir overrides the default /opt/<name>
	InstallDir string `yaml:"install_dir,omitempty"`
	// UnitTemplate is the unit file template containing the
	// INSTALL_DIR placeholder, relative to the artifact source
	UnitTemplate string `yaml:"unit_template,omitempty"`
	// UnitDir is where the rendered unit file is installed
	UnitDir string `yaml:"unit_dir,omitempty"`
}

// ArtifactsConfig describes where application files come from
type ArtifactsConfig struct {
	// Source is a local directory or an s3://bucket/prefix URL
	Source string `yaml:"source,omitempty"`
	// Files are copied verbatim into the install directory
	Files []string `yaml:"files,omitempty"`
	// Requirements is the Python dependency manifest
	Requirements string `yaml:"requirements,omitempty"`
}

// PackagesConfig lists OS packages to install
type PackagesConfig struct {
	Apt []string `yaml:"apt,omitempty"`
}

// InterfacesConfig toggles hardware interface enablement
type InterfacesConfig struct {
	I2C        *bool `yaml:"i2c,omitempty"`
	RemoteGPIO *bool `yaml:"remote_gpio,omitempty"`
}

// BluetoothConfig controls the Bluetooth precondition check
type BluetoothConfig struct {
	Required *bool `yaml:"required,omitempty"`
}

// OverlayConfig controls the read-only root filesystem step
type OverlayConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// RebootConfig controls the final reboot
type RebootConfig struct {
	Enabled      *bool `yaml:"enabled,omitempty"`
	DelaySeconds int   `yaml:"delay_seconds,omitempty"`
}

// AWSConfig configures the clients shared by the S3 artifact source
// and the report publishers. Endpoint and static credentials exist
// for LocalStack-style testing.
type AWSConfig struct {
	Region          string `yaml:"region,omitempty"`
	Endpoint        string `yaml:"endpoint,omitempty"`
	AccessKeyID     string `yaml:"access_key_id,omitempty"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty"`
}

// ReportConfig configures where the provision report is published
type ReportConfig struct {
	SNSTopicARN string `yaml:"sns_topic_arn,omitempty"`
	SQSQueueURL string `yaml:"sqs_queue_url,omitempty"`
}

// Default returns a manifest with every field at its default value
func Default() *ProvisionConfig {
	cfg := &ProvisionConfig{Version: "1"}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero-valued fields with the fixed defaults
func (c *ProvisionConfig) ApplyDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.Service.Name == "" {
		c.Service.Name = DefaultServiceName
	}
	if c.Service.UnitTemplate == "" {
		c.Service.UnitTemplate = c.Service.Name + ".service"
	}
	if c.Service.UnitDir == "" {
		c.Service.UnitDir = DefaultUnitDir
	}
	if c.Artifacts.Source == "" {
		c.Artifacts.Source = "."
	}
	if len(c.Artifacts.Files) == 0 {
		c.Artifacts.Files = append([]string(nil), DefaultArtifactFiles...)
	}
	if c.Artifacts.Requirements == "" {
		c.Artifacts.Requirements = "requirements.txt"
	}
	if len(c.Packages.Apt) == 0 {
		c.Packages.Apt = append([]string(nil), DefaultAptPackages...)
	}
	if c.Interfaces.I2C == nil {
		c.Interfaces.I2C = boolPtr(true)
	}
	if c.Interfaces.RemoteGPIO == nil {
		c.Interfaces.RemoteGPIO = boolPtr(true)
	}
	if c.Bluetooth.Required == nil {
		c.Bluetooth.Required = boolPtr(true)
	}
	if c.Overlay.Enabled == nil {
		c.Overlay.Enabled = boolPtr(true)
	}
	if c.Reboot.Enabled == nil {
		c.Reboot.Enabled = boolPtr(true)
	}
	if c.Reboot.DelaySeconds == 0 {
		c.Reboot.DelaySeconds = DefaultRebootDelaySeconds
	}
}

// InstallDir returns the directory the application is installed into
func (c *ProvisionConfig) InstallDir() string {
	if c.Service.InstallDir != "" {
		return c.Service.InstallDir
	}
	return filepath.Join(DefaultInstallRoot, c.Service.Name)
}

// UnitName returns the systemd unit name derived from the service name
func (c *ProvisionConfig) UnitName() string {
	return c.Service.Name + ".service"
}

// RebootDelay returns the pause before the final reboot
func (c *ProvisionConfig) RebootDelay() time.Duration {
	return time.Duration(c.Reboot.DelaySeconds) * time.Second
}

func boolPtr(v bool) *bool {
	return &v
}
