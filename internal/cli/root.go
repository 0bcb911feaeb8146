package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiro2620/sphero-controll/internal/application/wiring"
	"github.com/hiro2620/sphero-controll/internal/config"
	"github.com/hiro2620/sphero-controll/internal/ui"
)

var (
	container *wiring.Container

	// CLI flags
	configFile string
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "sphero-provision",
	Short: "Provision a Raspberry Pi to run the sphero control service",
	Long: `sphero-provision prepares a Raspberry Pi (or similar Debian-derived
board) to run the sphero control service: it installs OS packages and
Python dependencies, enables I2C and remote GPIO, verifies Bluetooth,
places the application files, registers the systemd unit, enables the
overlay (read-only) root filesystem and reboots.

Configuration:
  1. --config flag (explicit path)
  2. SPHERO_PROVISION_CONFIG environment variable
  3. sphero.yaml in the invocation directory
  4. Built-in defaults (service "sphero", install dir /opt/sphero)

Examples:
  sphero-provision provision          Run the full workflow and reboot
  sphero-provision plan               Show the resolved step order
  sphero-provision status             Probe what is already provisioned
  sphero-provision verify             Check host preconditions only`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.SetVerbose(verbose)
		ui.SetColor(!noColor)

		// Help, version, completion and init run without a resolved
		// manifest or host adapters
		switch cmd.Name() {
		case "help", "version", "completion", "init":
			return nil
		}

		resolver := config.NewResolver(configFile)
		cfg, source, err := resolver.Resolve()
		if err != nil {
			return fmt.Errorf("failed to resolve config: %w", err)
		}
		if source != "" {
			ui.Debug("Using config: %s", source)
		} else {
			ui.Debug("No manifest found, using built-in defaults")
		}

		if provisionSource != "" {
			cfg.Artifacts.Source = provisionSource
			ui.Debug("Artifact source overridden: %s", provisionSource)
		}

		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		container, err = wiring.NewContainer(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		ui.Errorf("%v", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"Path to the provision manifest (default: auto-detect sphero.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")

	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(initCmd)
}
