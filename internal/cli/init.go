package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hiro2620/sphero-controll/internal/cli/prompts"
	"github.com/hiro2620/sphero-controll/internal/config"
	"github.com/hiro2620/sphero-controll/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sphero.yaml manifest in the current directory",
	Long: `Interactively create a provision manifest. All values default to
the built-in configuration, so the manifest only needs editing when
the host diverges from a stock setup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(config.DefaultConfigFileName); err == nil {
			return fmt.Errorf("%s already exists", config.DefaultConfigFileName)
		}

		cfg := config.Default()

		name, err := prompts.Text("Service name", cfg.Service.Name)
		if err != nil {
			return err
		}
		cfg.Service.Name = name
		cfg.Service.UnitTemplate = name + ".service"

		installDir, err := prompts.Text("Install directory", cfg.InstallDir())
		if err != nil {
			return err
		}
		cfg.Service.InstallDir = installDir

		source, err := prompts.Text("Artifact source (directory or s3://bucket/prefix)", cfg.Artifacts.Source)
		if err != nil {
			return err
		}
		cfg.Artifacts.Source = source

		overlay, err := prompts.Confirm("Enable the overlay (read-only) filesystem after install?", *cfg.Overlay.Enabled)
		if err != nil {
			return err
		}
		cfg.Overlay.Enabled = &overlay

		if err := config.Validate(cfg); err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode manifest: %w", err)
		}
		if err := os.WriteFile(config.DefaultConfigFileName, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", config.DefaultConfigFileName, err)
		}

		ui.Successf("Wrote %s", config.DefaultConfigFileName)
		return nil
	},
}
