package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiro2620/sphero-controll/internal/application/commands"
	"github.com/hiro2620/sphero-controll/internal/cli/prompts"
	"github.com/hiro2620/sphero-controll/internal/ui"
)

var (
	provisionSkipReboot bool
	provisionDryRun     bool
	provisionYes        bool
	provisionSource     string
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Run the full provisioning workflow",
	Long: `Run every provisioning step in dependency order, halting on the
first failure, then reboot the host. The run mutates global host
state and is not rolled back on failure.

Requires administrative privileges.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return fmt.Errorf("container not initialized")
		}

		if provisionDryRun {
			return printPlan()
		}

		if !provisionYes {
			ok, err := prompts.Confirm("This will modify the host and reboot it. Continue?", false)
			if err != nil {
				return fmt.Errorf("confirmation failed (use --yes in non-interactive runs): %w", err)
			}
			if !ok {
				ui.Infof("Provisioning cancelled")
				return nil
			}
		}

		return container.ProvisionHandler.Handle(cmd.Context(), commands.ProvisionCommand{
			SkipReboot: provisionSkipReboot,
		})
	},
}

func init() {
	provisionCmd.Flags().BoolVar(&provisionSkipReboot, "skip-reboot", false,
		"Do not reboot after provisioning (image-build pipelines)")
	provisionCmd.Flags().BoolVar(&provisionDryRun, "dry-run", false,
		"Print the resolved step order without mutating the host")
	provisionCmd.Flags().BoolVarP(&provisionYes, "yes", "y", false,
		"Skip the interactive confirmation")
	provisionCmd.Flags().StringVar(&provisionSource, "source", "",
		"Override the artifact source for this run (directory or s3://bucket/prefix)")
}
