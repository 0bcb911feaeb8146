package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hiro2620/sphero-controll/internal/ui"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the resolved step order",
	Long:  `Print the provisioning steps in the order they would execute, without mutating the host.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return fmt.Errorf("container not initialized")
		}
		return printPlan()
	},
}

func printPlan() error {
	plan, err := container.ProvisionHandler.BuildPlan("")
	if err != nil {
		return err
	}

	steps, err := plan.Steps()
	if err != nil {
		return err
	}

	ui.Header("Provisioning plan for %s (%d steps)", container.Config.Service.Name, len(steps))
	for i, s := range steps {
		ui.Step("[%d/%d] %s (%s)", i+1, len(steps), s.Description, s.Name)
		if len(s.Needs) > 0 {
			needs := make([]string, len(s.Needs))
			for j, n := range s.Needs {
				needs[j] = n.String()
			}
			ui.SubStep("needs: %s", strings.Join(needs, ", "))
		}
	}

	if *container.Config.Reboot.Enabled {
		ui.Infof("Finalize: reboot after %s", container.Config.RebootDelay())
	}
	return nil
}
