package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiro2620/sphero-controll/internal/application/commands"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check host preconditions without changing anything",
	Long: `Verify the host can be provisioned: the required tools are on
PATH and a Bluetooth controller with known devices is present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return fmt.Errorf("container not initialized")
		}
		return container.VerifyHandler.Handle(cmd.Context(), commands.VerifyCommand{})
	},
}
