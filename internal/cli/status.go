package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/hiro2620/sphero-controll/internal/application/queries"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe what is already provisioned on this host",
	Long: `Check each step's postcondition (installed packages, enabled
interfaces, placed files, registered unit) and show the result.
Nothing on the host is changed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return fmt.Errorf("container not initialized")
		}

		statuses, err := container.StatusHandler.Handle(cmd.Context(), queries.StatusQuery{})
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Step", "State", "Detail"})

		for _, s := range statuses {
			var stateColor text.Color
			switch s.State {
			case "provisioned":
				stateColor = text.FgGreen
			case "pending":
				stateColor = text.FgYellow
			case "error":
				stateColor = text.FgRed
			default:
				stateColor = text.FgWhite
			}

			t.AppendRow(table.Row{
				s.Name,
				stateColor.Sprint(s.State),
				s.Detail,
			})
		}

		t.Render()
		return nil
	},
}
