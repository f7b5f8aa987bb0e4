package zenfast

import (
	"fmt"

	"github.com/ivucicev/zenfast/internal/state"
	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievement badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(func(m *state.Manager) error {
			report, err := m.Metrics()
			if err != nil {
				return err
			}
			earned := 0
			for _, a := range report.Achievements {
				if a.Done {
					earned++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Earned %d / %d\n", earned, len(report.Achievements))
			for _, a := range report.Achievements {
				mark := " "
				if a.Done {
					mark = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s %s\t%s\n", mark, a.Icon, a.Label, a.Subtitle)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}
