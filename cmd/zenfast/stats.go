package zenfast

import (
	"fmt"
	"strings"

	"github.com/ivucicev/zenfast/internal/state"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show fasting statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(func(m *state.Manager) error {
			report, err := m.Metrics()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total fasted: %dh\n", report.TotalHours)
			fmt.Fprintf(out, "Longest fast: %.1fh\n", report.LongestHours)
			fmt.Fprintf(out, "Streak:       %d\n", report.Streak)
			fmt.Fprintf(out, "Fasts logged: %d\n", report.Fasts)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Activity (7 days)")
			for _, day := range report.Activity {
				bar := strings.Repeat("#", barWidth(day.Hours))
				fmt.Fprintf(out, "%s %s %5.1fh %s\n", day.Label, day.Date, day.Hours, bar)
			}
			return nil
		})
	},
}

// barWidth scales hours to a small terminal bar, one mark per 2h capped at
// 24 marks.
func barWidth(hours float64) int {
	w := int(hours / 2)
	if w > 24 {
		return 24
	}
	if w < 0 {
		return 0
	}
	return w
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
