package zenfast

import (
	"fmt"

	"github.com/ivucicev/zenfast/internal/plan"
	"github.com/ivucicev/zenfast/internal/state"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage the weekly fasting schedule",
}

var scheduleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the plan assigned to each weekday",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(func(m *state.Manager) error {
			st, err := m.Snapshot()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DAY\tPLAN\tFAST")
			for day := 0; day < 7; day++ {
				p := plan.Resolve(st.PlanIDFor(day))
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0fh\n", weekdayName(day), p.Name, p.FastHours)
			}
			return nil
		})
	},
}

var scheduleSetHours int

var scheduleSetCmd = &cobra.Command{
	Use:   "set <day> [plan-id]",
	Short: "Assign a plan to one weekday",
	Long:  "Assign a fasting plan to a weekday. The day is a name (sun..sat) or index (0..6); pass a preset id, a custom-<hours> id, or --hours for an ad-hoc protocol.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseWeekday(args[0])
		if err != nil {
			return err
		}
		var planID string
		switch {
		case cmd.Flags().Changed("hours"):
			if scheduleSetHours <= 0 {
				return fmt.Errorf("--hours must be > 0")
			}
			planID = plan.CustomID(scheduleSetHours)
		case len(args) == 2:
			planID = args[1]
		default:
			return fmt.Errorf("provide a plan id or --hours")
		}
		return withManager(func(m *state.Manager) error {
			if err := m.SetScheduleDay(day, planID); err != nil {
				return err
			}
			p := plan.Resolve(planID)
			fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s (%.0fh fast)\n", weekdayName(day), p.Name, p.FastHours)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleShowCmd)
	scheduleCmd.AddCommand(scheduleSetCmd)
	scheduleSetCmd.Flags().IntVar(&scheduleSetHours, "hours", 0, "Custom fast length in hours")
}
