package zenfast

import (
	"fmt"
	"time"

	"github.com/ivucicev/zenfast/internal/state"
	"github.com/spf13/cobra"
)

var fastCmd = &cobra.Command{
	Use:   "fast",
	Short: "Start, stop, and inspect the active fast",
}

var fastStartPlan string

var fastStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Begin a fast using today's scheduled plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(func(m *state.Manager) error {
			rec, started, err := m.StartFast(fastStartPlan)
			if err != nil {
				return err
			}
			if !started {
				fmt.Fprintf(cmd.OutOrStdout(), "A fast is already running (started %s)\n",
					time.UnixMilli(rec.StartTime).Local().Format("2006-01-02 15:04"))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fasting started, target %s\n", formatClock(rec.TargetDuration))
			return nil
		})
	},
}

var fastStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "End the active fast and archive it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(func(m *state.Manager) error {
			rec, stopped, err := m.StopFast()
			if err != nil {
				return err
			}
			if !stopped {
				fmt.Fprintln(cmd.OutOrStdout(), "No fast in progress")
				return nil
			}
			verdict := "target missed"
			if rec.Completed {
				verdict = "target met"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fasted %s of %s (%s)\n",
				formatClock(rec.Duration()), formatClock(rec.TargetDuration), verdict)
			return nil
		})
	},
}

var fastStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the live timer and body stage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(func(m *state.Manager) error {
			status, err := m.Status()
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		})
	},
}

func printStatus(cmd *cobra.Command, s state.Status) {
	out := cmd.OutOrStdout()
	if !s.Fasting {
		fmt.Fprintf(out, "Idle | Goal: %s | %s remaining\n", s.Plan.Name, formatClock(s.RemainingMs))
		return
	}
	fmt.Fprintf(out, "Fasting Active | Goal: %s\n", s.Plan.Name)
	fmt.Fprintf(out, "Elapsed %s | Remaining %s | %.1f%%\n",
		formatClock(s.ElapsedMs), formatClock(s.RemainingMs), s.Percent)
	fmt.Fprintf(out, "%s %s - %s\n", s.Stage.Icon, s.Stage.Label, s.Stage.Description)
}

func init() {
	rootCmd.AddCommand(fastCmd)
	fastCmd.AddCommand(fastStartCmd)
	fastCmd.AddCommand(fastStopCmd)
	fastCmd.AddCommand(fastStatusCmd)
	fastStartCmd.Flags().StringVar(&fastStartPlan, "plan", "", "Plan id to fast against (defaults to today's schedule)")
}
