package zenfast

import (
	"fmt"
	"time"

	"github.com/ivucicev/zenfast/internal/fasting"
	"github.com/ivucicev/zenfast/internal/state"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past fasts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(func(m *state.Manager) error {
			st, err := m.Snapshot()
			if err != nil {
				return err
			}
			if len(st.History) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No fasts recorded yet")
				return nil
			}
			records := st.History
			if historyLimit > 0 && historyLimit < len(records) {
				records = records[:historyLimit]
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tACTUAL\tTARGET\tRESULT")
			for _, rec := range records {
				result := "missed"
				if rec.Completed {
					result = "met"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%dh\t%dh\t%s\n",
					time.UnixMilli(rec.StartTime).Local().Format("Jan 2"),
					rec.Duration()/fasting.MillisPerHour,
					rec.TargetDuration/fasting.MillisPerHour,
					result)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Show at most N records")
}
