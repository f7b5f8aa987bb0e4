package zenfast

import (
	"database/sql"
	"fmt"

	"github.com/ivucicev/zenfast/internal/db"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run state integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := db.RunDoctor(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "State rows: %d\n", report.StateRows)
			fmt.Fprintf(out, "Corrupt state: %v\n", report.CorruptState)
			fmt.Fprintf(out, "History overflow: %d\n", report.HistoryOverflow)
			fmt.Fprintf(out, "Active fast duplicated in history: %v\n", report.CurrentInHistory)
			fmt.Fprintf(out, "Records with non-positive target: %d\n", report.ZeroTargetRecords)
			fmt.Fprintf(out, "Schedule entries outside 0..6: %d\n", report.BadScheduleDays)
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
