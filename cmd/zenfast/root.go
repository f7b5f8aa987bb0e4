package zenfast

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "zenfast",
	Short: "zenfast tracks intermittent fasting from your terminal",
	Long:  "zenfast is a local-first intermittent fasting tracker with protocols, a weekly schedule, history, and achievements.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
