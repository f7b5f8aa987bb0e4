package zenfast

import (
	"os"
	"os/signal"
	"time"

	"github.com/ivucicev/zenfast/internal/state"
	"github.com/spf13/cobra"
)

var watchInterval time.Duration

// watch re-renders the status projection on a ticker. Each tick is a pure
// read; committed state is never mutated from here.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live-updating fast timer (Ctrl-C to exit)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(func(m *state.Manager) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			status, err := m.Status()
			if err != nil {
				return err
			}
			printStatus(cmd, status)

			ticker := time.NewTicker(watchInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					status, err := m.Status()
					if err != nil {
						return err
					}
					printStatus(cmd, status)
				}
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", time.Second, "Refresh interval")
}
