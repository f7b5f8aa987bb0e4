package zenfast

import (
	"fmt"

	"github.com/ivucicev/zenfast/internal/plan"
	"github.com/ivucicev/zenfast/internal/stage"
	"github.com/spf13/cobra"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List fasting protocols",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tFAST\tEAT\tDESCRIPTION")
		for _, p := range plan.Presets() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0fh\t%.0fh\t%s\n",
				p.ID, p.Name, p.FastHours, p.EatHours, p.Description)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "custom-<hours>\t<hours>:0\t\t\tCustom Protocol")
		return nil
	},
}

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Show the fasting body-stage timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range stage.Stages() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %4.0fh+\t%s\t%s\n", s.Icon, s.MinHours, s.Label, s.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(stagesCmd)
}
