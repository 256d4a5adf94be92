package healthify

import (
	"database/sql"
	"fmt"

	"github.com/healthifylite/healthify/internal/service"
	"github.com/spf13/cobra"
)

var (
	todayDate string
	todayJSON bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's intake, burn, target progress, and a coaching tip",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			view, err := t.Dashboard(todayDate)
			if err != nil {
				return err
			}
			if todayJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", view.Date)
			fmt.Fprintf(out, "Hi %s, daily target: %d kcal\n", view.Profile.Name, view.Target)
			fmt.Fprintf(out, "Consumed: %s kcal\n", round(view.Totals.Calories))
			fmt.Fprintf(out, "Burned: %d kcal\n", view.Totals.Burned)
			fmt.Fprintf(out, "Net: %s kcal\n", round(view.Net))
			fmt.Fprintf(out, "Remaining: %s kcal\n", round(view.Remaining))
			fmt.Fprintf(out, "Progress: %s%%\n", round(view.Progress*100))
			fmt.Fprintf(out, "Macros: P %sg (%s%%) | C %sg (%s%%) | F %sg (%s%%)\n",
				round(view.Totals.Protein), round(view.Macros.ProteinPct),
				round(view.Totals.Carbs), round(view.Macros.CarbsPct),
				round(view.Totals.Fat), round(view.Macros.FatPct))
			fmt.Fprintf(out, "Protein target: %dg\n", view.ProteinTarget)
			fmt.Fprintf(out, "Coach: %s\n", view.Tip)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Print the dashboard as JSON")
}
