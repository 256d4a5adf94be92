package healthify

import (
	"database/sql"
	"fmt"

	"github.com/healthifylite/healthify/internal/service"
	"github.com/spf13/cobra"
)

var (
	trendDate string
	trendJSON bool
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show consumed vs burned calories for the 7 days ending on --date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			points, err := t.Trend(trendDate)
			if err != nil {
				return err
			}
			if trendJSON {
				return writeJSON(cmd.OutOrStdout(), points)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tCONSUMED\tBURNED\tNET\tPROTEIN_G\tCARBS_G\tFAT_G")
			for _, p := range points {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
					p.DateKey, round(p.Calories), p.Burned, round(p.Net()), round(p.Protein), round(p.Carbs), round(p.Fat))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
	trendCmd.Flags().StringVar(&trendDate, "date", "", "Last day of the window, YYYY-MM-DD (default today)")
	trendCmd.Flags().BoolVar(&trendJSON, "json", false, "Print trend points as JSON")
}
