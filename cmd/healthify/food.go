package healthify

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/healthifylite/healthify/internal/service"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Search the food catalog and log foods",
}

var foodSearchLimit int

var foodSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the built-in food catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return withDB(func(sqldb *sql.DB) error {
			limit := foodSearchLimit
			if !cmd.Flags().Changed("limit") {
				l, err := service.ConfigInt(sqldb, service.ConfigFoodSearchLimit, service.DefaultFoodSearchLimit)
				if err != nil {
					return err
				}
				limit = l
			}
			items := service.DefaultCatalog().SearchFoods(query, limit)
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tPROTEIN_G\tCARBS_G\tFAT_G")
			for _, it := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%g\t%g\t%g\t%g\n", it.ID, it.Name, it.Calories, it.Protein, it.Carbs, it.Fat)
			}
			return nil
		})
	},
}

var (
	foodQty  float64
	foodDate string
)

var foodAddCmd = &cobra.Command{
	Use:   "add <id|name>",
	Short: "Log a catalog food, scaled by quantity",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			key, err := t.ResolveKey(foodDate)
			if err != nil {
				return err
			}
			entry, err := t.AddFoodFromCatalog(key, strings.Join(args, " "), foodQty)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s kcal) on %s [%s]\n", entry.Name, round(entry.Calories), key, entry.ID)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List foods logged on a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			key, err := t.ResolveKey(foodDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tPROTEIN_G\tCARBS_G\tFAT_G")
			for _, f := range t.Day(key).Foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\t%s\n", f.ID, f.Name, round(f.Calories), round(f.Protein), round(f.Carbs), round(f.Fat))
			}
			return nil
		})
	},
}

var foodRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a logged food by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(args[0])
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			key, err := t.ResolveKey(foodDate)
			if err != nil {
				return err
			}
			found := false
			for _, f := range t.Day(key).Foods {
				if f.ID == id {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("food entry %q not found on %s", id, key)
			}
			t.RemoveFood(key, id)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed food %s from %s\n", id, key)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodSearchCmd, foodAddCmd, foodListCmd, foodRemoveCmd)

	foodSearchCmd.Flags().IntVar(&foodSearchLimit, "limit", service.DefaultFoodSearchLimit, "Max results (default from config food_search_limit)")
	foodAddCmd.Flags().Float64Var(&foodQty, "qty", 1, "Quantity multiplier (min 0.25)")
	for _, c := range []*cobra.Command{foodAddCmd, foodListCmd, foodRemoveCmd} {
		c.Flags().StringVar(&foodDate, "date", "", "Day as YYYY-MM-DD (default today)")
	}
}
