package healthify

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"

	"github.com/healthifylite/healthify/internal/service"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage healthify local configuration",
}

var (
	cfgFoodSearchLimit       int
	cfgDefaultWorkoutMinutes int
	cfgDefaultWorkoutType    string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			updates := 0
			if cmd.Flags().Changed("food-search-limit") {
				if err := service.SetConfig(sqldb, service.ConfigFoodSearchLimit, strconv.Itoa(cfgFoodSearchLimit)); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("default-workout-minutes") {
				if err := service.SetConfig(sqldb, service.ConfigDefaultWorkoutMinutes, strconv.Itoa(cfgDefaultWorkoutMinutes)); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("default-workout-type") {
				if err := service.SetConfig(sqldb, service.ConfigDefaultWorkoutType, cfgDefaultWorkoutType); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d config value(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg, err := service.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(cfg))
			for k := range cfg {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, cfg[k])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd)

	configSetCmd.Flags().IntVar(&cfgFoodSearchLimit, "food-search-limit", 0, "Max results for food search")
	configSetCmd.Flags().IntVar(&cfgDefaultWorkoutMinutes, "default-workout-minutes", 0, "Duration used when workout add has no --duration")
	configSetCmd.Flags().StringVar(&cfgDefaultWorkoutType, "default-workout-type", "", "Workout type used when workout add has no type")
}
