package healthify

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/healthifylite/healthify/internal/service"
	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log workouts and list workout types",
}

var workoutTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List workout types and MET values",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "ID\tTYPE\tMET")
		for _, w := range service.DefaultCatalog().Workouts {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%g\n", w.ID, w.Type, w.MET)
		}
		return nil
	},
}

var (
	workoutDuration float64
	workoutDate     string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add [type]",
	Short: "Log a workout; calories use the current profile weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(sqldb *sql.DB, t *service.Tracker) error {
			key, err := t.ResolveKey(workoutDate)
			if err != nil {
				return err
			}
			kind := strings.Join(args, " ")
			if strings.TrimSpace(kind) == "" {
				kind, err = service.ConfigString(sqldb, service.ConfigDefaultWorkoutType, "Running")
				if err != nil {
					return err
				}
			}
			duration := workoutDuration
			if !cmd.Flags().Changed("duration") {
				minutes, err := service.ConfigInt(sqldb, service.ConfigDefaultWorkoutMinutes, service.DefaultWorkoutMinutes)
				if err != nil {
					return err
				}
				duration = float64(minutes)
			}
			entry, err := t.AddWorkoutFromCatalog(key, kind, duration)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %g min (%d kcal burned) on %s [%s]\n", entry.Type, entry.DurationMin, entry.Calories, key, entry.ID)
			return nil
		})
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts logged on a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			key, err := t.ResolveKey(workoutDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTYPE\tDURATION_MIN\tKCAL_BURNED")
			for _, w := range t.Day(key).Workouts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%g\t%d\n", w.ID, w.Type, w.DurationMin, w.Calories)
			}
			return nil
		})
	},
}

var workoutRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a logged workout by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(args[0])
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			key, err := t.ResolveKey(workoutDate)
			if err != nil {
				return err
			}
			found := false
			for _, w := range t.Day(key).Workouts {
				if w.ID == id {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("workout entry %q not found on %s", id, key)
			}
			t.RemoveWorkout(key, id)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed workout %s from %s\n", id, key)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutTypesCmd, workoutAddCmd, workoutListCmd, workoutRemoveCmd)

	workoutAddCmd.Flags().Float64Var(&workoutDuration, "duration", service.DefaultWorkoutMinutes, "Duration in minutes (min 5; default from config default_workout_minutes)")
	for _, c := range []*cobra.Command{workoutAddCmd, workoutListCmd, workoutRemoveCmd} {
		c.Flags().StringVar(&workoutDate, "date", "", "Day as YYYY-MM-DD (default today)")
	}
}
