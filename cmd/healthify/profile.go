package healthify

import (
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/healthifylite/healthify/internal/model"
	"github.com/healthifylite/healthify/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or replace your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile and derived energy targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			printProfile(cmd, t.Profile())
			return nil
		})
	},
}

var (
	profileName     string
	profileAge      int
	profileGender   string
	profileHeightCm float64
	profileWeightKg float64
	profileActivity string
	profileGoal     string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the profile; fields without a flag keep their current value",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			p := t.Profile()
			changed := 0
			flags := cmd.Flags()
			if flags.Changed("name") {
				p.Name = strings.TrimSpace(profileName)
				changed++
			}
			if flags.Changed("age") {
				p.Age = profileAge
				changed++
			}
			if flags.Changed("gender") {
				p.Gender = model.Gender(strings.ToLower(strings.TrimSpace(profileGender)))
				changed++
			}
			if flags.Changed("height-cm") {
				p.HeightCm = profileHeightCm
				changed++
			}
			if flags.Changed("weight-kg") {
				p.WeightKg = profileWeightKg
				changed++
			}
			if flags.Changed("activity") {
				p.ActivityLevel = model.ActivityLevel(strings.ToLower(strings.TrimSpace(profileActivity)))
				changed++
			}
			if flags.Changed("goal") {
				p.Goal = model.Goal(strings.ToLower(strings.TrimSpace(profileGoal)))
				changed++
			}
			if changed == 0 {
				return fmt.Errorf("set at least one flag")
			}
			if err := t.SetProfile(p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile (%d field(s)); daily target %d kcal\n", changed, t.Target())
			return nil
		})
	},
}

var profileWeightDelta float64

var profileWeightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Adjust profile weight by a delta in kg",
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileWeightDelta == 0 || math.IsNaN(profileWeightDelta) {
			return fmt.Errorf("--delta must be non-zero")
		}
		return withTracker(func(_ *sql.DB, t *service.Tracker) error {
			p := t.AdjustWeight(profileWeightDelta)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %s kg; daily target %d kcal\n", formatKg(p.WeightKg), t.Target())
			return nil
		})
	},
}

func printProfile(cmd *cobra.Command, p model.Profile) {
	out := cmd.OutOrStdout()
	bmr := service.BasalMetabolicRate(p)
	fmt.Fprintf(out, "Name: %s\n", p.Name)
	fmt.Fprintf(out, "Age: %d\n", p.Age)
	fmt.Fprintf(out, "Gender: %s\n", p.Gender)
	fmt.Fprintf(out, "Height: %s cm\n", formatKg(p.HeightCm))
	fmt.Fprintf(out, "Weight: %s kg\n", formatKg(p.WeightKg))
	fmt.Fprintf(out, "Activity: %s\n", p.ActivityLevel)
	fmt.Fprintf(out, "Goal: %s\n", p.Goal)
	fmt.Fprintf(out, "BMR: %.1f kcal\n", bmr)
	fmt.Fprintf(out, "TDEE: %.1f kcal\n", bmr*service.ActivityMultiplier(p.ActivityLevel))
	fmt.Fprintf(out, "Daily target: %d kcal\n", service.DailyCalorieTarget(p))
	fmt.Fprintf(out, "Protein target: %dg\n", service.ProteinTarget(p))
}

func formatKg(v float64) string {
	return fmt.Sprintf("%g", v)
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileSetCmd, profileWeightCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender: male or female")
	profileSetCmd.Flags().Float64Var(&profileHeightCm, "height-cm", 0, "Height in centimeters")
	profileSetCmd.Flags().Float64Var(&profileWeightKg, "weight-kg", 0, "Weight in kilograms")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level: sedentary, light, moderate, active, veryactive")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal: lose, maintain, gain")

	profileWeightCmd.Flags().Float64Var(&profileWeightDelta, "delta", 0, "Weight change in kg (e.g. 0.5 or -0.5)")
	_ = profileWeightCmd.MarkFlagRequired("delta")
}
