package service

import (
	"math"

	"github.com/healthifylite/healthify/internal/model"
)

const (
	MinDailyCalories     = 1200
	DefaultWeightKg      = 70.0
	proteinGramsPerKg    = 1.6
	defaultActivityValue = 1.2
)

// activityMultipliers maps activity levels to their TDEE multiplier.
// It is also the list of levels accepted by profile validation.
var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

var goalAdjustments = map[model.Goal]int{
	model.GoalLose: -400,
	model.GoalGain: 300,
}

// BasalMetabolicRate uses Mifflin-St Jeor. It returns 0 when gender, age,
// height or weight is missing.
func BasalMetabolicRate(p model.Profile) float64 {
	if p.Gender == "" || p.Age == 0 || p.HeightCm == 0 || p.WeightKg == 0 {
		return 0
	}
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == model.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

func ActivityMultiplier(level model.ActivityLevel) float64 {
	if mult, ok := activityMultipliers[level]; ok {
		return mult
	}
	return defaultActivityValue
}

func GoalAdjustment(goal model.Goal) int {
	return goalAdjustments[goal]
}

// DailyCalorieTarget never returns less than MinDailyCalories.
func DailyCalorieTarget(p model.Profile) int {
	tdee := BasalMetabolicRate(p) * ActivityMultiplier(p.ActivityLevel)
	target := int(math.Round(tdee)) + GoalAdjustment(p.Goal)
	if target < MinDailyCalories {
		return MinDailyCalories
	}
	return target
}

func ProteinTarget(p model.Profile) int {
	return int(math.Round(weightOrDefault(p.WeightKg) * proteinGramsPerKg))
}

func weightOrDefault(weightKg float64) float64 {
	if weightKg <= 0 {
		return DefaultWeightKg
	}
	return weightKg
}

func ValidActivityLevel(level model.ActivityLevel) bool {
	_, ok := activityMultipliers[level]
	return ok
}

func ValidGoal(goal model.Goal) bool {
	switch goal {
	case model.GoalLose, model.GoalMaintain, model.GoalGain:
		return true
	}
	return false
}
