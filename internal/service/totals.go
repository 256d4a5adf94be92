package service

import (
	"time"

	"github.com/healthifylite/healthify/internal/model"
)

const trendDays = 7

func DayTotalsFor(day model.DayRecord) model.DayTotals {
	var t model.DayTotals
	for _, f := range day.Foods {
		t.Calories += f.Calories
		t.Protein += f.Protein
		t.Carbs += f.Carbs
		t.Fat += f.Fat
	}
	for _, w := range day.Workouts {
		t.Burned += w.Calories
	}
	return t
}

// DayTotalsOn reads the record for key; a missing day yields zero totals.
func DayTotalsOn(log model.DayLog, key string) model.DayTotals {
	return DayTotalsFor(log[key])
}

// Last7DaysTrend returns one point per day for [today-6, today], oldest
// first. Days without a record are zero-filled and the log is not touched.
func Last7DaysTrend(log model.DayLog, today time.Time) []model.TrendPoint {
	today = beginningOfDay(today)
	points := make([]model.TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		key := DateKey(today.AddDate(0, 0, -i))
		t := DayTotalsOn(log, key)
		points = append(points, model.TrendPoint{
			DateKey:  key,
			Calories: t.Calories,
			Burned:   t.Burned,
			Protein:  t.Protein,
			Carbs:    t.Carbs,
			Fat:      t.Fat,
		})
	}
	return points
}

func beginningOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
