package service_test

import (
	"math"
	"testing"

	"github.com/healthifylite/healthify/internal/model"
	"github.com/healthifylite/healthify/internal/service"
)

func TestDayTotalsOnMissingDayIsZero(t *testing.T) {
	t.Parallel()
	if got := service.DayTotalsOn(model.DayLog{}, "2026-03-10"); got != (model.DayTotals{}) {
		t.Fatalf("expected zero totals, got %+v", got)
	}
	if got := service.DayTotalsOn(nil, "2026-03-10"); got != (model.DayTotals{}) {
		t.Fatalf("expected zero totals for nil log, got %+v", got)
	}
}

func TestDayTotalsSumsEntries(t *testing.T) {
	t.Parallel()
	day := model.DayRecord{
		Foods: []model.FoodEntry{
			{ID: "a", Calories: 200, Protein: 20, Carbs: 40, Fat: 10},
			{ID: "b", Calories: 78, Protein: 6, Carbs: 0.5, Fat: 5},
		},
		Workouts: []model.WorkoutEntry{
			{ID: "c", Calories: 315},
			{ID: "d", Calories: 100},
		},
	}
	got := service.DayTotalsFor(day)
	want := model.DayTotals{Calories: 278, Protein: 26, Carbs: 40.5, Fat: 15, Burned: 415}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got.Net() != -137 {
		t.Fatalf("expected net -137, got %v", got.Net())
	}
}

func TestLast7DaysTrendOrderAndZeroFill(t *testing.T) {
	t.Parallel()
	log := model.DayLog{
		"2026-03-02": {Foods: []model.FoodEntry{{ID: "a", Calories: 500, Protein: 30}}, Workouts: []model.WorkoutEntry{{ID: "b", Calories: 200}}},
		"2026-02-26": {Foods: []model.FoodEntry{{ID: "c", Calories: 300}}},
		"2026-02-20": {Foods: []model.FoodEntry{{ID: "d", Calories: 999}}},
	}
	points := service.Last7DaysTrend(log, localDay(t, "2026-03-02"))
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	wantKeys := []string{"2026-02-24", "2026-02-25", "2026-02-26", "2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}
	for i, p := range points {
		if p.DateKey != wantKeys[i] {
			t.Fatalf("point %d: expected %s, got %s", i, wantKeys[i], p.DateKey)
		}
	}
	if points[2].Calories != 300 || points[6].Calories != 500 || points[6].Burned != 200 || points[6].Protein != 30 {
		t.Fatalf("unexpected aggregated points: %+v", points)
	}
	if points[0] != (model.TrendPoint{DateKey: "2026-02-24"}) {
		t.Fatalf("expected zero-filled first point, got %+v", points[0])
	}
	if len(log) != 3 {
		t.Fatalf("trend must not create day records")
	}
}

func TestDayTotalsIndependentOfEntryOrder(t *testing.T) {
	t.Parallel()
	foods := []model.FoodEntry{
		{ID: "a", Calories: 78.1, Protein: 6.3, Carbs: 0.6, Fat: 5.2},
		{ID: "b", Calories: 164.7, Protein: 6.1, Carbs: 6.05, Fat: 14.3},
		{ID: "c", Calories: 0.1, Protein: 0.2, Carbs: 0.3, Fat: 0.4},
		{ID: "d", Calories: 206.33, Protein: 4.2, Carbs: 45.1, Fat: 0.4},
		{ID: "e", Calories: 95.5, Protein: 0.5, Carbs: 25.25, Fat: 0.3},
	}
	workouts := []model.WorkoutEntry{{ID: "w1", Calories: 315}, {ID: "w2", Calories: 123}, {ID: "w3", Calories: 7}}
	base := service.DayTotalsFor(model.DayRecord{Foods: foods, Workouts: workouts})

	orders := [][]int{{4, 3, 2, 1, 0}, {2, 0, 4, 1, 3}, {1, 4, 0, 3, 2}}
	for _, order := range orders {
		permFoods := make([]model.FoodEntry, 0, len(foods))
		for _, i := range order {
			permFoods = append(permFoods, foods[i])
		}
		permWorkouts := []model.WorkoutEntry{workouts[2], workouts[0], workouts[1]}
		got := service.DayTotalsFor(model.DayRecord{Foods: permFoods, Workouts: permWorkouts})

		const eps = 1e-9
		if math.Abs(got.Calories-base.Calories) > eps || math.Abs(got.Protein-base.Protein) > eps ||
			math.Abs(got.Carbs-base.Carbs) > eps || math.Abs(got.Fat-base.Fat) > eps || got.Burned != base.Burned {
			t.Fatalf("order %v: totals %+v differ from %+v", order, got, base)
		}
	}
}
