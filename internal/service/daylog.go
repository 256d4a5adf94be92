package service

import (
	"math"

	"github.com/healthifylite/healthify/internal/model"
)

const (
	MinFoodQuantity       = 0.25
	MinWorkoutMinutes     = 5
	DefaultWorkoutMinutes = 30
	defaultFoodQuantity   = 1.0
	minutesPerHour        = 60.0
)

type FoodDraft struct {
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// WorkoutDraft captures MET and weight at creation time; stored entries
// are never recomputed when the profile weight later changes.
type WorkoutDraft struct {
	Type        string
	DurationMin float64
	MET         float64
	WeightKg    float64
}

// NewFoodDraft scales a catalog item by quantity. A zero or NaN quantity
// means 1; anything smaller than MinFoodQuantity is raised to it.
func NewFoodDraft(item model.FoodCatalogItem, quantity float64) FoodDraft {
	q := quantity
	if q == 0 || math.IsNaN(q) {
		q = defaultFoodQuantity
	}
	if q < MinFoodQuantity {
		q = MinFoodQuantity
	}
	name := item.Name
	if q != 1 {
		name += " x" + formatNumber(q)
	}
	return FoodDraft{
		Name:     name,
		Calories: item.Calories * q,
		Protein:  item.Protein * q,
		Carbs:    item.Carbs * q,
		Fat:      item.Fat * q,
	}
}

// NewWorkoutDraft treats a zero or NaN duration as DefaultWorkoutMinutes.
// Fractional minutes are kept.
func NewWorkoutDraft(item model.WorkoutCatalogItem, durationMin, weightKg float64) WorkoutDraft {
	if durationMin == 0 || math.IsNaN(durationMin) {
		durationMin = DefaultWorkoutMinutes
	}
	return WorkoutDraft{
		Type:        item.Type,
		DurationMin: clampDuration(durationMin),
		MET:         item.MET,
		WeightKg:    weightOrDefault(weightKg),
	}
}

func WorkoutCalories(met, weightKg, durationMin float64) int {
	return int(math.Round(met * weightKg * durationMin / minutesPerHour))
}

func NewDayRecord() model.DayRecord {
	return model.DayRecord{Foods: []model.FoodEntry{}, Workouts: []model.WorkoutEntry{}}
}

// EnsureDay inserts an empty record for key if it is missing. When the day
// already exists the same log is returned untouched.
func EnsureDay(log model.DayLog, key string) model.DayLog {
	if _, ok := log[key]; ok {
		return log
	}
	next := cloneLog(log)
	next[key] = NewDayRecord()
	return next
}

func AddFood(log model.DayLog, key string, draft FoodDraft, newID IDFunc) model.DayLog {
	day := dayOrEmpty(log, key)
	foods := make([]model.FoodEntry, 0, len(day.Foods)+1)
	foods = append(foods, day.Foods...)
	foods = append(foods, model.FoodEntry{
		ID:       newID(),
		Name:     draft.Name,
		Calories: draft.Calories,
		Protein:  draft.Protein,
		Carbs:    draft.Carbs,
		Fat:      draft.Fat,
	})
	next := cloneLog(log)
	next[key] = model.DayRecord{Foods: foods, Workouts: day.Workouts}
	return next
}

// RemoveFood is a no-op for an unknown day or id.
func RemoveFood(log model.DayLog, key, id string) model.DayLog {
	day, ok := log[key]
	if !ok {
		return log
	}
	day = normalizeDay(day)
	foods := make([]model.FoodEntry, 0, len(day.Foods))
	for _, f := range day.Foods {
		if f.ID != id {
			foods = append(foods, f)
		}
	}
	next := cloneLog(log)
	next[key] = model.DayRecord{Foods: foods, Workouts: day.Workouts}
	return next
}

func AddWorkout(log model.DayLog, key string, draft WorkoutDraft, newID IDFunc) model.DayLog {
	day := dayOrEmpty(log, key)
	duration := clampDuration(draft.DurationMin)
	workouts := make([]model.WorkoutEntry, 0, len(day.Workouts)+1)
	workouts = append(workouts, day.Workouts...)
	workouts = append(workouts, model.WorkoutEntry{
		ID:          newID(),
		Type:        draft.Type,
		DurationMin: duration,
		Calories:    WorkoutCalories(draft.MET, draft.WeightKg, duration),
	})
	next := cloneLog(log)
	next[key] = model.DayRecord{Foods: day.Foods, Workouts: workouts}
	return next
}

func RemoveWorkout(log model.DayLog, key, id string) model.DayLog {
	day, ok := log[key]
	if !ok {
		return log
	}
	day = normalizeDay(day)
	workouts := make([]model.WorkoutEntry, 0, len(day.Workouts))
	for _, w := range day.Workouts {
		if w.ID != id {
			workouts = append(workouts, w)
		}
	}
	next := cloneLog(log)
	next[key] = model.DayRecord{Foods: day.Foods, Workouts: workouts}
	return next
}

func clampDuration(minutes float64) float64 {
	if minutes < MinWorkoutMinutes || math.IsNaN(minutes) {
		return MinWorkoutMinutes
	}
	return minutes
}

func dayOrEmpty(log model.DayLog, key string) model.DayRecord {
	day, ok := log[key]
	if !ok {
		return NewDayRecord()
	}
	return normalizeDay(day)
}

func normalizeDay(day model.DayRecord) model.DayRecord {
	if day.Foods == nil {
		day.Foods = []model.FoodEntry{}
	}
	if day.Workouts == nil {
		day.Workouts = []model.WorkoutEntry{}
	}
	return day
}

// cloneLog copies the map; records are values whose slices are only ever
// replaced, never written in place.
func cloneLog(log model.DayLog) model.DayLog {
	next := make(model.DayLog, len(log)+1)
	for k, v := range log {
		next[k] = v
	}
	return next
}

// entryIDs hands out entry ids that are unique across a whole log. Foods
// and workouts are tracked separately.
type entryIDs struct {
	newID    IDFunc
	foods    map[string]bool
	workouts map[string]bool
}

func newEntryIDs(newID IDFunc) *entryIDs {
	return &entryIDs{newID: newID, foods: map[string]bool{}, workouts: map[string]bool{}}
}

// seed marks every id already present in log as taken.
func (e *entryIDs) seed(log model.DayLog) {
	for _, day := range log {
		for _, f := range day.Foods {
			e.foods[f.ID] = true
		}
		for _, w := range day.Workouts {
			e.workouts[w.ID] = true
		}
	}
}

// claimFood returns id, or a fresh one when id is empty or taken; changed
// reports the replacement.
func (e *entryIDs) claimFood(id string) (string, bool) {
	return claim(e.foods, e.newID, id)
}

func (e *entryIDs) claimWorkout(id string) (string, bool) {
	return claim(e.workouts, e.newID, id)
}

func claim(seen map[string]bool, newID IDFunc, id string) (string, bool) {
	changed := false
	for id == "" || seen[id] {
		id = newID()
		changed = true
	}
	seen[id] = true
	return id, changed
}
