package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/healthifylite/healthify/internal/model"
)

const (
	defaultFoodBrowseLimit = 6
	DefaultFoodSearchLimit = 8
)

var (
	ErrUnknownFood    = errors.New("unknown food")
	ErrUnknownWorkout = errors.New("unknown workout")
)

type Catalog struct {
	Foods    []model.FoodCatalogItem
	Workouts []model.WorkoutCatalogItem
}

var defaultFoods = []model.FoodCatalogItem{
	{ID: "f1", Name: "Boiled Egg (1)", Calories: 78, Protein: 6, Carbs: 0.6, Fat: 5},
	{ID: "f2", Name: "Grilled Chicken (100g)", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	{ID: "f3", Name: "Paneer (100g)", Calories: 296, Protein: 23, Carbs: 6, Fat: 22},
	{ID: "f4", Name: "Oats (40g dry)", Calories: 150, Protein: 5, Carbs: 27, Fat: 3},
	{ID: "f5", Name: "Banana (1 medium)", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4},
	{ID: "f6", Name: "Rice (1 cup cooked)", Calories: 206, Protein: 4.2, Carbs: 45, Fat: 0.4},
	{ID: "f7", Name: "Roti (1 medium)", Calories: 120, Protein: 3.1, Carbs: 18, Fat: 3.7},
	{ID: "f8", Name: "Greek Yogurt (170g)", Calories: 100, Protein: 17, Carbs: 6, Fat: 0},
	{ID: "f9", Name: "Apple (1 medium)", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3},
	{ID: "f10", Name: "Almonds (28g)", Calories: 164, Protein: 6, Carbs: 6, Fat: 14},
}

var defaultWorkouts = []model.WorkoutCatalogItem{
	{ID: "w1", Type: "Running", MET: 9.8},
	{ID: "w2", Type: "Walking", MET: 3.5},
	{ID: "w3", Type: "Cycling", MET: 8.0},
	{ID: "w4", Type: "Yoga", MET: 2.5},
	{ID: "w5", Type: "Strength Training", MET: 6.0},
}

// DefaultCatalog returns a fresh copy of the built-in reference lists.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Foods:    append([]model.FoodCatalogItem(nil), defaultFoods...),
		Workouts: append([]model.WorkoutCatalogItem(nil), defaultWorkouts...),
	}
}

// SearchFoods browses the first few items for an empty query, otherwise
// matches names by case-insensitive substring.
func (c *Catalog) SearchFoods(query string, limit int) []model.FoodCatalogItem {
	q := normalizeName(query)
	if q == "" {
		return firstFoods(c.Foods, defaultFoodBrowseLimit)
	}
	if limit <= 0 {
		limit = DefaultFoodSearchLimit
	}
	out := make([]model.FoodCatalogItem, 0, limit)
	for _, item := range c.Foods {
		if strings.Contains(strings.ToLower(item.Name), q) {
			out = append(out, item)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func (c *Catalog) FindFood(idOrName string) (model.FoodCatalogItem, error) {
	key := normalizeName(idOrName)
	for _, item := range c.Foods {
		if strings.ToLower(item.ID) == key || strings.ToLower(item.Name) == key {
			return item, nil
		}
	}
	return model.FoodCatalogItem{}, fmt.Errorf("%w %q", ErrUnknownFood, idOrName)
}

func (c *Catalog) FindWorkout(idOrType string) (model.WorkoutCatalogItem, error) {
	key := normalizeName(idOrType)
	for _, item := range c.Workouts {
		if strings.ToLower(item.ID) == key || strings.ToLower(item.Type) == key {
			return item, nil
		}
	}
	return model.WorkoutCatalogItem{}, fmt.Errorf("%w %q", ErrUnknownWorkout, idOrType)
}

func firstFoods(items []model.FoodCatalogItem, n int) []model.FoodCatalogItem {
	if len(items) < n {
		n = len(items)
	}
	return append([]model.FoodCatalogItem(nil), items[:n]...)
}
