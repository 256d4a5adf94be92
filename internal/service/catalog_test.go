package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/healthifylite/healthify/internal/service"
)

func TestSearchFoods(t *testing.T) {
	t.Parallel()
	c := service.DefaultCatalog()

	if got := c.SearchFoods("  ", 0); len(got) != 6 {
		t.Fatalf("expected 6 browse results, got %d", len(got))
	}
	got := c.SearchFoods("AN", 0)
	if len(got) == 0 {
		t.Fatalf("expected matches for 'an'")
	}
	for _, it := range got {
		if !strings.Contains(strings.ToLower(it.Name), "an") {
			t.Fatalf("unexpected match %q", it.Name)
		}
	}
	if got := c.SearchFoods("a", 2); len(got) != 2 {
		t.Fatalf("expected limit 2, got %d", len(got))
	}
	if got := c.SearchFoods("pizza", 0); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestFindFoodAndWorkout(t *testing.T) {
	t.Parallel()
	c := service.DefaultCatalog()

	f, err := c.FindFood("F2")
	if err != nil || f.Name != "Grilled Chicken (100g)" {
		t.Fatalf("find by id: %+v %v", f, err)
	}
	f, err = c.FindFood("banana (1 medium)")
	if err != nil || f.ID != "f5" {
		t.Fatalf("find by name: %+v %v", f, err)
	}
	if _, err := c.FindFood("nope"); !errors.Is(err, service.ErrUnknownFood) {
		t.Fatalf("expected ErrUnknownFood, got %v", err)
	}

	w, err := c.FindWorkout("strength training")
	if err != nil || w.MET != 6.0 {
		t.Fatalf("find workout: %+v %v", w, err)
	}
	if _, err := c.FindWorkout("swimming"); !errors.Is(err, service.ErrUnknownWorkout) {
		t.Fatalf("expected ErrUnknownWorkout, got %v", err)
	}
}

func TestDefaultCatalogIsACopy(t *testing.T) {
	t.Parallel()
	a := service.DefaultCatalog()
	a.Foods[0].Name = "changed"
	b := service.DefaultCatalog()
	if b.Foods[0].Name == "changed" {
		t.Fatalf("expected independent catalog copies")
	}
}
