package service_test

import (
	"strings"
	"testing"

	"github.com/healthifylite/healthify/internal/model"
	"github.com/healthifylite/healthify/internal/service"
)

func TestTrackerEnsureTodayNotifiesOnce(t *testing.T) {
	t.Parallel()
	tr := newTestTracker(t, "2026-03-10")
	var changes []service.Change
	tr.Subscribe(func(c service.Change, _ service.State) { changes = append(changes, c) })

	if key := tr.EnsureToday(); key != "2026-03-10" {
		t.Fatalf("expected today key 2026-03-10, got %s", key)
	}
	tr.EnsureToday()
	if len(changes) != 1 || changes[0] != service.ChangeLogs {
		t.Fatalf("expected a single logs change, got %v", changes)
	}
	if _, ok := tr.State().Logs["2026-03-10"]; !ok {
		t.Fatalf("expected today's record to exist")
	}
}

func TestTrackerAddAndRemoveEntries(t *testing.T) {
	t.Parallel()
	tr := newTestTracker(t, "2026-03-10")
	key := tr.EnsureToday()

	food, err := tr.AddFoodFromCatalog(key, "f1", 2)
	if err != nil {
		t.Fatalf("add food: %v", err)
	}
	if food.ID != "id-1" || food.Name != "Boiled Egg (1) x2" || food.Calories != 156 {
		t.Fatalf("unexpected food entry: %+v", food)
	}
	if _, err := tr.AddFoodFromCatalog(key, "pizza", 1); err == nil {
		t.Fatalf("expected unknown food error")
	}

	workout, err := tr.AddWorkoutFromCatalog(key, "walking", 30)
	if err != nil {
		t.Fatalf("add workout: %v", err)
	}
	// 3.5 * 70 * 30 / 60 = 122.5
	if workout.ID != "id-2" || workout.Calories != 123 {
		t.Fatalf("unexpected workout entry: %+v", workout)
	}

	totals := tr.Totals(key)
	if totals.Calories != 156 || totals.Burned != 123 {
		t.Fatalf("unexpected totals: %+v", totals)
	}

	tr.RemoveFood(key, food.ID)
	tr.RemoveWorkout(key, workout.ID)
	tr.RemoveFood(key, "missing")
	if got := tr.Totals(key); got != (model.DayTotals{}) {
		t.Fatalf("expected zero totals after removals, got %+v", got)
	}
}

func TestTrackerWorkoutCaloriesFrozenAtWriteTime(t *testing.T) {
	t.Parallel()
	tr := newTestTracker(t, "2026-03-10")
	key := tr.EnsureToday()
	w, err := tr.AddWorkoutFromCatalog(key, "Strength Training", 45)
	if err != nil {
		t.Fatalf("add workout: %v", err)
	}
	if w.Calories != 315 {
		t.Fatalf("expected 315, got %d", w.Calories)
	}
	tr.AdjustWeight(10)
	if got := tr.Day(key).Workouts[0].Calories; got != 315 {
		t.Fatalf("stored calories changed after weight update: %d", got)
	}
}

func TestTrackerAdjustWeight(t *testing.T) {
	t.Parallel()
	tr := newTestTracker(t, "2026-03-10")
	if p := tr.AdjustWeight(-0.5); p.WeightKg != 69.5 {
		t.Fatalf("expected 69.5, got %v", p.WeightKg)
	}

	p := tr.Profile()
	p.WeightKg = 20.5
	if err := tr.SetProfile(p); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if p := tr.AdjustWeight(-1); p.WeightKg != 20 {
		t.Fatalf("expected floor at 20, got %v", p.WeightKg)
	}

	p.WeightKg = 10
	if err := tr.SetProfile(p); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if p := tr.AdjustWeight(1); p.WeightKg != 11 {
		t.Fatalf("increase should not be floored, got %v", p.WeightKg)
	}
}

func TestTrackerSetProfileValidation(t *testing.T) {
	t.Parallel()
	tr := newTestTracker(t, "2026-03-10")
	before := tr.Profile()

	bad := before
	bad.ActivityLevel = "couch"
	if err := tr.SetProfile(bad); err == nil {
		t.Fatalf("expected invalid activity error")
	}
	bad = before
	bad.Age = -1
	if err := tr.SetProfile(bad); err == nil {
		t.Fatalf("expected invalid age error")
	}
	if tr.Profile() != before {
		t.Fatalf("profile changed after rejected update")
	}

	next := model.Profile{Gender: model.GenderMale, Age: 30, HeightCm: 180, WeightKg: 80, ActivityLevel: model.ActivityModerate, Goal: model.GoalMaintain}
	if err := tr.SetProfile(next); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if tr.Target() != 2759 {
		t.Fatalf("expected target 2759, got %d", tr.Target())
	}
}

func TestTrackerResolveKeyAndTrend(t *testing.T) {
	t.Parallel()
	tr := newTestTracker(t, "2026-03-10")
	if key, err := tr.ResolveKey(""); err != nil || key != "2026-03-10" {
		t.Fatalf("resolve empty: %s %v", key, err)
	}
	if key, err := tr.ResolveKey("2026-01-05"); err != nil || key != "2026-01-05" {
		t.Fatalf("resolve explicit: %s %v", key, err)
	}
	if _, err := tr.ResolveKey("2026-13-01"); err == nil {
		t.Fatalf("expected invalid date error")
	}

	points, err := tr.Trend("")
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if len(points) != 7 || points[6].DateKey != "2026-03-10" || points[0].DateKey != "2026-03-04" {
		t.Fatalf("unexpected trend: %+v", points)
	}
}

func TestTrackerChat(t *testing.T) {
	t.Parallel()
	tr := newTestTracker(t, "2026-03-10")
	tr.EnsureToday()

	if _, err := tr.SendChat("   "); err == nil {
		t.Fatalf("expected error for empty message")
	}
	reply, err := tr.SendChat("protein ideas?")
	if err != nil {
		t.Fatalf("send chat: %v", err)
	}
	if reply.Role != model.RoleAssistant || !strings.HasPrefix(reply.Content, "Tip based on your day: Today net calories: 0 kcal") {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	history := tr.ChatHistory()
	if len(history) != 2 || history[0].Role != model.RoleUser || history[0].Content != "protein ideas?" {
		t.Fatalf("unexpected visible history: %+v", history)
	}
	if len(tr.State().Chat) != 3 {
		t.Fatalf("expected system message retained, got %+v", tr.State().Chat)
	}

	tr.ClearChat()
	if len(tr.ChatHistory()) != 0 || len(tr.State().Chat) != 1 {
		t.Fatalf("expected cleared chat, got %+v", tr.State().Chat)
	}
}
