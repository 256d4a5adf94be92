package service_test

import (
	"strings"
	"testing"

	"github.com/healthifylite/healthify/internal/model"
	"github.com/healthifylite/healthify/internal/service"
)

const (
	shortProtein = "You're short on protein"
	greatProtein = "Great protein intake today."
	lowCarbs     = "Carbs could be slightly higher"
	overGoal     = "You are over your goal"
	underGoal    = "You are under your goal"
)

func TestCoachSuggestProteinShortfallOnly(t *testing.T) {
	t.Parallel()
	totals := model.DayTotals{Calories: 2800, Protein: 40, Carbs: 300, Fat: 50}
	got := service.CoachSuggest(totals, model.Profile{WeightKg: 70}, 3088)

	want := "Today net calories: 2800 kcal (consumed 2800 / burned 0). You're short on protein (target ~112g). Consider eggs, paneer, or Greek yogurt."
	if got != want {
		t.Fatalf("unexpected suggestion:\n got: %q\nwant: %q", got, want)
	}
}

func TestCoachSuggestClauses(t *testing.T) {
	t.Parallel()
	profile := model.Profile{WeightKg: 70}
	cases := []struct {
		name    string
		totals  model.DayTotals
		include []string
		exclude []string
	}{
		{
			name:    "over goal",
			totals:  model.DayTotals{Calories: 3400, Protein: 150, Carbs: 300, Fat: 80},
			include: []string{greatProtein, overGoal},
			exclude: []string{shortProtein, lowCarbs, underGoal},
		},
		{
			name:    "under goal with no carbs",
			totals:  model.DayTotals{Calories: 500, Protein: 120, Fat: 30, Burned: 200},
			include: []string{greatProtein, lowCarbs, underGoal, "consumed 500 / burned 200", "net calories: 300 kcal"},
			exclude: []string{overGoal},
		},
		{
			name:    "empty day",
			totals:  model.DayTotals{},
			include: []string{shortProtein, lowCarbs, underGoal},
			exclude: []string{greatProtein, overGoal},
		},
		{
			name:    "fractional consumption",
			totals:  model.DayTotals{Calories: 2950.5, Protein: 112, Carbs: 200, Fat: 100},
			include: []string{"consumed 2950.5 / burned 0", greatProtein},
			exclude: []string{lowCarbs, overGoal, underGoal},
		},
	}
	for _, tc := range cases {
		got := service.CoachSuggest(tc.totals, profile, 3088)
		for _, s := range tc.include {
			if !strings.Contains(got, s) {
				t.Fatalf("%s: expected %q in %q", tc.name, s, got)
			}
		}
		for _, s := range tc.exclude {
			if strings.Contains(got, s) {
				t.Fatalf("%s: did not expect %q in %q", tc.name, s, got)
			}
		}
		if strings.HasSuffix(got, " ") {
			t.Fatalf("%s: expected trimmed suggestion", tc.name)
		}
	}
}

func TestChatReply(t *testing.T) {
	t.Parallel()
	got := service.ChatReply("How much PROTEIN do I need?", "tip")
	if !strings.HasPrefix(got, "Tip based on your day: tip\n\nAnswer: ") || !strings.Contains(got, "lean proteins") {
		t.Fatalf("unexpected protein reply: %q", got)
	}
	if got := service.ChatReply("how do I lose weight", "tip"); !strings.Contains(got, "300-500 kcal deficit") {
		t.Fatalf("unexpected lose reply: %q", got)
	}
	if got := service.ChatReply("hello", "tip"); !strings.Contains(got, "Balance your plate") {
		t.Fatalf("unexpected default reply: %q", got)
	}
}

func TestVisibleChatDropsSystemMessages(t *testing.T) {
	t.Parallel()
	history := append(service.DefaultChatHistory(), model.ChatMessage{Role: model.RoleUser, Content: "hi"})
	visible := service.VisibleChat(history)
	if len(visible) != 1 || visible[0].Content != "hi" {
		t.Fatalf("unexpected visible chat: %+v", visible)
	}
}
