package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/healthifylite/healthify/internal/model"
)

const (
	overGoalMargin      = 200
	underGoalMargin     = 300
	minCarbFatRatio     = 2.0
	systemGreeting      = "Your AI Health Coach is here to help with nutrition and workouts."
	chatReplyPrefix     = "Tip based on your day: "
	chatAnswerSeparator = "\n\nAnswer: "
)

var CoachTips = []string{
	"Protein at each meal boosts satiety.",
	"Plan carbs around training for energy.",
	"Hydrate: 30-35 ml/kg body weight daily.",
	"7-8 hours of sleep supports recovery.",
}

// CoachSuggest composes the advisory text for one day. Clauses are checked
// in a fixed order and several may apply at once.
func CoachSuggest(totals model.DayTotals, profile model.Profile, target int) string {
	net := totals.Net()
	var b strings.Builder
	fmt.Fprintf(&b, "Today net calories: %s kcal (consumed %s / burned %d). ",
		formatNumber(net), formatNumber(totals.Calories), totals.Burned)

	proteinTarget := ProteinTarget(profile)
	if totals.Protein < float64(proteinTarget) {
		fmt.Fprintf(&b, "You're short on protein (target ~%dg). Consider eggs, paneer, or Greek yogurt. ", proteinTarget)
	} else {
		b.WriteString("Great protein intake today. ")
	}

	if carbFatRatio(totals) < minCarbFatRatio {
		b.WriteString("Carbs could be slightly higher for energy if you plan to train. ")
	}
	if net > float64(target+overGoalMargin) {
		b.WriteString("You are over your goal; add a light walk to balance. ")
	}
	if net < float64(target-underGoalMargin) {
		b.WriteString("You are under your goal; add a snack like nuts or banana. ")
	}
	return strings.TrimRight(b.String(), " \t\n")
}

func carbFatRatio(t model.DayTotals) float64 {
	if t.Carbs == 0 || t.Fat == 0 {
		return 0
	}
	return t.Carbs / math.Max(1, t.Fat)
}

// ChatReply builds the canned assistant answer for a user message.
func ChatReply(message, tip string) string {
	msg := strings.ToLower(message)
	var answer string
	switch {
	case strings.Contains(msg, "protein"):
		answer = "Focus on lean proteins like chicken, fish, tofu, paneer, and eggs. Aim for 20-40g per meal."
	case strings.Contains(msg, "lose"):
		answer = "Maintain a modest 300-500 kcal deficit, prioritize protein and whole foods, and get 7-8h sleep."
	default:
		answer = "Balance your plate: protein, smart carbs, healthy fats, and plenty of fiber. Stay hydrated."
	}
	return chatReplyPrefix + tip + chatAnswerSeparator + answer
}

func DefaultChatHistory() []model.ChatMessage {
	return []model.ChatMessage{{Role: model.RoleSystem, Content: systemGreeting}}
}

// VisibleChat drops system messages.
func VisibleChat(history []model.ChatMessage) []model.ChatMessage {
	out := make([]model.ChatMessage, 0, len(history))
	for _, m := range history {
		if m.Role != model.RoleSystem {
			out = append(out, m)
		}
	}
	return out
}
