package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/healthifylite/healthify/internal/model"
)

const minAdjustedWeightKg = 20.0

type Change int

const (
	ChangeProfile Change = iota + 1
	ChangeLogs
	ChangeChat
)

func (c Change) String() string {
	switch c {
	case ChangeProfile:
		return "profile"
	case ChangeLogs:
		return "logs"
	case ChangeChat:
		return "chat"
	}
	return "unknown"
}

// Observer is notified after every state change with the new state.
type Observer func(change Change, s State)

// Tracker owns the application state. Every mutation swaps in a new value
// built by the pure functions in this package and then notifies observers.
// It has a single owner and is not safe for concurrent use.
type Tracker struct {
	state     State
	clock     Clock
	newID     IDFunc
	catalog   *Catalog
	observers []Observer
}

type TrackerOption func(*Tracker)

func WithClock(c Clock) TrackerOption {
	return func(t *Tracker) { t.clock = c }
}

func WithIDFunc(f IDFunc) TrackerOption {
	return func(t *Tracker) { t.newID = f }
}

func WithCatalog(c *Catalog) TrackerOption {
	return func(t *Tracker) { t.catalog = c }
}

func NewTracker(initial State, opts ...TrackerOption) *Tracker {
	if initial.Logs == nil {
		initial.Logs = model.DayLog{}
	}
	if len(initial.Chat) == 0 {
		initial.Chat = DefaultChatHistory()
	}
	t := &Tracker{
		state:   initial,
		clock:   SystemClock,
		newID:   NewEntryID,
		catalog: DefaultCatalog(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Subscribe(o Observer) {
	t.observers = append(t.observers, o)
}

func (t *Tracker) State() State { return t.state }

func (t *Tracker) Catalog() *Catalog { return t.catalog }

func (t *Tracker) Profile() model.Profile { return t.state.Profile }

func (t *Tracker) TodayKey() string { return TodayKey(t.clock) }

// ResolveKey maps an empty date to today and validates anything else.
func (t *Tracker) ResolveKey(date string) (string, error) {
	day, err := t.resolveDay(date)
	if err != nil {
		return "", err
	}
	return DateKey(day), nil
}

func (t *Tracker) Day(key string) model.DayRecord {
	return dayOrEmpty(t.state.Logs, key)
}

func (t *Tracker) SetProfile(p model.Profile) error {
	if err := ValidateProfile(p); err != nil {
		return err
	}
	t.state.Profile = p
	t.notify(ChangeProfile)
	return nil
}

// AdjustWeight nudges the profile weight; decreases stop at 20 kg.
func (t *Tracker) AdjustWeight(deltaKg float64) model.Profile {
	p := t.state.Profile
	w := weightOrDefault(p.WeightKg) + deltaKg
	if deltaKg < 0 && w < minAdjustedWeightKg {
		w = minAdjustedWeightKg
	}
	p.WeightKg = w
	t.state.Profile = p
	t.notify(ChangeProfile)
	return p
}

// EnsureDay only notifies when a record was actually created.
func (t *Tracker) EnsureDay(key string) {
	if _, ok := t.state.Logs[key]; ok {
		return
	}
	t.setLogs(EnsureDay(t.state.Logs, key))
}

func (t *Tracker) EnsureToday() string {
	key := t.TodayKey()
	t.EnsureDay(key)
	return key
}

func (t *Tracker) AddFood(key string, draft FoodDraft) model.FoodEntry {
	next := AddFood(t.state.Logs, key, draft, t.newID)
	t.setLogs(next)
	foods := next[key].Foods
	return foods[len(foods)-1]
}

func (t *Tracker) AddFoodFromCatalog(key, idOrName string, quantity float64) (model.FoodEntry, error) {
	item, err := t.catalog.FindFood(idOrName)
	if err != nil {
		return model.FoodEntry{}, err
	}
	return t.AddFood(key, NewFoodDraft(item, quantity)), nil
}

func (t *Tracker) RemoveFood(key, id string) {
	t.setLogs(RemoveFood(t.state.Logs, key, id))
}

func (t *Tracker) AddWorkout(key string, draft WorkoutDraft) model.WorkoutEntry {
	next := AddWorkout(t.state.Logs, key, draft, t.newID)
	t.setLogs(next)
	workouts := next[key].Workouts
	return workouts[len(workouts)-1]
}

// AddWorkoutFromCatalog uses the current profile weight.
func (t *Tracker) AddWorkoutFromCatalog(key, idOrType string, durationMin float64) (model.WorkoutEntry, error) {
	item, err := t.catalog.FindWorkout(idOrType)
	if err != nil {
		return model.WorkoutEntry{}, err
	}
	return t.AddWorkout(key, NewWorkoutDraft(item, durationMin, t.state.Profile.WeightKg)), nil
}

func (t *Tracker) RemoveWorkout(key, id string) {
	t.setLogs(RemoveWorkout(t.state.Logs, key, id))
}

func (t *Tracker) Target() int {
	return DailyCalorieTarget(t.state.Profile)
}

func (t *Tracker) Totals(key string) model.DayTotals {
	return DayTotalsOn(t.state.Logs, key)
}

func (t *Tracker) Trend(endKey string) ([]model.TrendPoint, error) {
	end, err := t.resolveDay(endKey)
	if err != nil {
		return nil, err
	}
	return Last7DaysTrend(t.state.Logs, end), nil
}

func (t *Tracker) Suggest(key string) string {
	return CoachSuggest(t.Totals(key), t.state.Profile, t.Target())
}

// SendChat appends the user message and the canned reply for today.
func (t *Tracker) SendChat(message string) (model.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return model.ChatMessage{}, fmt.Errorf("message is required")
	}
	reply := model.ChatMessage{
		Role:    model.RoleAssistant,
		Content: ChatReply(message, t.Suggest(t.TodayKey())),
	}
	chat := make([]model.ChatMessage, 0, len(t.state.Chat)+2)
	chat = append(chat, t.state.Chat...)
	chat = append(chat, model.ChatMessage{Role: model.RoleUser, Content: message}, reply)
	t.state.Chat = chat
	t.notify(ChangeChat)
	return reply, nil
}

func (t *Tracker) ChatHistory() []model.ChatMessage {
	return VisibleChat(t.state.Chat)
}

// ClearChat resets the history to the seeded system message.
func (t *Tracker) ClearChat() {
	t.state.Chat = DefaultChatHistory()
	t.notify(ChangeChat)
}

// Replace swaps the entire state, as an import does.
func (t *Tracker) Replace(s State) {
	if s.Logs == nil {
		s.Logs = model.DayLog{}
	}
	if len(s.Chat) == 0 {
		s.Chat = DefaultChatHistory()
	}
	t.state = s
	t.notify(ChangeProfile)
	t.notify(ChangeLogs)
	t.notify(ChangeChat)
}

func (t *Tracker) resolveDay(key string) (time.Time, error) {
	if strings.TrimSpace(key) == "" {
		return t.clock.Now(), nil
	}
	return ParseDateKey(key)
}

func (t *Tracker) setLogs(next model.DayLog) {
	t.state.Logs = next
	t.notify(ChangeLogs)
}

func (t *Tracker) notify(change Change) {
	for _, o := range t.observers {
		o(change, t.state)
	}
}

func ValidateProfile(p model.Profile) error {
	if p.Age < 0 {
		return fmt.Errorf("age must be >= 0")
	}
	if p.HeightCm < 0 {
		return fmt.Errorf("height must be >= 0")
	}
	if p.WeightKg < 0 {
		return fmt.Errorf("weight must be >= 0")
	}
	if p.ActivityLevel != "" && !ValidActivityLevel(p.ActivityLevel) {
		return fmt.Errorf("invalid activity level %q (use sedentary, light, moderate, active or veryactive)", p.ActivityLevel)
	}
	if p.Goal != "" && !ValidGoal(p.Goal) {
		return fmt.Errorf("invalid goal %q (use lose, maintain or gain)", p.Goal)
	}
	return nil
}
