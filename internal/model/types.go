package model

const DateKeyLayout = "2006-01-02"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryactive"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type FoodCatalogItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type WorkoutCatalogItem struct {
	ID   string  `json:"id"`
	Type string  `json:"type"`
	MET  float64 `json:"met"`
}

// Profile fields left at their zero value are treated as absent.
type Profile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	HeightCm      float64       `json:"heightCm"`
	WeightKg      float64       `json:"weightKg"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`
}

type FoodEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type WorkoutEntry struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	DurationMin float64 `json:"durationMin"`
	Calories    int     `json:"calories"`
}

type DayRecord struct {
	Foods    []FoodEntry    `json:"foods"`
	Workouts []WorkoutEntry `json:"workouts"`
}

// DayLog maps a YYYY-MM-DD key to the record for that day.
type DayLog map[string]DayRecord

type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type DayTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Burned   int     `json:"burned"`
}

func (t DayTotals) Net() float64 {
	return t.Calories - float64(t.Burned)
}

type TrendPoint struct {
	DateKey  string  `json:"date"`
	Calories float64 `json:"calories"`
	Burned   int     `json:"burned"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (p TrendPoint) Net() float64 {
	return p.Calories - float64(p.Burned)
}
