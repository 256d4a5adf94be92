package service

import (
	"math"

	"github.com/healthifylite/healthify/internal/model"
)

type MacroShare struct {
	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatPct     float64 `json:"fat_pct"`
}

type TrendDay struct {
	model.TrendPoint
	NetCalories float64 `json:"net"`
}

type DashboardView struct {
	Date          string          `json:"date"`
	Profile       model.Profile   `json:"profile"`
	Target        int             `json:"target_calories"`
	Totals        model.DayTotals `json:"totals"`
	Net           float64         `json:"net_calories"`
	Remaining     float64         `json:"remaining_calories"`
	Progress      float64         `json:"progress"`
	Macros        MacroShare      `json:"macro_share"`
	ProteinTarget int             `json:"protein_target_g"`
	Trend         []TrendDay      `json:"trend"`
	Tip           string          `json:"tip"`
}

// BuildDashboard assembles the day overview from already derived values.
func BuildDashboard(key string, profile model.Profile, target int, totals model.DayTotals, trend []model.TrendPoint) DashboardView {
	net := totals.Net()
	v := DashboardView{
		Date:          key,
		Profile:       profile,
		Target:        target,
		Totals:        totals,
		Net:           net,
		Remaining:     math.Max(0, float64(target)-net),
		Macros:        macroShare(totals),
		ProteinTarget: ProteinTarget(profile),
		Trend:         make([]TrendDay, 0, len(trend)),
	}
	if target > 0 {
		v.Progress = math.Min(1, net/float64(target))
	}
	for _, p := range trend {
		v.Trend = append(v.Trend, TrendDay{TrendPoint: p, NetCalories: p.Net()})
	}
	v.Tip = CoachSuggest(totals, profile, target)
	return v
}

func macroShare(t model.DayTotals) MacroShare {
	total := math.Max(1, t.Protein+t.Carbs+t.Fat)
	return MacroShare{
		ProteinPct: t.Protein / total * 100,
		CarbsPct:   t.Carbs / total * 100,
		FatPct:     t.Fat / total * 100,
	}
}

func (t *Tracker) Dashboard(date string) (DashboardView, error) {
	key, err := t.ResolveKey(date)
	if err != nil {
		return DashboardView{}, err
	}
	trend, err := t.Trend(key)
	if err != nil {
		return DashboardView{}, err
	}
	return BuildDashboard(key, t.state.Profile, t.Target(), t.Totals(key), trend), nil
}
