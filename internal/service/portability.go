package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/healthifylite/healthify/internal/model"
)

const exportVersion = 1

type ExportData struct {
	Version    int                 `json:"version"`
	ExportedAt string              `json:"exported_at"`
	Profile    model.Profile       `json:"profile"`
	Logs       model.DayLog        `json:"logs"`
	Chat       []model.ChatMessage `json:"chat"`
}

type ImportMode string

const (
	ImportModeReplace ImportMode = "replace"
	ImportModeMerge   ImportMode = "merge"
)

type ImportOptions struct {
	Mode   ImportMode
	DryRun bool
}

type ImportReport struct {
	Mode             ImportMode `json:"mode"`
	DryRun           bool       `json:"dry_run"`
	Days             int        `json:"days"`
	FoodsImported    int        `json:"foods_imported"`
	FoodsSkipped     int        `json:"foods_skipped"`
	WorkoutsImported int        `json:"workouts_imported"`
	WorkoutsSkipped  int        `json:"workouts_skipped"`
	IDsReassigned    int        `json:"ids_reassigned"`
	ProfileReplaced  bool       `json:"profile_replaced"`
}

func ExportSnapshot(t *Tracker, now time.Time) *ExportData {
	s := t.State()
	return &ExportData{
		Version:    exportVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Profile:    s.Profile,
		Logs:       s.Logs,
		Chat:       s.Chat,
	}
}

func DecodeSnapshot(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode import json: %w", err)
	}
	if data.Version == 0 {
		data.Version = exportVersion
	}
	if data.Version > exportVersion {
		return nil, fmt.Errorf("unsupported export version %d", data.Version)
	}
	for key := range data.Logs {
		if !ValidDateKey(key) {
			return nil, fmt.Errorf("import contains invalid day key %q", key)
		}
	}
	if err := ValidateProfile(data.Profile); err != nil {
		return nil, fmt.Errorf("import profile: %w", err)
	}
	return &data, nil
}

// ImportSnapshot applies data to the tracker. Replace swaps all state;
// merge keeps the current profile and chat and appends entries whose ids
// are not already logged on that day. In both modes an entry with an empty
// id, or one already used elsewhere in the resulting log, gets a fresh id.
func ImportSnapshot(t *Tracker, data *ExportData, opts ImportOptions) (ImportReport, error) {
	mode := normalizeImportMode(opts.Mode)
	report := ImportReport{Mode: mode, DryRun: opts.DryRun, Days: len(data.Logs)}
	for key := range data.Logs {
		if !ValidDateKey(key) {
			return report, fmt.Errorf("import contains invalid day key %q", key)
		}
	}

	switch mode {
	case ImportModeReplace:
		logs := mergeLogs(model.DayLog{}, data.Logs, newEntryIDs(t.newID), &report)
		report.ProfileReplaced = data.Profile != (model.Profile{})
		if opts.DryRun {
			return report, nil
		}
		next := State{Profile: t.Profile(), Logs: logs, Chat: data.Chat}
		if report.ProfileReplaced {
			next.Profile = data.Profile
		}
		t.Replace(next)
	case ImportModeMerge:
		current := t.State().Logs
		ids := newEntryIDs(t.newID)
		ids.seed(current)
		merged := mergeLogs(current, data.Logs, ids, &report)
		if opts.DryRun {
			return report, nil
		}
		t.setLogs(merged)
	default:
		return report, fmt.Errorf("invalid import mode %q (use replace or merge)", opts.Mode)
	}
	return report, nil
}

// mergeLogs appends incoming entries to a copy of current. An entry whose
// id is already on that day in current is skipped; ids must be seeded with
// current.
func mergeLogs(current, incoming model.DayLog, ids *entryIDs, report *ImportReport) model.DayLog {
	next := cloneLog(current)
	for _, key := range sortedKeys(incoming) {
		in := incoming[key]
		existing := dayOrEmpty(current, key)
		foodIDs := map[string]bool{}
		for _, f := range existing.Foods {
			foodIDs[f.ID] = true
		}
		workoutIDs := map[string]bool{}
		for _, w := range existing.Workouts {
			workoutIDs[w.ID] = true
		}

		day := dayOrEmpty(next, key)
		foods := append([]model.FoodEntry{}, day.Foods...)
		for _, f := range in.Foods {
			if f.ID != "" && foodIDs[f.ID] {
				report.FoodsSkipped++
				continue
			}
			if id, changed := ids.claimFood(f.ID); changed {
				report.IDsReassigned++
				f.ID = id
			}
			foods = append(foods, f)
			report.FoodsImported++
		}
		workouts := append([]model.WorkoutEntry{}, day.Workouts...)
		for _, w := range in.Workouts {
			if w.ID != "" && workoutIDs[w.ID] {
				report.WorkoutsSkipped++
				continue
			}
			if id, changed := ids.claimWorkout(w.ID); changed {
				report.IDsReassigned++
				w.ID = id
			}
			workouts = append(workouts, w)
			report.WorkoutsImported++
		}
		next[key] = model.DayRecord{Foods: foods, Workouts: workouts}
	}
	return next
}

func normalizeImportMode(mode ImportMode) ImportMode {
	m := ImportMode(strings.ToLower(strings.TrimSpace(string(mode))))
	if m == "" {
		return ImportModeReplace
	}
	return m
}
