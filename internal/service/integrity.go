package service

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/healthifylite/healthify/internal/model"
)

type DoctorReport struct {
	UnreadableBlobs   int `json:"unreadable_blobs"`
	InvalidDayKeys    int `json:"invalid_day_keys"`
	MalformedDays     int `json:"malformed_days"`
	DuplicateEntryIDs int `json:"duplicate_entry_ids"`
	FixedBlobs        int `json:"fixed_blobs,omitempty"`
}

func (r DoctorReport) Healthy() bool {
	return r.UnreadableBlobs == 0 && r.InvalidDayKeys == 0 && r.MalformedDays == 0 && r.DuplicateEntryIDs == 0
}

// rawDay keeps pointers so a missing sequence can be told apart from an
// empty one.
type rawDay struct {
	Foods    *[]model.FoodEntry    `json:"foods"`
	Workouts *[]model.WorkoutEntry `json:"workouts"`
}

// RunDoctor checks the persisted blobs. With fix set, unreadable blobs are
// dropped so defaults apply on the next load, and the day log is rewritten
// without invalid keys, with both sequences present and unique entry ids.
func RunDoctor(db *sql.DB, fix bool, newID IDFunc) (DoctorReport, error) {
	store := NewBlobStore(db)
	report := DoctorReport{}
	unreadable := make([]string, 0)

	for key, dst := range map[string]any{
		BlobProfile: &model.Profile{},
		BlobChat:    &[]model.ChatMessage{},
	} {
		present, err := store.LoadJSON(key, dst)
		if err != nil && !present {
			return report, fmt.Errorf("doctor read %s: %w", key, err)
		}
		if err != nil {
			report.UnreadableBlobs++
			unreadable = append(unreadable, key)
		}
	}

	var days map[string]rawDay
	present, err := store.LoadJSON(BlobLogs, &days)
	if err != nil && !present {
		return report, fmt.Errorf("doctor read %s: %w", BlobLogs, err)
	}
	if err != nil {
		report.UnreadableBlobs++
		unreadable = append(unreadable, BlobLogs)
		days = nil
	}
	cleaned := inspectDays(days, newID, &report)

	if !fix {
		return report, nil
	}
	for _, key := range unreadable {
		if err := store.Delete(key); err != nil {
			return report, err
		}
		report.FixedBlobs++
	}
	if days != nil && (report.InvalidDayKeys > 0 || report.MalformedDays > 0 || report.DuplicateEntryIDs > 0) {
		if err := store.SaveJSON(BlobLogs, cleaned); err != nil {
			return report, err
		}
		report.FixedBlobs++
	}
	return report, nil
}

// inspectDays rebuilds the log under canonical keys. A key that parses as
// a date but is not canonical is counted as invalid and its entries are
// folded into the canonical day; anything else is dropped.
func inspectDays(days map[string]rawDay, newID IDFunc, report *DoctorReport) model.DayLog {
	ids := newEntryIDs(newID)
	cleaned := make(model.DayLog, len(days))
	for _, key := range sortedKeys(days) {
		day := days[key]
		canonical, ok := canonicalDateKey(key)
		if !ok || canonical != key {
			report.InvalidDayKeys++
		}
		if !ok {
			continue
		}
		if day.Foods == nil || day.Workouts == nil {
			report.MalformedDays++
		}
		record := dayOrEmpty(cleaned, canonical)
		if day.Foods != nil {
			for _, f := range *day.Foods {
				if id, changed := ids.claimFood(f.ID); changed {
					report.DuplicateEntryIDs++
					f.ID = id
				}
				record.Foods = append(record.Foods, f)
			}
		}
		if day.Workouts != nil {
			for _, w := range *day.Workouts {
				if id, changed := ids.claimWorkout(w.ID); changed {
					report.DuplicateEntryIDs++
					w.ID = id
				}
				record.Workouts = append(record.Workouts, w)
			}
		}
		cleaned[canonical] = record
	}
	return cleaned
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
