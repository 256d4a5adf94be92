package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/healthifylite/healthify/internal/model"
)

// Clock supplies the current time. Day keys are always derived from it
// so a new calendar day produces a new key without any timer.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// DateKey formats t as a local calendar date.
func DateKey(t time.Time) string {
	return t.In(time.Local).Format(model.DateKeyLayout)
}

func TodayKey(c Clock) string {
	return DateKey(c.Now())
}

// IDFunc generates identifiers for new log entries.
type IDFunc func() string

var NewEntryID IDFunc = uuid.NewString
