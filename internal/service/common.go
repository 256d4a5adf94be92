package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/healthifylite/healthify/internal/model"
)

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

// formatNumber prints the shortest representation, so 200 stays "200" and
// 19.5 stays "19.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func ParseDateKey(key string) (time.Time, error) {
	key = strings.TrimSpace(key)
	t, err := time.ParseInLocation(model.DateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", key)
	}
	return t, nil
}

// ValidDateKey accepts only the canonical YYYY-MM-DD form used as a day
// log key; surrounding spaces or unpadded fields are rejected.
func ValidDateKey(key string) bool {
	canonical, ok := canonicalDateKey(key)
	return ok && canonical == key
}

// canonicalDateKey parses a loosely written key and returns its canonical
// form; ok is false when it is not a date at all.
func canonicalDateKey(key string) (string, bool) {
	t, err := ParseDateKey(key)
	if err != nil {
		return "", false
	}
	return DateKey(t), true
}
