package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

const (
	ConfigFoodSearchLimit       = "food_search_limit"
	ConfigDefaultWorkoutMinutes = "default_workout_minutes"
	ConfigDefaultWorkoutType    = "default_workout_type"
)

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	value = strings.TrimSpace(value)
	if err := validateConfigValue(key, value); err != nil {
		return err
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

func ListConfig(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return out, nil
}

// ConfigInt returns fallback when the key is unset or not a positive integer.
func ConfigInt(db *sql.DB, key string, fallback int) (int, error) {
	raw, ok, err := GetConfig(db, key)
	if err != nil || !ok {
		return fallback, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback, nil
	}
	return v, nil
}

func ConfigString(db *sql.DB, key, fallback string) (string, error) {
	raw, ok, err := GetConfig(db, key)
	if err != nil || !ok || raw == "" {
		return fallback, err
	}
	return raw, nil
}

func validateConfigValue(key, value string) error {
	switch key {
	case ConfigFoodSearchLimit, ConfigDefaultWorkoutMinutes:
		v, err := strconv.Atoi(value)
		if err != nil || v <= 0 {
			return fmt.Errorf("%s must be a positive integer", key)
		}
	case ConfigDefaultWorkoutType:
		if _, err := DefaultCatalog().FindWorkout(value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
