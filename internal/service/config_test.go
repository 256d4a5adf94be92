package service_test

import (
	"errors"
	"testing"

	"github.com/healthifylite/healthify/internal/service"
)

func TestConfigSeededDefaults(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	cfg, err := service.ListConfig(db)
	if err != nil {
		t.Fatalf("list config: %v", err)
	}
	if cfg[service.ConfigFoodSearchLimit] != "8" || cfg[service.ConfigDefaultWorkoutMinutes] != "30" || cfg[service.ConfigDefaultWorkoutType] != "Running" {
		t.Fatalf("unexpected seeded config: %+v", cfg)
	}
}

func TestSetConfigValidates(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.SetConfig(db, service.ConfigFoodSearchLimit, "5"); err != nil {
		t.Fatalf("set limit: %v", err)
	}
	if v, err := service.ConfigInt(db, service.ConfigFoodSearchLimit, 8); err != nil || v != 5 {
		t.Fatalf("expected 5, got %d (%v)", v, err)
	}
	if err := service.SetConfig(db, service.ConfigDefaultWorkoutMinutes, "0"); err == nil {
		t.Fatalf("expected error for non-positive minutes")
	}
	if err := service.SetConfig(db, service.ConfigFoodSearchLimit, "many"); err == nil {
		t.Fatalf("expected error for non-integer limit")
	}
	if err := service.SetConfig(db, "theme", "dark"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if err := service.SetConfig(db, service.ConfigDefaultWorkoutType, "swimming"); !errors.Is(err, service.ErrUnknownWorkout) {
		t.Fatalf("expected ErrUnknownWorkout, got %v", err)
	}
	if err := service.SetConfig(db, service.ConfigDefaultWorkoutType, "Yoga"); err != nil {
		t.Fatalf("set workout type: %v", err)
	}
	if v, err := service.ConfigString(db, service.ConfigDefaultWorkoutType, "Running"); err != nil || v != "Yoga" {
		t.Fatalf("expected Yoga, got %q (%v)", v, err)
	}
}

func TestConfigFallbacks(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := db.Exec(`DELETE FROM app_config`); err != nil {
		t.Fatalf("clear config: %v", err)
	}
	if v, err := service.ConfigInt(db, service.ConfigDefaultWorkoutMinutes, 30); err != nil || v != 30 {
		t.Fatalf("expected fallback 30, got %d (%v)", v, err)
	}
	if _, err := db.Exec(`INSERT INTO app_config(key, value) VALUES(?, ?)`, service.ConfigFoodSearchLimit, "-2"); err != nil {
		t.Fatalf("insert raw config: %v", err)
	}
	if v, err := service.ConfigInt(db, service.ConfigFoodSearchLimit, 8); err != nil || v != 8 {
		t.Fatalf("expected fallback for invalid stored value, got %d (%v)", v, err)
	}
}
