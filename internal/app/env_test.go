package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvReadsFileAndKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	content := "HEALTHIFY_TEST_FROM_FILE=file\nHEALTHIFY_TEST_PRESET=file\n"
	if err := os.WriteFile(envPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("HEALTHIFY_TEST_PRESET", "shell")
	t.Cleanup(func() { os.Unsetenv("HEALTHIFY_TEST_FROM_FILE") })

	if err := LoadEnv(envPath); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if got := os.Getenv("HEALTHIFY_TEST_FROM_FILE"); got != "file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("HEALTHIFY_TEST_PRESET"); got != "shell" {
		t.Fatalf("expected preset variable to win, got %q", got)
	}
}

func TestLoadEnvIgnoresMissingFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"", slog.LevelWarn, true},
		{"debug", slog.LevelDebug, true},
		{" INFO ", slog.LevelInfo, true},
		{"error", slog.LevelError, true},
		{"loud", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseLogLevel(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseLogLevel(%q): unexpected error %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseLogLevel(%q): expected error", tc.in)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseLogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDefaultDBPathHonorsEnv(t *testing.T) {
	t.Setenv(EnvDBPath, "/tmp/custom.db")
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	if got != "/tmp/custom.db" {
		t.Fatalf("expected env override, got %q", got)
	}
}
