package service

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/healthifylite/healthify/internal/model"
)

const (
	BlobProfile = "healthifylite_profile"
	BlobLogs    = "healthifylite_logs"
	BlobChat    = "healthifylite_chat"
)

// BlobStore keeps whole JSON documents under string keys, the way the
// browser build kept them in local storage.
type BlobStore struct {
	db *sql.DB
}

func NewBlobStore(db *sql.DB) *BlobStore {
	return &BlobStore{db: db}
}

func (s *BlobStore) Get(key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, fmt.Errorf("blob key is required")
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get blob %q: %w", key, err)
	}
	return value, true, nil
}

func (s *BlobStore) Put(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("blob key is required")
	}
	_, err := s.db.Exec(`
INSERT INTO blobs(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("put blob %q: %w", key, err)
	}
	return nil
}

func (s *BlobStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}

func (s *BlobStore) SaveJSON(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal blob %q: %w", key, err)
	}
	return s.Put(key, string(b))
}

// LoadJSON decodes the blob into dst and reports whether it was present.
func (s *BlobStore) LoadJSON(key string, dst any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return true, fmt.Errorf("decode blob %q: %w", key, err)
	}
	return true, nil
}

// State is everything the tracker persists.
type State struct {
	Profile model.Profile       `json:"profile"`
	Logs    model.DayLog        `json:"logs"`
	Chat    []model.ChatMessage `json:"chat"`
}

func DefaultProfile() model.Profile {
	return model.Profile{
		Name:          "Guest",
		Age:           28,
		Gender:        model.GenderMale,
		HeightCm:      175,
		WeightKg:      70,
		ActivityLevel: model.ActivityLight,
		Goal:          model.GoalMaintain,
	}
}

func DefaultState() State {
	return State{
		Profile: DefaultProfile(),
		Logs:    model.DayLog{},
		Chat:    DefaultChatHistory(),
	}
}

// LoadState reads each blob once. A missing or unreadable blob is replaced
// by its default and logged; only storage failures are returned.
func LoadState(store *BlobStore, logger *slog.Logger) (State, error) {
	state := DefaultState()

	var profile model.Profile
	ok, err := loadBlob(store, logger, BlobProfile, &profile)
	if err != nil {
		return State{}, err
	}
	if ok && profile != (model.Profile{}) {
		state.Profile = profile
	}

	var logs model.DayLog
	ok, err = loadBlob(store, logger, BlobLogs, &logs)
	if err != nil {
		return State{}, err
	}
	if ok && logs != nil {
		state.Logs = normalizeLog(logs)
	}

	var chat []model.ChatMessage
	ok, err = loadBlob(store, logger, BlobChat, &chat)
	if err != nil {
		return State{}, err
	}
	if ok && len(chat) > 0 {
		state.Chat = chat
	}
	return state, nil
}

// loadBlob reports false when the blob is absent or does not decode, in
// which case dst must not be used.
func loadBlob(store *BlobStore, logger *slog.Logger, key string, dst any) (bool, error) {
	raw, ok, err := store.Get(key)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Debug("blob not found, using default", "key", key)
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logger.Warn("blob unreadable, using default", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// PersistOn returns an observer that rewrites the changed blob in full.
// Write failures are logged rather than surfaced to the mutation.
func PersistOn(store *BlobStore, logger *slog.Logger) Observer {
	return func(change Change, s State) {
		var key string
		var v any
		switch change {
		case ChangeProfile:
			key, v = BlobProfile, s.Profile
		case ChangeLogs:
			key, v = BlobLogs, s.Logs
		case ChangeChat:
			key, v = BlobChat, s.Chat
		default:
			return
		}
		if err := store.SaveJSON(key, v); err != nil {
			logger.Error("persist state", "key", key, "error", err)
			return
		}
		logger.Debug("persisted state", "key", key)
	}
}

// SaveState writes all three blobs.
func SaveState(store *BlobStore, s State) error {
	if err := store.SaveJSON(BlobProfile, s.Profile); err != nil {
		return err
	}
	if err := store.SaveJSON(BlobLogs, s.Logs); err != nil {
		return err
	}
	return store.SaveJSON(BlobChat, s.Chat)
}

func normalizeLog(log model.DayLog) model.DayLog {
	out := make(model.DayLog, len(log))
	for k, day := range log {
		out[k] = normalizeDay(day)
	}
	return out
}
