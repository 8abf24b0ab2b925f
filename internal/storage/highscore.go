package storage

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultHighScoreKey is the kv key the best score is stored under.
const DefaultHighScoreKey = "highScore"

// HighScoreSlot is the single persisted best score, stored as a decimal
// string under one kv key.
type HighScoreSlot struct {
	store *Store
	key   string
}

// NewHighScoreSlot returns the slot stored under key, DefaultHighScoreKey if empty.
func NewHighScoreSlot(store *Store, key string) *HighScoreSlot {
	if key == "" {
		key = DefaultHighScoreKey
	}
	return &HighScoreSlot{store: store, key: key}
}

// Key returns the kv key of the slot.
func (h *HighScoreSlot) Key() string {
	return h.key
}

// HighScore returns the stored best score, 0 if none has been stored.
// A value that is not a non-negative integer reads as 0 with an error.
func (h *HighScoreSlot) HighScore() (int, error) {
	raw, ok, err := h.store.Value(h.key)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("storage: bad high score %q under %q", raw, h.key)
	}
	return n, nil
}

// SetHighScore stores score as the best score. A lower score never replaces
// a higher stored one, so sessions sharing the store cannot lose a record.
func (h *HighScoreSlot) SetHighScore(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative high score %d", score)
	}
	return h.store.RaiseInt(h.key, score)
}

// Reset removes the stored best score.
func (h *HighScoreSlot) Reset() error {
	return h.store.DeleteValue(h.key)
}
