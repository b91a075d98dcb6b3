package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Divyasree00/lexicon/internal/models"
)

// storageKeyPrefix names the per-user state document in app_state.
const storageKeyPrefix = "vocabulary"

// StateR persists each user's whole AppState as one JSON document.
// There are no partial-field updates: Load reads the whole tree, Save
// replaces it.
type StateR struct {
	db QueryI
}

func NewStateRepository(db QueryI) *StateR {
	return &StateR{db: db}
}

// Load reads a user's state. A user with no stored document gets the
// default state and no error; a read or decode failure also returns the
// default state so callers can keep working in memory.
func (r *StateR) Load(ctx context.Context, userID int64) (models.AppState, error) {
	var doc string
	err := r.db.GetContext(ctx, &doc, `SELECT doc FROM app_state WHERE name = $1`, stateKey(userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultAppState(), nil
	}
	if err != nil {
		return models.DefaultAppState(), fmt.Errorf("failed to load state for user %d: %w", userID, err)
	}

	state := models.DefaultAppState()
	if err := json.Unmarshal([]byte(doc), &state); err != nil {
		return models.DefaultAppState(), fmt.Errorf("failed to decode state for user %d: %w", userID, err)
	}
	if !state.Tier.Valid() {
		state.Tier = models.TierBeginner
	}

	return state, nil
}

// Save replaces a user's state document.
func (r *StateR) Save(ctx context.Context, userID int64, state models.AppState) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state for user %d: %w", userID, err)
	}

	query := `INSERT INTO app_state (name, doc, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (name)
		DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, stateKey(userID), string(doc)); err != nil {
		return fmt.Errorf("failed to save state for user %d: %w", userID, err)
	}

	return nil
}

// Users lists every user with a stored state document.
func (r *StateR) Users(ctx context.Context) ([]int64, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names, `SELECT name FROM app_state`)
	if err != nil {
		return nil, fmt.Errorf("failed to list state documents: %w", err)
	}

	users := make([]int64, 0, len(names))
	for _, name := range names {
		id, ok := userFromKey(name)
		if !ok {
			continue
		}
		users = append(users, id)
	}
	return users, nil
}

func stateKey(userID int64) string {
	return fmt.Sprintf("%s:%d", storageKeyPrefix, userID)
}

func userFromKey(name string) (int64, bool) {
	suffix, found := strings.CutPrefix(name, storageKeyPrefix+":")
	if !found {
		return 0, false
	}
	id, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
