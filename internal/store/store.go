// Package store is the persistence gateway for the plan document and its
// paired user profile. State lives in a two-key sqlite table, write-through:
// every reducer transition the caller cares about is saved immediately, last
// write wins.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"bridgeout/pkg/models"
)

const (
	keyPlan    = "transitionPlan"
	keyProfile = "userProfile"
)

var (
	// ErrNotFound means no plan has been generated yet.
	ErrNotFound = errors.New("no saved plan")
	// ErrCorrupted means the persisted state failed its shape check and has
	// been purged; the user starts fresh.
	ErrCorrupted = errors.New("saved plan is corrupted")
)

// Open opens (creating if needed) the state database under dir with the
// pragmas the app relies on and runs migrations.
func Open(dir string) (*sql.DB, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	dbPath := filepath.Join(dir, "bridgeout.db")
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates the state table.
func RunMigrations(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(schema)
	return err
}

// Store reads and writes the canonical plan/profile pair.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// New returns a Store over an opened database.
func New(db *sql.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// SavePlan serializes the plan under its fixed key.
func (s *Store) SavePlan(p *models.Plan) error {
	return s.put(keyPlan, p)
}

// SaveProfile serializes the profile under its fixed key.
func (s *Store) SaveProfile(p *models.UserProfile) error {
	return s.put(keyProfile, p)
}

// SaveState writes both halves of the pair. Used after generation so a plan
// never lands in storage without its profile.
func (s *Store) SaveState(plan *models.Plan, profile *models.UserProfile) error {
	if err := s.SaveProfile(profile); err != nil {
		return err
	}
	return s.SavePlan(plan)
}

func (s *Store) put(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	s.logger.Debug("state saved", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// Load returns the persisted plan and profile. A missing pair is ErrNotFound.
// Anything structurally wrong (unparseable JSON, a failed shape check, one
// key present without the other) purges both keys and returns ErrCorrupted;
// this is the one place the system deletes user data to recover.
func (s *Store) Load() (*models.Plan, *models.UserProfile, error) {
	planRaw, planOK, err := s.get(keyPlan)
	if err != nil {
		return nil, nil, err
	}
	profileRaw, profileOK, err := s.get(keyProfile)
	if err != nil {
		return nil, nil, err
	}

	if !planOK && !profileOK {
		return nil, nil, ErrNotFound
	}
	if planOK != profileOK {
		return nil, nil, s.corrupted("plan/profile pairing broken")
	}

	if err := checkPlanShape([]byte(planRaw)); err != nil {
		return nil, nil, s.corrupted(err.Error())
	}

	var plan models.Plan
	if err := json.Unmarshal([]byte(planRaw), &plan); err != nil {
		return nil, nil, s.corrupted("plan: " + err.Error())
	}
	var profile models.UserProfile
	if err := json.Unmarshal([]byte(profileRaw), &profile); err != nil {
		return nil, nil, s.corrupted("profile: " + err.Error())
	}

	return &plan, &profile, nil
}

// Reset removes both keys. Used by "start new".
func (s *Store) Reset() error {
	_, err := s.db.Exec(`DELETE FROM state WHERE key IN (?, ?)`, keyPlan, keyProfile)
	if err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	return nil
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) corrupted(reason string) error {
	s.logger.Warn("purging corrupted state", zap.String("reason", reason))
	if err := s.Reset(); err != nil {
		s.logger.Error("purge failed", zap.Error(err))
	}
	return fmt.Errorf("%w: %s", ErrCorrupted, reason)
}

// checkPlanShape guards against partially written or version-skewed data,
// not malicious input: summary must be a string, the feedback record a
// non-null object, and the five collection fields actual arrays.
func checkPlanShape(data []byte) error {
	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("plan is not a JSON object: %v", err)
	}

	if _, ok := tree["summary"].(string); !ok {
		return errors.New("summary is not a string")
	}
	if _, ok := tree["careerTeamFeedback"].(map[string]interface{}); !ok {
		return errors.New("careerTeamFeedback is not an object")
	}
	for _, field := range []string{"skillsToDevelop", "networkingSuggestions", "projectIdeas", "phases", "certifications"} {
		if _, ok := tree[field].([]interface{}); !ok {
			return fmt.Errorf("%s is not an array", field)
		}
	}
	return nil
}
