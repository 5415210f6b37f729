package gpa

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	_ "modernc.org/sqlite"
)

// the subject list lives under one fixed key, same as the browser
// local-storage collaborator it replaces
const subjectsKey = "subjects"
const settingsKey = "settings"

type Settings struct {
	Autosave bool `json:"autosave"`
}

// Store is a durable key-value collaborator holding the serialized
// subject list and the user settings.
type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

func (s Store) get(ctx context.Context, key string, out any) (found bool, err error) {
	var value string
	err = s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(value), out)
}

func (s Store) set(ctx context.Context, key string, in any) error {
	value, err := json.Marshal(in)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(
		ctx,
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value",
		key, string(value),
	)
	return err
}

// a nil result means nothing was ever saved
func (s Store) LoadSubjects(ctx context.Context) ([]Subject, error) {
	var subjects []Subject
	found, err := s.get(ctx, subjectsKey, &subjects)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return subjects, nil
}

func (s Store) SaveSubjects(ctx context.Context, subjects []Subject) error {
	return s.set(ctx, subjectsKey, subjects)
}

func (s Store) LoadSettings(ctx context.Context) (Settings, error) {
	settings := Settings{Autosave: true}
	_, err := s.get(ctx, settingsKey, &settings)
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s Store) SaveSettings(ctx context.Context, settings Settings) error {
	return s.set(ctx, settingsKey, settings)
}
