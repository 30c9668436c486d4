package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/anbuvel/railbook/internal/core/domain"
)

// SQLDeviceStore keeps the device-scoped slots in a single key-value table,
// for installations that already run postgres. Same blob semantics as the
// redis store: no schema beyond the slot keys, corrupted values read as empty.
type SQLDeviceStore struct {
	db *sql.DB
}

func NewSQLDeviceStore(db *sql.DB) *SQLDeviceStore {
	return &SQLDeviceStore{db: db}
}

// EnsureSchema creates the kv table if missing.
func (s *SQLDeviceStore) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS device_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

func (s *SQLDeviceStore) get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM device_state WHERE key = $1`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLDeviceStore) set(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO device_state (key, value) VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

func (s *SQLDeviceStore) Accounts(ctx context.Context) ([]domain.UserAccount, error) {
	raw, ok, err := s.get(ctx, keyUsers)
	if err != nil || !ok {
		return nil, err
	}

	var accounts []domain.UserAccount
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, nil
	}
	return accounts, nil
}

func (s *SQLDeviceStore) AppendAccount(ctx context.Context, account domain.UserAccount) error {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return err
	}
	accounts = append(accounts, account)

	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return s.set(ctx, keyUsers, string(raw))
}

func (s *SQLDeviceStore) LastBooking(ctx context.Context) (*domain.CompletedBooking, error) {
	raw, ok, err := s.get(ctx, keyLastBooking)
	if err != nil || !ok {
		return nil, err
	}

	var booking domain.CompletedBooking
	if err := json.Unmarshal([]byte(raw), &booking); err != nil {
		return nil, nil
	}
	return &booking, nil
}

func (s *SQLDeviceStore) SetLastBooking(ctx context.Context, booking *domain.CompletedBooking) error {
	raw, err := json.Marshal(booking)
	if err != nil {
		return err
	}
	return s.set(ctx, keyLastBooking, string(raw))
}

func (s *SQLDeviceStore) LastBookingID(ctx context.Context) (string, error) {
	id, _, err := s.get(ctx, keyBookingID)
	return id, err
}

func (s *SQLDeviceStore) SetLastBookingID(ctx context.Context, id string) error {
	return s.set(ctx, keyBookingID, id)
}
