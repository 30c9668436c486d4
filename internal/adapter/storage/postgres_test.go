package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/anbuvel/railbook/internal/core/domain"
)

func TestSQLDeviceStore_LastBookingRoundTrip(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	store := NewSQLDeviceStore(db)
	ctx := context.Background()

	booking := completedBookingFixture()
	raw, err := json.Marshal(booking)
	assert.NoError(t, err)

	mockDB.ExpectExec("INSERT INTO device_state").
		WithArgs(keyLastBooking, string(raw)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, store.SetLastBooking(ctx, booking))

	mockDB.ExpectQuery("SELECT value FROM device_state").
		WithArgs(keyLastBooking).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(string(raw)))
	got, err := store.LastBooking(ctx)
	assert.NoError(t, err)
	assert.Equal(t, booking, got)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLDeviceStore_MissingRowsReadAsEmpty(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	store := NewSQLDeviceStore(db)
	ctx := context.Background()

	mockDB.ExpectQuery("SELECT value FROM device_state").
		WithArgs(keyBookingID).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	id, err := store.LastBookingID(ctx)
	assert.NoError(t, err)
	assert.Empty(t, id)

	mockDB.ExpectQuery("SELECT value FROM device_state").
		WithArgs(keyLastBooking).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	booking, err := store.LastBooking(ctx)
	assert.NoError(t, err)
	assert.Nil(t, booking)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLDeviceStore_CorruptBlobReadsAsEmpty(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	store := NewSQLDeviceStore(db)
	ctx := context.Background()

	mockDB.ExpectQuery("SELECT value FROM device_state").
		WithArgs(keyUsers).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"name":`))
	accounts, err := store.Accounts(ctx)
	assert.NoError(t, err)
	assert.Empty(t, accounts)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLDeviceStore_AppendAccount(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	store := NewSQLDeviceStore(db)
	ctx := context.Background()

	added := domain.UserAccount{Name: "Vel", Phone: "9123456780", Email: "vel@example.com", Password: "hunter2"}
	wantRaw, err := json.Marshal([]domain.UserAccount{added})
	assert.NoError(t, err)

	mockDB.ExpectQuery("SELECT value FROM device_state").
		WithArgs(keyUsers).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	mockDB.ExpectExec("INSERT INTO device_state").
		WithArgs(keyUsers, string(wantRaw)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.AppendAccount(ctx, added))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLDeviceStore_EnsureSchema(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	store := NewSQLDeviceStore(db)

	mockDB.ExpectExec("CREATE TABLE IF NOT EXISTS device_state").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
