package storage

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/anbuvel/railbook/internal/core/domain"
)

const (
	keyUsers       = "users"
	keyLastBooking = "lastBooking"
	keyBookingID   = "booking_id"
)

// RedisDeviceStore keeps the device-scoped slots (account list, last booking,
// last booking id) as flat JSON blobs in redis. Absent keys and corrupted
// blobs both read as empty.
type RedisDeviceStore struct {
	rdb *redis.Client
}

func NewRedisDeviceStore(rdb *redis.Client) *RedisDeviceStore {
	return &RedisDeviceStore{rdb: rdb}
}

func (s *RedisDeviceStore) Accounts(ctx context.Context) ([]domain.UserAccount, error) {
	raw, err := s.rdb.Get(ctx, keyUsers).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var accounts []domain.UserAccount
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, nil
	}
	return accounts, nil
}

// AppendAccount is read-modify-append-write over the whole list. Uniqueness
// is the rail service's concern, not this layer's.
func (s *RedisDeviceStore) AppendAccount(ctx context.Context, account domain.UserAccount) error {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return err
	}
	accounts = append(accounts, account)

	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyUsers, string(raw), 0).Err()
}

func (s *RedisDeviceStore) LastBooking(ctx context.Context) (*domain.CompletedBooking, error) {
	raw, err := s.rdb.Get(ctx, keyLastBooking).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var booking domain.CompletedBooking
	if err := json.Unmarshal([]byte(raw), &booking); err != nil {
		return nil, nil
	}
	return &booking, nil
}

func (s *RedisDeviceStore) SetLastBooking(ctx context.Context, booking *domain.CompletedBooking) error {
	raw, err := json.Marshal(booking)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyLastBooking, string(raw), 0).Err()
}

func (s *RedisDeviceStore) LastBookingID(ctx context.Context) (string, error) {
	id, err := s.rdb.Get(ctx, keyBookingID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisDeviceStore) SetLastBookingID(ctx context.Context, id string) error {
	return s.rdb.Set(ctx, keyBookingID, id, 0).Err()
}
