package favorite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

const sequenceKey = "favorite:seq"

type RedisClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Record is a stored favorite. The airport itself is resolved from the
// catalog when rendering.
type Record struct {
	ID        int64  `json:"id"`
	AirportID string `json:"airport_id"`
	Note      string `json:"note"`
}

// Store keeps one redis hash per owner, keyed by favorite id. Ids come from
// a global INCR sequence.
type Store struct {
	redis RedisClient
}

func NewStore(redis RedisClient) *Store {
	return &Store{
		redis: redis,
	}
}

func (s *Store) GetListKey(owner string) string {
	return "favorite:list:" + owner
}

func (s *Store) Add(ctx context.Context, owner, airportID, note string) (Record, error) {
	existing, err := s.List(ctx, owner)
	if err != nil {
		return Record{}, err
	}

	for _, rec := range existing {
		if strings.EqualFold(rec.AirportID, airportID) {
			return Record{}, ErrAlreadyFavorite
		}
	}

	id, err := s.redis.Incr(ctx, sequenceKey).Result()
	if err != nil {
		return Record{}, fmt.Errorf("failed to allocate favorite id: %w", err)
	}

	rec := Record{ID: id, AirportID: strings.ToUpper(airportID), Note: note}
	if err := s.save(ctx, owner, rec); err != nil {
		return Record{}, err
	}

	return rec, nil
}

func (s *Store) Get(ctx context.Context, owner string, id int64) (Record, error) {
	data, err := s.redis.HGet(ctx, s.GetListKey(owner), strconv.FormatInt(id, 10)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, ErrFavoriteNotFound
	}

	if err != nil {
		return Record{}, fmt.Errorf("failed to get favorite: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("failed to unmarshal favorite: %w", err)
	}

	return rec, nil
}

// List returns the owner's favorites ordered by id.
func (s *Store) List(ctx context.Context, owner string) ([]Record, error) {
	entries, err := s.redis.HGetAll(ctx, s.GetListKey(owner)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	records := make([]Record, 0, len(entries))
	for field, data := range entries {
		var rec Record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal favorite %s: %w", field, err)
		}
		records = append(records, rec)
	}

	slices.SortFunc(records, func(a, b Record) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return records, nil
}

func (s *Store) UpdateNote(ctx context.Context, owner string, id int64, note string) (Record, error) {
	rec, err := s.Get(ctx, owner, id)
	if err != nil {
		return Record{}, err
	}

	rec.Note = note
	if err := s.save(ctx, owner, rec); err != nil {
		return Record{}, err
	}

	return rec, nil
}

func (s *Store) Remove(ctx context.Context, owner string, id int64) error {
	removed, err := s.redis.HDel(ctx, s.GetListKey(owner), strconv.FormatInt(id, 10)).Result()
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	if removed == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

func (s *Store) Clear(ctx context.Context, owner string) error {
	if err := s.redis.Del(ctx, s.GetListKey(owner)).Err(); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}

	return nil
}

func (s *Store) save(ctx context.Context, owner string, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal favorite: %w", err)
	}

	err = s.redis.HSet(ctx, s.GetListKey(owner), strconv.FormatInt(rec.ID, 10), data).Err()
	if err != nil {
		return fmt.Errorf("failed to set favorite: %w", err)
	}

	return nil
}
