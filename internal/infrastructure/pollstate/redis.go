package pollstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cursorKey = "steam_trader:poll_cursor"

// Store keeps the offer poll cursor in redis so a restart resumes from the
// last decided offer instead of replaying history.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Load returns the saved cursor, or the zero time when none was saved yet.
func (s *Store) Load(ctx context.Context) (time.Time, error) {
	raw, err := s.client.Get(ctx, cursorKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, nil
		}

		return time.Time{}, fmt.Errorf("redis.Get: %w", err)
	}

	cursor, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse cursor: %w", err)
	}

	return cursor, nil
}

func (s *Store) Save(ctx context.Context, cursor time.Time) error {
	if err := s.client.Set(ctx, cursorKey, cursor.Format(time.RFC3339Nano), 0).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}
