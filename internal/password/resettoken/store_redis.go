package resettoken

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	id "passgate/pkg/domain"
	dErrors "passgate/pkg/domain-errors"
	"passgate/pkg/platform/sentinel"
)

const keyPrefix = "passgate:resettoken:"

// RedisStore persists pending tokens in redis with the TTL enforced server
// side. GETDEL keeps consumption single-use across instances.
type RedisStore struct {
	client redis.Cmdable
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, tokenID id.ResetTokenID, userID id.UserID, ttl time.Duration) error {
	key := keyPrefix + tokenID.String()
	if err := s.client.Set(ctx, key, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

func (s *RedisStore) Consume(ctx context.Context, tokenID id.ResetTokenID) (id.UserID, error) {
	key := keyPrefix + tokenID.String()
	raw, err := s.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return id.UserID{}, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "reset token not found")
		}
		return id.UserID{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "reset token store unavailable")
	}
	return id.ParseUserID(raw)
}
