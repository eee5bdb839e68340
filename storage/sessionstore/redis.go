package sessionstore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/trezcool/educonnect/core/session"
)

// RedisStore keeps the serialized session under one Redis key per browser.
type RedisStore struct {
	client redis.Cmdable
	key    string
}

var _ session.Store = (*RedisStore)(nil)

func NewRedisStore(client redis.Cmdable, prefix, browserID string) *RedisStore {
	return &RedisStore{client: client, key: prefix + ":" + browserID}
}

func (s *RedisStore) Key() string { return s.key }

func (s *RedisStore) Save(ctx context.Context, usr session.User) error {
	data, err := encodeUser(usr)
	if err != nil {
		return err
	}
	return errors.Wrap(s.client.Set(ctx, s.key, data, 0).Err(), "redis SET")
}

func (s *RedisStore) Load(ctx context.Context) (session.User, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return session.User{}, session.ErrNoSession
		}
		return session.User{}, errors.Wrap(err, "redis GET")
	}
	return decodeUser(data)
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return errors.Wrap(s.client.Del(ctx, s.key).Err(), "redis DEL")
}
