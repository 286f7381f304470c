package theme

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// KV is the key-value backend the preference is persisted to
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

type MemoryKV struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: map[string][]byte{}}
}

func (s *MemoryKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	_ = ctx
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *MemoryKV) Set(ctx context.Context, key string, value []byte) error {
	_ = ctx
	v := make([]byte, len(value))
	copy(v, value)
	s.mu.Lock()
	s.items[key] = v
	s.mu.Unlock()
	return nil
}

type RedisKV struct {
	Client *redis.Client
}

func NewRedisKV(opt *redis.Options) *RedisKV {
	return &RedisKV{Client: redis.NewClient(opt)}
}

func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set stores without expiry
func (s *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return s.Client.Set(ctx, key, value, 0).Err()
}

func (s *RedisKV) Close() error {
	return s.Client.Close()
}
