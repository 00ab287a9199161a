// Package favoritetest provides an in-memory stand-in for the redis
// commands the favorites store issues.
package favoritetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// MemoryClient implements favorite.RedisClient over maps.
type MemoryClient struct {
	mu      sync.Mutex
	counter map[string]int64
	hashes  map[string]map[string]string
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		counter: make(map[string]int64),
		hashes:  make(map[string]map[string]string),
	}
}

func (m *MemoryClient) Incr(ctx context.Context, key string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counter[key]++

	cmd := redis.NewIntCmd(ctx, "incr", key)
	cmd.SetVal(m.counter[key])

	return cmd
}

func (m *MemoryClient) HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	cmd := redis.NewIntCmd(ctx, "hset", key)
	if len(values)%2 != 0 {
		cmd.SetErr(fmt.Errorf("wrong number of arguments for hset"))
		return cmd
	}

	hash, ok := m.hashes[key]
	if !ok {
		hash = make(map[string]string)
		m.hashes[key] = hash
	}

	var added int64
	for i := 0; i < len(values); i += 2 {
		field := toString(values[i])
		if _, exists := hash[field]; !exists {
			added++
		}
		hash[field] = toString(values[i+1])
	}

	cmd.SetVal(added)

	return cmd
}

func (m *MemoryClient) HGet(ctx context.Context, key, field string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	cmd := redis.NewStringCmd(ctx, "hget", key, field)

	value, ok := m.hashes[key][field]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}

	cmd.SetVal(value)

	return cmd
}

func (m *MemoryClient) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]string, len(m.hashes[key]))
	for field, value := range m.hashes[key] {
		out[field] = value
	}

	cmd := redis.NewMapStringStringCmd(ctx, "hgetall", key)
	cmd.SetVal(out)

	return cmd
}

func (m *MemoryClient) HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for _, field := range fields {
		if _, ok := m.hashes[key][field]; ok {
			delete(m.hashes[key], field)
			removed++
		}
	}

	cmd := redis.NewIntCmd(ctx, "hdel", key)
	cmd.SetVal(removed)

	return cmd
}

func (m *MemoryClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for _, key := range keys {
		if _, ok := m.hashes[key]; ok {
			delete(m.hashes, key)
			removed++
		}
		if _, ok := m.counter[key]; ok {
			delete(m.counter, key)
			removed++
		}
	}

	cmd := redis.NewIntCmd(ctx, "del")
	cmd.SetVal(removed)

	return cmd
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
