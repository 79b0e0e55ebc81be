package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/pkg/config"
)

// keyPrefix namespaces all session keys under a single fixed key name.
const keyPrefix = "currentUser:"

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// Repository persists authenticated identities so a session can be restored
// without re-authentication. Sessions are ephemeral: cleared on logout and
// expired by TTL.
type Repository interface {
	Save(ctx context.Context, sid string, user models.SessionUser, ttl time.Duration) error
	Find(ctx context.Context, sid string) (models.SessionUser, error)
	Delete(ctx context.Context, sid string) error
}

// NewRedisClient returns a configured Redis client, failing fast when the
// server is unreachable so the caller can fall back to the memory store.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// RedisRepository stores sessions in Redis.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository wraps a Redis client.
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func (r *RedisRepository) Save(ctx context.Context, sid string, user models.SessionUser, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.client.Set(ctx, keyPrefix+sid, payload, ttl).Err()
}

func (r *RedisRepository) Find(ctx context.Context, sid string) (models.SessionUser, error) {
	raw, err := r.client.Get(ctx, keyPrefix+sid).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.SessionUser{}, ErrNotFound
		}
		return models.SessionUser{}, err
	}
	var user models.SessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.SessionUser{}, fmt.Errorf("decode session: %w", err)
	}
	return user, nil
}

func (r *RedisRepository) Delete(ctx context.Context, sid string) error {
	return r.client.Del(ctx, keyPrefix+sid).Err()
}

type memoryEntry struct {
	user      models.SessionUser
	expiresAt time.Time
}

// MemoryRepository is the in-process fallback used when Redis is not
// available. Good enough under the single-active-session assumption.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

// NewMemoryRepository builds an empty in-memory session store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]memoryEntry)}
}

func (m *MemoryRepository) Save(_ context.Context, sid string, user models.SessionUser, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sid] = memoryEntry{user: user, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *MemoryRepository) Find(_ context.Context, sid string) (models.SessionUser, error) {
	m.mu.RLock()
	entry, ok := m.sessions[sid]
	m.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return models.SessionUser{}, ErrNotFound
	}
	return entry.user, nil
}

func (m *MemoryRepository) Delete(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sid)
	return nil
}
