package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

const (
	sessionsKey   = "scleral:sessions"
	settingsKey   = "scleral:settings"
	timerStateKey = "scleral:timer_state"
)

type RedisStorage struct {
	client *redis.Client
	mu     sync.Mutex // serializes read-modify-write of the sessions blob
	logger internal.Logger
}

func NewRedisStorage(addr, password string, db int, logger internal.Logger) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStorage{client: client, logger: logger}, nil
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}

func (s *RedisStorage) getJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStorage) setJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

func (s *RedisStorage) listSessions(ctx context.Context) ([]internal.WearSession, error) {
	var sessions []internal.WearSession
	if _, err := s.getJSON(ctx, sessionsKey, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// --- SessionRepository ---

func (s *RedisStorage) SaveSession(ctx context.Context, session *internal.WearSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.listSessions(ctx)
	if err != nil {
		s.logger.Errorf("storage: failed to load sessions from redis: %v", err)
		return err
	}
	sessions = append(sessions, *session)
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})
	return s.setJSON(ctx, sessionsKey, sessions)
}

func (s *RedisStorage) ListSessions(ctx context.Context) ([]internal.WearSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessions, err := s.listSessions(ctx)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []internal.WearSession{}
	}
	return sessions, nil
}

func (s *RedisStorage) DeleteSessions(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.listSessions(ctx)
	if err != nil {
		return err
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := sessions[:0]
	for _, sess := range sessions {
		if !drop[sess.ID] {
			kept = append(kept, sess)
		}
	}
	return s.setJSON(ctx, sessionsKey, kept)
}

func (s *RedisStorage) ReplaceSessions(ctx context.Context, sessions []internal.WearSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := make([]internal.WearSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.After(sorted[j].StartTime)
	})
	return s.setJSON(ctx, sessionsKey, sorted)
}

// --- SettingsRepository ---

func (s *RedisStorage) GetSettings(ctx context.Context) (*internal.AppSettings, error) {
	var settings internal.AppSettings
	ok, err := s.getJSON(ctx, settingsKey, &settings)
	if err != nil {
		return nil, err
	}
	if !ok {
		return internal.DefaultSettings(), nil
	}
	return &settings, nil
}

func (s *RedisStorage) SaveSettings(ctx context.Context, settings *internal.AppSettings) error {
	return s.setJSON(ctx, settingsKey, settings)
}

// --- TimerStateRepository ---

func (s *RedisStorage) GetTimerState(ctx context.Context) (*internal.TimerState, error) {
	var state internal.TimerState
	ok, err := s.getJSON(ctx, timerStateKey, &state)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (s *RedisStorage) SaveTimerState(ctx context.Context, state *internal.TimerState) error {
	return s.setJSON(ctx, timerStateKey, state)
}

func (s *RedisStorage) ClearTimerState(ctx context.Context) error {
	return s.client.Del(ctx, timerStateKey).Err()
}

// --- Compile-time assertions ---
var _ SessionRepository = (*RedisStorage)(nil)
var _ SettingsRepository = (*RedisStorage)(nil)
var _ TimerStateRepository = (*RedisStorage)(nil)
