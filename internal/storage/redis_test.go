package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

func newTestRedisStorage(t *testing.T) *RedisStorage {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := NewRedisStorage(mr.Addr(), "", 0, internal.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRedisStorageSessionsSortedDescending(t *testing.T) {
	s := newTestRedisStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveSession(ctx, sessionAt("old", base)))
	require.NoError(t, s.SaveSession(ctx, sessionAt("new", base.AddDate(0, 0, 2))))
	require.NoError(t, s.SaveSession(ctx, sessionAt("mid", base.AddDate(0, 0, 1))))

	sessions, err := s.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "new", sessions[0].ID)
	assert.Equal(t, "mid", sessions[1].ID)
	assert.Equal(t, "old", sessions[2].ID)
}

func TestRedisStorageListEmpty(t *testing.T) {
	s := newTestRedisStorage(t)
	sessions, err := s.ListSessions(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)
}

func TestRedisStorageDeleteAndReplace(t *testing.T) {
	s := newTestRedisStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.SaveSession(ctx, sessionAt(id, base.AddDate(0, 0, i))))
	}

	require.NoError(t, s.DeleteSessions(ctx, []string{"b"}))
	sessions, err := s.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "c", sessions[0].ID)
	assert.Equal(t, "a", sessions[1].ID)

	require.NoError(t, s.ReplaceSessions(ctx, []internal.WearSession{*sessionAt("only", base)}))
	sessions, err = s.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "only", sessions[0].ID)
}

func TestRedisStorageSettings(t *testing.T) {
	s := newTestRedisStorage(t)
	ctx := context.Background()

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, internal.DefaultTargetWearTime, settings.TargetWearTime)

	require.NoError(t, s.SaveSettings(ctx, &internal.AppSettings{TargetWearTime: 9, NotificationsEnabled: true}))
	settings, err = s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9.0, settings.TargetWearTime)
	assert.True(t, settings.NotificationsEnabled)
}

func TestRedisStorageTimerState(t *testing.T) {
	s := newTestRedisStorage(t)
	ctx := context.Background()

	state, err := s.GetTimerState(ctx)
	require.NoError(t, err)
	assert.Nil(t, state)

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveTimerState(ctx, &internal.TimerState{
		ActiveSession:         &internal.WearSession{ID: "running", Date: "2026-03-10", StartTime: now},
		ElapsedTime:           120,
		StartAnchor:           now,
		RecleanNotificationID: "n1",
	}))

	state, err = s.GetTimerState(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, "running", state.ActiveSession.ID)
	assert.EqualValues(t, 120, state.ElapsedTime)
	assert.Equal(t, "n1", state.RecleanNotificationID)

	require.NoError(t, s.ClearTimerState(ctx))
	state, err = s.GetTimerState(ctx)
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestRedisStorageUnreachableServer(t *testing.T) {
	_, err := NewRedisStorage("127.0.0.1:1", "", 0, internal.NewNopLogger())
	assert.Error(t, err)
}
