package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

func newTestFileStorage(t *testing.T, dir string) *FileStorage {
	t.Helper()
	s, err := NewFileStorage(
		filepath.Join(dir, "sessions.json"),
		filepath.Join(dir, "settings.json"),
		filepath.Join(dir, "timer_state.json"),
		internal.NewNopLogger(),
	)
	require.NoError(t, err)
	return s
}

func sessionAt(id string, start time.Time) *internal.WearSession {
	end := start.Add(time.Hour)
	return &internal.WearSession{
		ID:        id,
		Date:      internal.FormatDate(start),
		StartTime: start,
		EndTime:   &end,
		Duration:  3600,
	}
}

func TestFileStorageListSortedByStartDescending(t *testing.T) {
	s := newTestFileStorage(t, t.TempDir())
	defer s.Close()
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveSession(ctx, sessionAt("mid", base.AddDate(0, 0, 1))))
	require.NoError(t, s.SaveSession(ctx, sessionAt("old", base)))
	require.NoError(t, s.SaveSession(ctx, sessionAt("new", base.AddDate(0, 0, 2))))

	sessions, err := s.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "new", sessions[0].ID)
	assert.Equal(t, "mid", sessions[1].ID)
	assert.Equal(t, "old", sessions[2].ID)
}

func TestFileStorageDeleteSessions(t *testing.T) {
	s := newTestFileStorage(t, t.TempDir())
	defer s.Close()
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.SaveSession(ctx, sessionAt(id, base.AddDate(0, 0, i))))
	}

	require.NoError(t, s.DeleteSessions(ctx, []string{"b", "missing"}))

	sessions, err := s.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "c", sessions[0].ID)
	assert.Equal(t, "a", sessions[1].ID)
}

func TestFileStorageReplaceSessions(t *testing.T) {
	s := newTestFileStorage(t, t.TempDir())
	defer s.Close()
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveSession(ctx, sessionAt("doomed", base)))

	replacement := []internal.WearSession{
		*sessionAt("r1", base.AddDate(0, 0, 1)),
		*sessionAt("r2", base.AddDate(0, 0, 3)),
	}
	require.NoError(t, s.ReplaceSessions(ctx, replacement))

	sessions, err := s.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "r2", sessions[0].ID)
	assert.Equal(t, "r1", sessions[1].ID)
}

func TestFileStorageSettingsDefaults(t *testing.T) {
	s := newTestFileStorage(t, t.TempDir())
	defer s.Close()
	ctx := context.Background()

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, internal.DefaultTargetWearTime, settings.TargetWearTime)
	assert.True(t, settings.NotificationsEnabled)

	require.NoError(t, s.SaveSettings(ctx, &internal.AppSettings{TargetWearTime: 12}))
	settings, err = s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12.0, settings.TargetWearTime)
}

func TestFileStorageTimerStateLifecycle(t *testing.T) {
	s := newTestFileStorage(t, t.TempDir())
	defer s.Close()
	ctx := context.Background()

	state, err := s.GetTimerState(ctx)
	require.NoError(t, err)
	assert.Nil(t, state)

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	saved := &internal.TimerState{
		ActiveSession: &internal.WearSession{ID: "active", Date: "2026-03-10", StartTime: now},
		ElapsedTime:   42,
		IsPaused:      true,
		StartAnchor:   now,
	}
	require.NoError(t, s.SaveTimerState(ctx, saved))

	// Mutating the caller's copy must not leak into the store.
	saved.ElapsedTime = 9999
	saved.ActiveSession.ID = "mutated"

	state, err = s.GetTimerState(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.EqualValues(t, 42, state.ElapsedTime)
	assert.Equal(t, "active", state.ActiveSession.ID)
	assert.True(t, state.IsPaused)

	require.NoError(t, s.ClearTimerState(ctx))
	state, err = s.GetTimerState(ctx)
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestFileStorageSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s := newTestFileStorage(t, dir)
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveSession(ctx, sessionAt("kept", base)))
	require.NoError(t, s.SaveSettings(ctx, &internal.AppSettings{TargetWearTime: 10, NotificationsEnabled: true}))
	require.NoError(t, s.SaveTimerState(ctx, &internal.TimerState{
		ActiveSession: &internal.WearSession{ID: "running", Date: "2026-03-10", StartTime: base},
		StartAnchor:   base,
	}))
	require.NoError(t, s.Close())

	reloaded := newTestFileStorage(t, dir)
	defer reloaded.Close()

	sessions, err := reloaded.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "kept", sessions[0].ID)

	settings, err := reloaded.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, settings.TargetWearTime)

	state, err := reloaded.GetTimerState(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, "running", state.ActiveSession.ID)
	assert.True(t, state.StartAnchor.Equal(base))
}

func TestFileStorageClearedTimerStateNotReloaded(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s := newTestFileStorage(t, dir)
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveTimerState(ctx, &internal.TimerState{
		ActiveSession: &internal.WearSession{ID: "x", StartTime: base},
		StartAnchor:   base,
	}))
	require.NoError(t, s.ClearTimerState(ctx))
	require.NoError(t, s.Close())

	reloaded := newTestFileStorage(t, dir)
	defer reloaded.Close()
	state, err := reloaded.GetTimerState(ctx)
	require.NoError(t, err)
	assert.Nil(t, state)
}
