package storage

import (
	"context"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

type SessionRepository interface {
	// SaveSession inserts a completed session. The stored order is always
	// newest StartTime first.
	SaveSession(ctx context.Context, session *internal.WearSession) error
	ListSessions(ctx context.Context) ([]internal.WearSession, error)
	// DeleteSessions removes exactly the sessions whose ids are given and
	// leaves the relative order of the remainder unchanged.
	DeleteSessions(ctx context.Context, ids []string) error
	// ReplaceSessions swaps the whole collection, used by backup import.
	ReplaceSessions(ctx context.Context, sessions []internal.WearSession) error
}

type SettingsRepository interface {
	// GetSettings returns stored settings, or defaults when none were saved.
	GetSettings(ctx context.Context) (*internal.AppSettings, error)
	SaveSettings(ctx context.Context, settings *internal.AppSettings) error
}

type TimerStateRepository interface {
	// GetTimerState returns the persisted in-progress timer state, or nil
	// when no session is active.
	GetTimerState(ctx context.Context) (*internal.TimerState, error)
	SaveTimerState(ctx context.Context, state *internal.TimerState) error
	ClearTimerState(ctx context.Context) error
}
