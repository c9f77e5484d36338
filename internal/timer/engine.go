// Package timer owns the single active wear session: elapsed-time
// accounting across process restarts, pause/resume, and reclean-reminder
// scheduling.
package timer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AdityasahuX07/Lens-Time/internal"
	"github.com/AdityasahuX07/Lens-Time/internal/metrics"
	"github.com/AdityasahuX07/Lens-Time/internal/notify"
	"github.com/AdityasahuX07/Lens-Time/internal/storage"
)

// TickInterval is the cadence of elapsed-time recomputation while a
// session is running.
const TickInterval = time.Second

// Clock abstracts wall-clock reads so tests can drive time explicitly.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

// Snapshot is a read-only view of the engine for API consumers.
type Snapshot struct {
	ActiveSession *internal.WearSession `json:"active_session"`
	ElapsedTime   int64                 `json:"elapsed_time"`
	IsPaused      bool                  `json:"is_paused"`
	Progress      float64               `json:"progress"` // percent of target, capped at 100
}

// Engine is the timer state machine: Idle -> Running <-> Paused -> Idle.
// All operations run under one mutex covering the state transition and
// its persistence, so the engine is safe to drive from the tick loop and
// HTTP handlers concurrently. Every transition persists the full state;
// a persist failure is logged and the in-memory state stays
// authoritative until the next successful write.
type Engine struct {
	mu    sync.Mutex
	state *internal.TimerState
	fired bool // in-memory once-per-session reminder guard

	states   storage.TimerStateRepository
	settings storage.SettingsRepository
	notifier notify.Notifier
	clock    Clock
	logger   internal.Logger
}

func NewEngine(states storage.TimerStateRepository, settings storage.SettingsRepository, notifier notify.Notifier, clock Clock, logger internal.Logger) *Engine {
	return &Engine{
		states:   states,
		settings: settings,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// Restore reloads persisted timer state after a process restart. For a
// running session the elapsed value is recomputed from the start anchor,
// never trusted from the stale persisted value; for a paused session the
// frozen value is kept as is.
func (e *Engine) Restore(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, err := e.states.GetTimerState(ctx)
	if err != nil {
		e.logger.Errorf("timer: failed to load persisted state: %v", err)
		return err
	}
	if state == nil || state.ActiveSession == nil {
		return nil
	}

	// States written before the anchor field existed carry a zero anchor.
	if state.StartAnchor.IsZero() {
		state.StartAnchor = state.ActiveSession.StartTime
	}

	e.state = state
	e.fired = state.RecleanNotificationID != ""
	if !state.IsPaused {
		state.ElapsedTime = e.elapsedLocked(e.clock.Now())
		e.persist(ctx)
	}
	e.logger.Infof("timer: restored session %s, elapsed %ds, paused=%v",
		state.ActiveSession.ID, state.ElapsedTime, state.IsPaused)
	return nil
}

// Start begins a new wear session. It fails when a session is already
// active. The permission request is best-effort and never blocks.
func (e *Engine) Start(ctx context.Context) (*internal.WearSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.activeLocked() {
		return nil, fmt.Errorf("start: session already active: %w", internal.ErrInvalidState)
	}

	if granted, err := e.notifier.RequestPermission(ctx); err != nil {
		e.logger.Warnf("timer: notification permission request failed: %v", err)
	} else if !granted {
		e.logger.Infof("timer: notification permission not granted")
	}

	now := e.clock.Now()
	session := &internal.WearSession{
		ID:        uuid.NewString(),
		Date:      internal.FormatDate(now),
		StartTime: now,
	}
	e.state = &internal.TimerState{
		ActiveSession: session,
		StartAnchor:   now,
	}
	e.fired = false
	metrics.SessionsStarted.Inc()
	e.persist(ctx)

	copied := *session
	return &copied, nil
}

// Pause freezes elapsed-time accrual. Valid only while running.
func (e *Engine) Pause(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.activeLocked() {
		return fmt.Errorf("pause: no active session: %w", internal.ErrInvalidState)
	}
	if e.state.IsPaused {
		return fmt.Errorf("pause: session already paused: %w", internal.ErrInvalidState)
	}

	e.state.ElapsedTime = e.elapsedLocked(e.clock.Now())
	e.state.IsPaused = true
	e.persist(ctx)
	return nil
}

// Resume continues accrual from the frozen elapsed value by shifting the
// start anchor forward past the paused interval.
func (e *Engine) Resume(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.activeLocked() {
		return fmt.Errorf("resume: no active session: %w", internal.ErrInvalidState)
	}
	if !e.state.IsPaused {
		return fmt.Errorf("resume: session is not paused: %w", internal.ErrInvalidState)
	}

	now := e.clock.Now()
	e.state.StartAnchor = now.Add(-time.Duration(e.state.ElapsedTime) * time.Second)
	e.state.IsPaused = false
	e.persist(ctx)
	return nil
}

// Tick recomputes elapsed time from the wall clock and evaluates the
// reclean reminder. Elapsed is always derived from the anchor, never
// incremented, so it self-corrects after the process was suspended. A
// tick while idle or paused is a no-op.
func (e *Engine) Tick(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.activeLocked() || e.state.IsPaused {
		return
	}

	now := e.clock.Now()
	e.state.ElapsedTime = e.elapsedLocked(now)
	e.checkReminderLocked(ctx, e.state.ElapsedTime, now)
	e.persist(ctx)
}

// Stop finalizes the active session and clears all transient state. The
// caller is responsible for inserting the returned session into the
// session store.
func (e *Engine) Stop(ctx context.Context, fogging bool, comfort int, notes string) (*internal.WearSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.activeLocked() {
		return nil, fmt.Errorf("stop: no active session: %w", internal.ErrInvalidState)
	}

	if id := e.state.RecleanNotificationID; id != "" {
		if err := e.notifier.Cancel(ctx, id); err != nil {
			e.logger.Warnf("timer: failed to cancel reminder %s: %v", id, err)
		}
	}

	now := e.clock.Now()
	session := e.state.ActiveSession
	end := now
	session.EndTime = &end
	session.Duration = e.elapsedLocked(now)
	session.Fogging = fogging
	session.Comfort = comfort
	session.Notes = notes

	e.state = nil
	e.fired = false
	if err := e.states.ClearTimerState(ctx); err != nil {
		e.logger.Errorf("timer: failed to clear persisted state: %v", err)
	}

	metrics.SessionsCompleted.Inc()
	metrics.SessionDuration.Observe(float64(session.Duration))
	return session, nil
}

// Run drives Tick at a fixed cadence until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.Tick(ctx)
		}
	}
}

// Snapshot returns the current timer view, including progress toward the
// configured target wear time.
func (e *Engine) Snapshot(ctx context.Context) (*Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := &Snapshot{}
	if !e.activeLocked() {
		return snap, nil
	}

	session := *e.state.ActiveSession
	snap.ActiveSession = &session
	snap.IsPaused = e.state.IsPaused
	snap.ElapsedTime = e.elapsedLocked(e.clock.Now())

	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	progress := float64(snap.ElapsedTime) / (settings.TargetWearTime * 3600) * 100
	if progress > 100 {
		progress = 100
	}
	snap.Progress = progress
	return snap, nil
}

func (e *Engine) activeLocked() bool {
	return e.state != nil && e.state.ActiveSession != nil
}

func (e *Engine) elapsedLocked(now time.Time) int64 {
	if e.state.IsPaused {
		return e.state.ElapsedTime
	}
	return int64(now.Sub(e.state.StartAnchor) / time.Second)
}

// checkReminderLocked fires the reclean reminder at most once per
// session. The in-memory guard is set before the scheduling call and
// rolled back on failure so a later tick can retry; the persisted
// notification id is only set on success and survives restarts.
func (e *Engine) checkReminderLocked(ctx context.Context, elapsed int64, now time.Time) {
	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		e.logger.Errorf("timer: failed to read settings for reminder: %v", err)
		return
	}

	alreadyFired := e.fired || e.state.RecleanNotificationID != ""
	if !ShouldFire(elapsed, settings.TargetWearTime, alreadyFired, settings.NotificationsEnabled, now) {
		return
	}

	e.fired = true
	title := "Time to Reclean"
	body := fmt.Sprintf("You have reached %.1f hours of wear time. Consider recleaning your lenses.", settings.TargetWearTime/2)
	id, err := e.notifier.Schedule(ctx, title, body)
	if err != nil {
		e.fired = false
		metrics.RemindersFailed.Inc()
		e.logger.Warnf("timer: failed to schedule reclean reminder: %v", err)
		return
	}
	e.state.RecleanNotificationID = id
	metrics.RemindersFired.Inc()
	e.logger.Infof("timer: reclean reminder %s fired at %ds elapsed", id, elapsed)
}

func (e *Engine) persist(ctx context.Context) {
	if err := e.states.SaveTimerState(ctx, e.state); err != nil {
		e.logger.Errorf("timer: failed to persist state: %v", err)
	}
}
