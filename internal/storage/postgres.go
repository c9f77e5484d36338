package storage

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- SessionRepository ---

func (p *PostgresStorage) SaveSession(ctx context.Context, session *internal.WearSession) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO wear_sessions (id, date, start_time, end_time, duration, comfort, notes, fogging) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		session.ID, session.Date, session.StartTime, session.EndTime, session.Duration, session.Comfort, session.Notes, session.Fogging)
	if err != nil {
		p.logger.Errorf("failed to insert wear session: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListSessions(ctx context.Context) ([]internal.WearSession, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, date, start_time, end_time, duration, comfort, notes, fogging FROM wear_sessions ORDER BY start_time DESC`)
	if err != nil {
		p.logger.Errorf("failed to query wear sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	sessions := []internal.WearSession{}
	for rows.Next() {
		var s internal.WearSession
		err := rows.Scan(&s.ID, &s.Date, &s.StartTime, &s.EndTime, &s.Duration, &s.Comfort, &s.Notes, &s.Fogging)
		if err != nil {
			p.logger.Errorf("failed to scan wear session: %v", err)
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (p *PostgresStorage) DeleteSessions(ctx context.Context, ids []string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM wear_sessions WHERE id = ANY($1)`, ids)
	if err != nil {
		p.logger.Errorf("failed to delete wear sessions: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ReplaceSessions(ctx context.Context, sessions []internal.WearSession) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM wear_sessions`); err != nil {
		return err
	}
	for _, s := range sessions {
		_, err := tx.Exec(ctx, `INSERT INTO wear_sessions (id, date, start_time, end_time, duration, comfort, notes, fogging) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			s.ID, s.Date, s.StartTime, s.EndTime, s.Duration, s.Comfort, s.Notes, s.Fogging)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// --- SettingsRepository ---

func (p *PostgresStorage) GetSettings(ctx context.Context) (*internal.AppSettings, error) {
	row := p.pool.QueryRow(ctx, `SELECT target_wear_time, notifications_enabled FROM app_settings WHERE id = 1`)
	var s internal.AppSettings
	if err := row.Scan(&s.TargetWearTime, &s.NotificationsEnabled); err != nil {
		if err == pgx.ErrNoRows {
			return internal.DefaultSettings(), nil
		}
		p.logger.Errorf("failed to read settings: %v", err)
		return nil, err
	}
	return &s, nil
}

func (p *PostgresStorage) SaveSettings(ctx context.Context, settings *internal.AppSettings) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO app_settings (id, target_wear_time, notifications_enabled) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET target_wear_time = $1, notifications_enabled = $2`,
		settings.TargetWearTime, settings.NotificationsEnabled)
	if err != nil {
		p.logger.Errorf("failed to save settings: %v", err)
		return err
	}
	return nil
}

// --- TimerStateRepository ---

func (p *PostgresStorage) GetTimerState(ctx context.Context) (*internal.TimerState, error) {
	row := p.pool.QueryRow(ctx, `SELECT state FROM timer_state WHERE id = 1`)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		p.logger.Errorf("failed to read timer state: %v", err)
		return nil, err
	}
	var state internal.TimerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (p *PostgresStorage) SaveTimerState(ctx context.Context, state *internal.TimerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `INSERT INTO timer_state (id, state) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET state = $1`, data)
	if err != nil {
		p.logger.Errorf("failed to save timer state: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ClearTimerState(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM timer_state WHERE id = 1`)
	if err != nil {
		p.logger.Errorf("failed to clear timer state: %v", err)
		return err
	}
	return nil
}

// --- Compile-time assertions ---
var _ SessionRepository = (*PostgresStorage)(nil)
var _ SettingsRepository = (*PostgresStorage)(nil)
var _ TimerStateRepository = (*PostgresStorage)(nil)
