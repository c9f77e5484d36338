package storage

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/AdityasahuX07/Lens-Time/internal"
	"github.com/AdityasahuX07/Lens-Time/internal/config"
)

type Repositories struct {
	Sessions SessionRepository
	Settings SettingsRepository
	Timer    TimerStateRepository
	Closer   io.Closer
}

func NewRepositories(cfg *config.Config, logger internal.Logger) (*Repositories, error) {
	switch cfg.StorageBackend {
	case "file":
		return NewFileRepositories(cfg.DataDir, logger)
	case "redis":
		return NewRedisRepositories(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
	case "postgres":
		return NewPostgresRepositories(cfg.PostgresDSN, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func NewFileRepositories(dataDir string, logger internal.Logger) (*Repositories, error) {
	storage, err := NewFileStorage(
		filepath.Join(dataDir, "sessions.json"),
		filepath.Join(dataDir, "settings.json"),
		filepath.Join(dataDir, "timer_state.json"),
		logger,
	)
	if err != nil {
		return nil, err
	}
	return &Repositories{Sessions: storage, Settings: storage, Timer: storage, Closer: storage}, nil
}

func NewRedisRepositories(addr, password string, db int, logger internal.Logger) (*Repositories, error) {
	storage, err := NewRedisStorage(addr, password, db, logger)
	if err != nil {
		return nil, err
	}
	return &Repositories{Sessions: storage, Settings: storage, Timer: storage, Closer: storage}, nil
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (*Repositories, error) {
	storage, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, err
	}
	return &Repositories{Sessions: storage, Settings: storage, Timer: storage, Closer: storage}, nil
}
