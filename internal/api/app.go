package api

import (
	"github.com/AdityasahuX07/Lens-Time/internal"
	"github.com/AdityasahuX07/Lens-Time/internal/storage"
	"github.com/AdityasahuX07/Lens-Time/internal/timer"
)

type App interface {
	Logger() internal.Logger
	Sessions() storage.SessionRepository
	Settings() storage.SettingsRepository
	Timer() *timer.Engine
}

type appContext struct {
	logger   internal.Logger
	sessions storage.SessionRepository
	settings storage.SettingsRepository
	engine   *timer.Engine
}

func NewApp(logger internal.Logger, sessions storage.SessionRepository, settings storage.SettingsRepository, engine *timer.Engine) App {
	return &appContext{logger: logger, sessions: sessions, settings: settings, engine: engine}
}

func (a *appContext) Logger() internal.Logger                 { return a.logger }
func (a *appContext) Sessions() storage.SessionRepository     { return a.sessions }
func (a *appContext) Settings() storage.SettingsRepository    { return a.settings }
func (a *appContext) Timer() *timer.Engine                    { return a.engine }
