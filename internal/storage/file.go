package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

type FileStorage struct {
	sessions     map[string]*internal.WearSession
	sessionIndex []*internal.WearSession // sorted by StartTime descending
	settings     *internal.AppSettings
	timerState   *internal.TimerState

	mu sync.RWMutex

	sessionsFile string
	settingsFile string
	timerFile    string

	saveSessionsChan chan struct{}
	saveSettingsChan chan struct{}
	saveTimerChan    chan struct{}
	shutdownChan     chan struct{}
	saveDelay        time.Duration

	logger internal.Logger
}

func NewFileStorage(sessionsFile, settingsFile, timerFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		sessions:         make(map[string]*internal.WearSession),
		sessionsFile:     sessionsFile,
		settingsFile:     settingsFile,
		timerFile:        timerFile,
		saveSessionsChan: make(chan struct{}, 1),
		saveSettingsChan: make(chan struct{}, 1),
		saveTimerChan:    make(chan struct{}, 1),
		shutdownChan:     make(chan struct{}),
		saveDelay:        500 * time.Millisecond,
		logger:           logger,
	}

	if err := s.loadSessions(); err != nil {
		logger.Errorf("storage: failed to load sessions: %v", err)
		return nil, err
	}
	if err := s.loadSettings(); err != nil {
		logger.Errorf("storage: failed to load settings: %v", err)
		return nil, err
	}
	if err := s.loadTimerState(); err != nil {
		logger.Errorf("storage: failed to load timer state: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveSessionsChan, s.saveSessions)
	go s.saveWorker(s.saveSettingsChan, s.saveSettings)
	go s.saveWorker(s.saveTimerChan, s.saveTimerState)

	return s, nil
}

func decodeJSONFile(path string, v interface{}) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *FileStorage) loadSessions() error {
	var sessions []*internal.WearSession
	if _, err := decodeJSONFile(s.sessionsFile, &sessions); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range sessions {
		s.sessions[sess.ID] = sess
		s.sessionIndex = append(s.sessionIndex, sess)
	}
	sort.Slice(s.sessionIndex, func(i, j int) bool {
		return s.sessionIndex[i].StartTime.After(s.sessionIndex[j].StartTime)
	})
	return nil
}

func (s *FileStorage) loadSettings() error {
	var settings internal.AppSettings
	ok, err := decodeJSONFile(s.settingsFile, &settings)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.settings = &settings
	}
	return nil
}

func (s *FileStorage) loadTimerState() error {
	var state *internal.TimerState
	if _, err := decodeJSONFile(s.timerFile, &state); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timerState = state
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveSessions() error {
	s.mu.RLock()
	sessions := make([]*internal.WearSession, len(s.sessionIndex))
	copy(sessions, s.sessionIndex)
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.sessionsFile, sessions)
}

func (s *FileStorage) saveSettings() error {
	s.mu.RLock()
	settings := s.settings
	s.mu.RUnlock()
	if settings == nil {
		return nil
	}
	return atomicWriteFileJSON(s.settingsFile, settings)
}

func (s *FileStorage) saveTimerState() error {
	s.mu.RLock()
	state := s.timerState
	s.mu.RUnlock()
	if state == nil {
		err := os.Remove(s.timerFile)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	return atomicWriteFileJSON(s.timerFile, state)
}

func (s *FileStorage) saveWorker(signal chan struct{}, save func() error) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-signal:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: error saving: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func requestSave(signal chan struct{}) {
	select {
	case signal <- struct{}{}:
	default:
	}
}

// Close stops the save workers and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	if err := s.saveSessions(); err != nil {
		return err
	}
	if err := s.saveSettings(); err != nil {
		return err
	}
	return s.saveTimerState()
}

// --- SessionRepository ---

func (s *FileStorage) SaveSession(ctx context.Context, session *internal.WearSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	index := s.sessionIndex
	inserted := false
	for i, existing := range index {
		if existing.StartTime.Before(session.StartTime) {
			index = append(index[:i], append([]*internal.WearSession{session}, index[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		index = append(index, session)
	}
	s.sessionIndex = index
	requestSave(s.saveSessionsChan)
	return nil
}

func (s *FileStorage) ListSessions(ctx context.Context) ([]internal.WearSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]internal.WearSession, len(s.sessionIndex))
	for i, sess := range s.sessionIndex {
		sessions[i] = *sess
	}
	return sessions, nil
}

func (s *FileStorage) DeleteSessions(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := s.sessionIndex[:0]
	for _, sess := range s.sessionIndex {
		if drop[sess.ID] {
			delete(s.sessions, sess.ID)
			continue
		}
		kept = append(kept, sess)
	}
	s.sessionIndex = kept
	requestSave(s.saveSessionsChan)
	return nil
}

func (s *FileStorage) ReplaceSessions(ctx context.Context, sessions []internal.WearSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make(map[string]*internal.WearSession, len(sessions))
	s.sessionIndex = make([]*internal.WearSession, 0, len(sessions))
	for i := range sessions {
		sess := sessions[i]
		s.sessions[sess.ID] = &sess
		s.sessionIndex = append(s.sessionIndex, &sess)
	}
	sort.Slice(s.sessionIndex, func(i, j int) bool {
		return s.sessionIndex[i].StartTime.After(s.sessionIndex[j].StartTime)
	})
	requestSave(s.saveSessionsChan)
	return nil
}

// --- SettingsRepository ---

func (s *FileStorage) GetSettings(ctx context.Context) (*internal.AppSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return internal.DefaultSettings(), nil
	}
	settings := *s.settings
	return &settings, nil
}

func (s *FileStorage) SaveSettings(ctx context.Context, settings *internal.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *settings
	s.settings = &copied
	requestSave(s.saveSettingsChan)
	return nil
}

// --- TimerStateRepository ---

func (s *FileStorage) GetTimerState(ctx context.Context) (*internal.TimerState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.timerState == nil {
		return nil, nil
	}
	state := *s.timerState
	if s.timerState.ActiveSession != nil {
		sess := *s.timerState.ActiveSession
		state.ActiveSession = &sess
	}
	return &state, nil
}

func (s *FileStorage) SaveTimerState(ctx context.Context, state *internal.TimerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *state
	if state.ActiveSession != nil {
		sess := *state.ActiveSession
		copied.ActiveSession = &sess
	}
	s.timerState = &copied
	requestSave(s.saveTimerChan)
	return nil
}

func (s *FileStorage) ClearTimerState(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timerState = nil
	requestSave(s.saveTimerChan)
	return nil
}

// --- Compile-time assertions ---
var _ SessionRepository = (*FileStorage)(nil)
var _ SettingsRepository = (*FileStorage)(nil)
var _ TimerStateRepository = (*FileStorage)(nil)
