package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

// BackupVersion is the current backup document version.
const BackupVersion = "1.0"

// backupSession is the wire form of a session inside a backup file.
// Only the timing fields survive an export; descriptive fields (comfort,
// notes, fogging) are dropped deliberately. Keys are camelCase to stay
// compatible with backups produced by earlier releases.
type backupSession struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Duration  int64      `json:"duration"`
}

type BackupData struct {
	Sessions   []backupSession `json:"sessions"`
	ExportDate string          `json:"exportDate"`
	Version    string          `json:"version"`
}

// ExportBackup serializes the session list into a backup document.
func ExportBackup(sessions []internal.WearSession, now time.Time) ([]byte, error) {
	filtered := make([]backupSession, len(sessions))
	for i, s := range sessions {
		filtered[i] = backupSession{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Duration:  s.Duration,
		}
	}

	backup := BackupData{
		Sessions:   filtered,
		ExportDate: now.Format(time.RFC3339),
		Version:    BackupVersion,
	}
	return json.MarshalIndent(backup, "", "  ")
}

// ImportBackup parses a backup document. The document must be a JSON
// object with a "sessions" array; anything else fails with
// ErrInvalidFormat and leaves the caller's data untouched. The returned
// sessions are meant to fully replace the store, not merge into it.
func ImportBackup(data []byte) ([]internal.WearSession, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", internal.ErrInvalidFormat, err)
	}

	raw, ok := doc["sessions"]
	if !ok {
		return nil, fmt.Errorf("%w: missing sessions", internal.ErrInvalidFormat)
	}

	var imported []backupSession
	if err := json.Unmarshal(raw, &imported); err != nil {
		return nil, fmt.Errorf("%w: sessions is not a list", internal.ErrInvalidFormat)
	}

	sessions := make([]internal.WearSession, len(imported))
	for i, s := range imported {
		sessions[i] = internal.WearSession{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Duration:  s.Duration,
		}
	}
	return sessions, nil
}
