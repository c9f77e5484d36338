package internal

import "time"

// DateLayout is the calendar-date format sessions are attributed to.
const DateLayout = "2006-01-02"

type WearSession struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"` // local date of StartTime, YYYY-MM-DD
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Duration  int64      `json:"duration"` // whole seconds, 0 while in progress
	Comfort   int        `json:"comfort,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Fogging   bool       `json:"fogging,omitempty"`
}

// Active reports whether the session is still in progress.
func (s *WearSession) Active() bool {
	return s.EndTime == nil
}

// TimerState is the persisted snapshot of the in-progress session.
// StartAnchor is the effective start of the running stretch: it equals
// ActiveSession.StartTime when the session begins and is shifted forward
// on every resume, so elapsed time while running is always
// floor(now - StartAnchor) and paused intervals never count.
type TimerState struct {
	ActiveSession         *WearSession `json:"active_session"`
	ElapsedTime           int64        `json:"elapsed_time"`
	IsPaused              bool         `json:"is_paused"`
	StartAnchor           time.Time    `json:"start_anchor"`
	RecleanNotificationID string       `json:"reclean_notification_id,omitempty"`
}

type AppSettings struct {
	TargetWearTime       float64 `json:"target_wear_time"` // hours, >0 and <=24
	NotificationsEnabled bool    `json:"notifications_enabled"`
}

const DefaultTargetWearTime float64 = 14

func DefaultSettings() *AppSettings {
	return &AppSettings{
		TargetWearTime:       DefaultTargetWearTime,
		NotificationsEnabled: true,
	}
}

// FormatDate renders t as a local calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
