package timer

import "time"

// Quiet hours run from 21:00 to 04:00 local time.
const (
	quietHoursStart = 21
	quietHoursEnd   = 4
)

// IsQuietHours reports whether now falls inside the suppression window.
func IsQuietHours(now time.Time) bool {
	h := now.Hour()
	return h >= quietHoursStart || h < quietHoursEnd
}

// ShouldFire decides whether the reclean reminder is due. The reminder is
// due once elapsed wear time crosses half the target, notifications are
// enabled, it has not fired for this session yet, and now is outside
// quiet hours. A quiet-hours suppression is not a permanent skip: the
// caller re-evaluates every tick and fires on the first tick after quiet
// hours end.
func ShouldFire(elapsedSeconds int64, targetHours float64, alreadyFired, notificationsEnabled bool, now time.Time) bool {
	if !notificationsEnabled || alreadyFired {
		return false
	}
	halfTargetSeconds := int64(targetHours / 2 * 3600)
	if elapsedSeconds < halfTargetSeconds {
		return false
	}
	return !IsQuietHours(now)
}
