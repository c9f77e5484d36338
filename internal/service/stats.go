package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

// streakLookbackDays bounds the current-streak walk into the past.
const streakLookbackDays = 30

// All functions here are pure derivations over the session list: they
// never mutate their input, do not depend on its order, and treat
// multiple sessions on the same date as additive.

type StatsSummary struct {
	CurrentStreak   int    `json:"current_streak"`
	BestStreak      int    `json:"best_streak"`
	Lifetime        string `json:"lifetime"`
	Average         string `json:"average"`
	LifetimeSeconds int64  `json:"lifetime_seconds"`
	AverageSeconds  int64  `json:"average_seconds"`
	TotalSessions   int    `json:"total_sessions"`
	UniqueDates     int    `json:"unique_dates"`
}

type DayPoint struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

type WeekGraph struct {
	Days  []DayPoint `json:"days"`
	Range string     `json:"range"`
}

type MonthGraph struct {
	Month string     `json:"month"`
	Days  []DayPoint `json:"days"`
}

type CalendarDay struct {
	Day        int  `json:"day"` // 0 marks a leading blank cell
	HasSession bool `json:"has_session"`
	IsToday    bool `json:"is_today"`
}

type MonthCalendar struct {
	Month string        `json:"month"`
	Days  []CalendarDay `json:"days"`
}

func sessionDates(sessions []internal.WearSession) map[string]struct{} {
	dates := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		dates[s.Date] = struct{}{}
	}
	return dates
}

func secondsByDate(sessions []internal.WearSession) map[string]int64 {
	totals := make(map[string]int64, len(sessions))
	for _, s := range sessions {
		totals[s.Date] += s.Duration
	}
	return totals
}

// CurrentStreak counts consecutive wear days walking backward from
// today. A missing today is skipped rather than breaking the streak; any
// earlier gap ends the walk. The lookback is bounded to 30 days.
func CurrentStreak(sessions []internal.WearSession, today time.Time) int {
	if len(sessions) == 0 {
		return 0
	}
	dates := sessionDates(sessions)
	streak := 0
	for i := 0; i < streakLookbackDays; i++ {
		day := internal.FormatDate(today.AddDate(0, 0, -i))
		if _, ok := dates[day]; ok {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// BestStreak finds the longest run of consecutive wear dates over the
// whole history. Multiple sessions on one date count once.
func BestStreak(sessions []internal.WearSession) int {
	if len(sessions) == 0 {
		return 0
	}

	set := sessionDates(sessions)
	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates) // YYYY-MM-DD sorts chronologically

	best, current := 0, 1
	prev, err := time.Parse(internal.DateLayout, dates[0])
	if err != nil {
		return 0
	}
	for _, d := range dates[1:] {
		curr, err := time.Parse(internal.DateLayout, d)
		if err != nil {
			continue
		}
		if int(curr.Sub(prev).Hours()/24) == 1 {
			current++
		} else {
			if current > best {
				best = current
			}
			current = 1
		}
		prev = curr
	}
	if current > best {
		best = current
	}
	return best
}

func LifetimeSeconds(sessions []internal.WearSession) int64 {
	var total int64
	for _, s := range sessions {
		total += s.Duration
	}
	return total
}

func AverageSeconds(sessions []internal.WearSession) int64 {
	if len(sessions) == 0 {
		return 0
	}
	return LifetimeSeconds(sessions) / int64(len(sessions))
}

// FormatDuration renders whole seconds as "Xh Ym".
func FormatDuration(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func Summarize(sessions []internal.WearSession, today time.Time) StatsSummary {
	lifetime := LifetimeSeconds(sessions)
	average := AverageSeconds(sessions)
	return StatsSummary{
		CurrentStreak:   CurrentStreak(sessions, today),
		BestStreak:      BestStreak(sessions),
		Lifetime:        FormatDuration(lifetime),
		Average:         FormatDuration(average),
		LifetimeSeconds: lifetime,
		AverageSeconds:  average,
		TotalSessions:   len(sessions),
		UniqueDates:     len(sessionDates(sessions)),
	}
}

// HasSessionOnDate reports whether any session is attributed to the
// local date of t.
func HasSessionOnDate(sessions []internal.WearSession, t time.Time) bool {
	day := internal.FormatDate(t)
	for _, s := range sessions {
		if s.Date == day {
			return true
		}
	}
	return false
}

// WeekGraphData produces exactly 7 day points ending at today minus
// weekOffset whole weeks.
func WeekGraphData(sessions []internal.WearSession, today time.Time, weekOffset int) WeekGraph {
	totals := secondsByDate(sessions)

	graph := WeekGraph{Days: make([]DayPoint, 0, 7)}
	var start, end time.Time
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i-weekOffset*7)
		if i == 6 {
			start = date
		}
		if i == 0 {
			end = date
		}
		day := internal.FormatDate(date)
		graph.Days = append(graph.Days, DayPoint{
			Date:  day,
			Label: date.Format("Mon"),
			Hours: float64(totals[day]) / 3600,
		})
	}
	graph.Range = fmt.Sprintf("%d %s - %d %s",
		start.Day(), start.Format("Jan"), end.Day(), end.Format("Jan"))
	return graph
}

// monthStart resolves the first day of the month monthOffset months away
// from today. time.Date normalizes month overflow, so offsets crossing
// year boundaries work.
func monthStart(today time.Time, monthOffset int) time.Time {
	return time.Date(today.Year(), today.Month()+time.Month(monthOffset), 1, 0, 0, 0, 0, today.Location())
}

func daysInMonth(first time.Time) int {
	return time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, first.Location()).Day()
}

// MonthGraphData produces one day point for every calendar day of the
// target month, leap years included.
func MonthGraphData(sessions []internal.WearSession, today time.Time, monthOffset int) MonthGraph {
	first := monthStart(today, monthOffset)
	totals := secondsByDate(sessions)

	graph := MonthGraph{Month: first.Format("January 2006")}
	for day := 1; day <= daysInMonth(first); day++ {
		date := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, first.Location())
		key := internal.FormatDate(date)
		graph.Days = append(graph.Days, DayPoint{
			Date:  key,
			Label: fmt.Sprintf("%d", day),
			Hours: float64(totals[key]) / 3600,
		})
	}
	return graph
}

// MonthCalendarData produces the month grid for the calendar view:
// leading blank cells up to the weekday of the 1st, then one cell per
// day with session and today markers.
func MonthCalendarData(sessions []internal.WearSession, today time.Time, monthOffset int) MonthCalendar {
	first := monthStart(today, monthOffset)
	dates := sessionDates(sessions)
	todayStr := internal.FormatDate(today)

	cal := MonthCalendar{Month: first.Format("January 2006")}
	for i := 0; i < int(first.Weekday()); i++ {
		cal.Days = append(cal.Days, CalendarDay{})
	}
	for day := 1; day <= daysInMonth(first); day++ {
		date := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, first.Location())
		key := internal.FormatDate(date)
		_, hasSession := dates[key]
		cal.Days = append(cal.Days, CalendarDay{
			Day:        day,
			HasSession: hasSession,
			IsToday:    key == todayStr,
		})
	}
	return cal
}
