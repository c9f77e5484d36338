package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AdityasahuX07/Lens-Time/internal"
	"github.com/AdityasahuX07/Lens-Time/internal/service"
)

func queryOffset(c *gin.Context) int {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		return 0
	}
	return offset
}

func GetStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := app.Sessions().ListSessions(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch sessions for stats")
			return
		}
		HandleSuccess(c, app.Logger(), service.Summarize(sessions, time.Now()), nil)
	}
}

func GetWeekGraph(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := app.Sessions().ListSessions(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch sessions for week graph")
			return
		}
		HandleSuccess(c, app.Logger(), service.WeekGraphData(sessions, time.Now(), queryOffset(c)), nil)
	}
}

func GetMonthGraph(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := app.Sessions().ListSessions(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch sessions for month graph")
			return
		}
		HandleSuccess(c, app.Logger(), service.MonthGraphData(sessions, time.Now(), queryOffset(c)), nil)
	}
}

func GetCalendar(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := app.Sessions().ListSessions(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch sessions for calendar")
			return
		}
		cal := service.MonthCalendarData(sessions, time.Now(), queryOffset(c))
		meta := map[string]any{"today": internal.FormatDate(time.Now())}
		HandleSuccess(c, app.Logger(), cal, meta)
	}
}
