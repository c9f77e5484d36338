package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AdityasahuX07/Lens-Time/internal/auth"
)

// NewRouter assembles the full route table. When authToken is empty the
// API is open, which is the expected mode for a local single-user
// install.
func NewRouter(app App, authToken string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protected := r.Group("/")
	if authToken != "" {
		provider := auth.NewLocalProvider(authToken, app.Logger())
		protected.Use(auth.Middleware(provider))
	}

	protected.GET("/timer", GetTimer(app))
	protected.POST("/timer/start", StartTimer(app))
	protected.POST("/timer/pause", PauseTimer(app))
	protected.POST("/timer/resume", ResumeTimer(app))
	protected.POST("/timer/stop", StopTimer(app))

	protected.GET("/sessions", GetSessions(app))
	protected.POST("/sessions", PostSession(app))
	protected.DELETE("/sessions", DeleteSessions(app))

	protected.GET("/stats", GetStats(app))
	protected.GET("/stats/week", GetWeekGraph(app))
	protected.GET("/stats/month", GetMonthGraph(app))
	protected.GET("/stats/calendar", GetCalendar(app))

	protected.GET("/settings", GetSettings(app))
	protected.PUT("/settings", PutSettings(app))

	protected.GET("/backup", ExportBackup(app))
	protected.POST("/backup", ImportBackup(app))

	return r
}
