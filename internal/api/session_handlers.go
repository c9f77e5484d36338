package api

import (
	"github.com/gin-gonic/gin"

	"github.com/AdityasahuX07/Lens-Time/internal/service"
)

func GetSessions(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := app.Sessions().ListSessions(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch sessions")
			return
		}
		HandleSuccess(c, app.Logger(), sessions, map[string]any{"count": len(sessions)})
	}
}

func PostSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.ManualEntryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateManualEntryRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		session, err := service.CreateManualSession(c.Request.Context(), app.Sessions(), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save session")
			return
		}
		HandleSuccess(c, app.Logger(), session, nil)
	}
}

type DeleteSessionsRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

func DeleteSessions(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body DeleteSessionsRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid request: ids required")
			return
		}

		if err := service.DeleteSessions(c.Request.Context(), app.Sessions(), body.IDs); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to delete sessions")
			return
		}
		HandleSuccess(c, app.Logger(), nil, map[string]any{"deleted": len(body.IDs)})
	}
}
