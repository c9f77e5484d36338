package api

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

func GetTimer(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := app.Timer().Snapshot(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to read timer state")
			return
		}
		HandleSuccess(c, app.Logger(), snap, nil)
	}
}

func StartTimer(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := app.Timer().Start(c.Request.Context())
		if err != nil {
			if errors.Is(err, internal.ErrInvalidState) {
				HandleError(c, app.Logger(), err, 409, "Cannot start session")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to start session")
			return
		}
		HandleSuccess(c, app.Logger(), session, nil)
	}
}

func PauseTimer(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := app.Timer().Pause(c.Request.Context()); err != nil {
			if errors.Is(err, internal.ErrInvalidState) {
				HandleError(c, app.Logger(), err, 409, "Cannot pause session")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to pause session")
			return
		}
		HandleSuccess(c, app.Logger(), nil, nil)
	}
}

func ResumeTimer(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := app.Timer().Resume(c.Request.Context()); err != nil {
			if errors.Is(err, internal.ErrInvalidState) {
				HandleError(c, app.Logger(), err, 409, "Cannot resume session")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to resume session")
			return
		}
		HandleSuccess(c, app.Logger(), nil, nil)
	}
}

type StopTimerRequest struct {
	Fogging bool   `json:"fogging"`
	Comfort int    `json:"comfort"`
	Notes   string `json:"notes"`
}

func StopTimer(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body StopTimerRequest
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		session, err := app.Timer().Stop(c.Request.Context(), body.Fogging, body.Comfort, body.Notes)
		if err != nil {
			if errors.Is(err, internal.ErrInvalidState) {
				HandleError(c, app.Logger(), err, 409, "Cannot stop session")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to stop session")
			return
		}

		if err := app.Sessions().SaveSession(c.Request.Context(), session); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save completed session")
			return
		}
		HandleSuccess(c, app.Logger(), session, nil)
	}
}
