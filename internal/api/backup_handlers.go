package api

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AdityasahuX07/Lens-Time/internal"
	"github.com/AdityasahuX07/Lens-Time/internal/service"
)

func ExportBackup(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := app.Sessions().ListSessions(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch sessions for export")
			return
		}

		now := time.Now()
		data, err := service.ExportBackup(sessions, now)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to build backup")
			return
		}

		filename := fmt.Sprintf("scleral-backup-%s.json", internal.FormatDate(now))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(200, "application/json", data)
	}
}

func ImportBackup(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Failed to read backup")
			return
		}

		sessions, err := service.ImportBackup(data)
		if err != nil {
			if errors.Is(err, internal.ErrInvalidFormat) {
				HandleError(c, app.Logger(), err, 400, "Invalid backup file")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to parse backup")
			return
		}

		// Import fully replaces existing data, it is not a merge.
		if err := app.Sessions().ReplaceSessions(c.Request.Context(), sessions); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to replace sessions")
			return
		}
		HandleSuccess(c, app.Logger(), nil, map[string]any{"imported": len(sessions)})
	}
}
