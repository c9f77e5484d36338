package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/AdityasahuX07/Lens-Time/internal"
	"github.com/AdityasahuX07/Lens-Time/internal/storage"
)

var validate = validator.New()

// ManualEntryRequest describes a historical session entered by hand.
type ManualEntryRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Comfort   int       `json:"comfort" validate:"gte=0,lte=10"`
	Notes     string    `json:"notes,omitempty"`
	Fogging   bool      `json:"fogging,omitempty"`
}

func ValidateManualEntryRequest(body *ManualEntryRequest) error {
	return validate.Struct(body)
}

// CreateManualSession builds a completed session from a manual entry and
// stores it. The session is attributed to the local date of its start.
func CreateManualSession(ctx context.Context, sessionRepo storage.SessionRepository, body *ManualEntryRequest) (*internal.WearSession, error) {
	duration := int64(body.EndTime.Sub(body.StartTime) / time.Second)
	if duration <= 0 {
		return nil, fmt.Errorf("end time must be after start time")
	}

	end := body.EndTime
	session := &internal.WearSession{
		ID:        uuid.NewString(),
		Date:      internal.FormatDate(body.StartTime),
		StartTime: body.StartTime,
		EndTime:   &end,
		Duration:  duration,
		Comfort:   body.Comfort,
		Notes:     body.Notes,
		Fogging:   body.Fogging,
	}
	if err := sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSessions removes the given ids from the store.
func DeleteSessions(ctx context.Context, sessionRepo storage.SessionRepository, ids []string) error {
	return sessionRepo.DeleteSessions(ctx, ids)
}
