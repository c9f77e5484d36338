package service

import (
	"context"

	"github.com/AdityasahuX07/Lens-Time/internal"
	"github.com/AdityasahuX07/Lens-Time/internal/storage"
)

type SettingsRequest struct {
	TargetWearTime       float64 `json:"target_wear_time" validate:"required,gt=0,lte=24"`
	NotificationsEnabled bool    `json:"notifications_enabled"`
}

func ValidateSettingsRequest(req *SettingsRequest) error {
	return validate.Struct(req)
}

func UpdateSettings(ctx context.Context, settingsRepo storage.SettingsRepository, req *SettingsRequest) (*internal.AppSettings, error) {
	settings := &internal.AppSettings{
		TargetWearTime:       req.TargetWearTime,
		NotificationsEnabled: req.NotificationsEnabled,
	}
	if err := settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
