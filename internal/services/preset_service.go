package services

import (
	"context"
	"fmt"

	"freightcalc/internal/domain"
	"freightcalc/internal/repositories"
	"freightcalc/internal/utils"
)

// PresetService wraps the single-slot preset repository with event logging.
type PresetService struct {
	Presets   repositories.PresetRepository
	RequestID string
}

func (s PresetService) Save(ctx context.Context, name string, trip domain.TripParameters) error {
	if err := s.Presets.Save(ctx, name, trip); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "presets", "save", fmt.Sprintf("name=%q legs=%d fees=%d", name, len(trip.Legs), len(trip.Fees)))
	return nil
}

func (s PresetService) Load(ctx context.Context) (domain.TripParameters, error) {
	trip, err := s.Presets.Load(ctx)
	if err != nil {
		return trip, err
	}
	utils.LogEvent(s.RequestID, "presets", "load", fmt.Sprintf("name=%q", trip.PresetName))
	return trip, nil
}

// Reset returns the blank form state. The stored slot is left untouched.
func (s PresetService) Reset() domain.TripParameters {
	return domain.DefaultTripParameters()
}
