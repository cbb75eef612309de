package handlers

import (
	"net/http"

	"freightcalc/internal/domain"
	"freightcalc/internal/http/middleware"
	"freightcalc/internal/repositories"
	"freightcalc/internal/services"

	"github.com/gin-gonic/gin"
)

type savePresetRequest struct {
	Name string                `json:"name"`
	Trip domain.TripParameters `json:"trip"`
}

func presetService(c *gin.Context) services.PresetService {
	return services.PresetService{
		Presets:   repositories.PresetRepository{KV: getPresetKV()},
		RequestID: middleware.GetRequestID(c),
	}
}

// SavePreset overwrites the single preset slot with the submitted trip.
func SavePreset(c *gin.Context) {
	var req savePresetRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := presetService(c)
	if err := svc.Save(c.Request.Context(), req.Name, req.Trip); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "preset saved", "name": req.Name})
}

// LoadPreset reads the slot back and re-derives so the client gets a ready
// projection alongside the stored input.
func LoadPreset(c *gin.Context) {
	svc := presetService(c)
	trip, err := svc.Load(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, EstimateResponse{
		Trip:    trip,
		Derived: domain.Derive(trip),
	})
}

// DefaultPreset returns the blank form state without touching the store.
func DefaultPreset(c *gin.Context) {
	trip := presetService(c).Reset()
	c.JSON(http.StatusOK, EstimateResponse{
		Trip:    trip,
		Derived: domain.Derive(trip),
	})
}
