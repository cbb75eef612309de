package handlers

import (
	"net/http"

	"freightcalc/internal/domain"

	"github.com/gin-gonic/gin"
)

// EstimateResponse is the engine boundary payload: the trip as understood by
// the server plus its full derived projection.
type EstimateResponse struct {
	Trip    domain.TripParameters `json:"trip"`
	Derived domain.DerivedOutput  `json:"derived"`
}

// PostEstimate recomputes the full derived output for the submitted trip.
// The engine is total: any shape of optional/unset fields computes.
func PostEstimate(c *gin.Context) {
	var trip domain.TripParameters
	if !BindJSONOrError(c, &trip) {
		return
	}

	c.JSON(http.StatusOK, EstimateResponse{
		Trip:    trip,
		Derived: domain.Derive(trip),
	})
}
