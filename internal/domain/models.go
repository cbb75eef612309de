package domain

import "github.com/google/uuid"

// RouteLeg is one named segment of the loaded route. Order matters for
// display only; distance contribution is a plain sum.
type RouteLeg struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	DistanceKm *float64 `json:"distanceKm"`
}

// FeeItem is a flat fee line (toll, parking, ...).
type FeeItem struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Amount *float64 `json:"amount"`
}

// TripParameters is the full input model of one transport job. Every numeric
// field is a pointer: nil means "unset" and computes as zero, so a partially
// filled form or an older stored preset never breaks the calculation.
type TripParameters struct {
	// Distance
	DeadheadKm *float64   `json:"deadheadKm"`
	Legs       []RouteLeg `json:"legs"`

	// Fuel
	ConsumptionLPer100Km *float64 `json:"consumptionLPer100Km"`
	FuelPricePerLiter    *float64 `json:"fuelPricePerLiter"`
	AdBluePercentOfFuel  *float64 `json:"adBluePercentOfFuel"`
	AdBluePricePerLiter  *float64 `json:"adBluePricePerLiter"`

	// Labor
	HourlyRate    *float64 `json:"hourlyRate"`
	DriveHours    *float64 `json:"driveHours"`
	WorkHours     *float64 `json:"workHours"`
	PerDiemAmount *float64 `json:"perDiemAmount"`
	Days          *float64 `json:"days"`

	// Fees & other
	Fees          []FeeItem `json:"fees"`
	OtherCost     *float64  `json:"otherCost"`
	ExtraExpenses *float64  `json:"extraExpenses"`

	// Pricing
	MarginPercent *float64 `json:"marginPercent"`
	ApplyVAT      bool     `json:"applyVat"`
	VATPercent    *float64 `json:"vatPercent"`

	PresetName string `json:"presetName"`
}

// NewRouteLeg returns a leg with a fresh id. Uniqueness within the current
// list is all that is required of the id.
func NewRouteLeg(name string) RouteLeg {
	return RouteLeg{ID: uuid.NewString(), Name: name}
}

// NewFeeItem returns a fee line with a fresh id.
func NewFeeItem(name string) FeeItem {
	return FeeItem{ID: uuid.NewString(), Name: name}
}

// DefaultTripParameters returns the blank form state: a single empty leg,
// every other field unset, VAT off.
func DefaultTripParameters() TripParameters {
	return TripParameters{
		Legs: []RouteLeg{NewRouteLeg("")},
		Fees: []FeeItem{},
	}
}
