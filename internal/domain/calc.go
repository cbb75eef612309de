package domain

import (
	"freightcalc/internal/utils"
)

// breakdownEpsilon filters numerical noise out of the visualization list.
const breakdownEpsilon = 1e-4

// BreakdownEntry is one slice of the cost chart.
type BreakdownEntry struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// DerivedOutput is the full financial projection of one TripParameters
// snapshot. It has no lifecycle of its own: it is recomputed wholesale on
// every input change.
type DerivedOutput struct {
	TotalDistanceKm float64 `json:"totalDistanceKm"`

	FuelLiters   float64 `json:"fuelLiters"`
	FuelCost     float64 `json:"fuelCost"`
	AdBlueLiters float64 `json:"adBlueLiters"`
	AdBlueCost   float64 `json:"adBlueCost"`

	FeesTotal   float64 `json:"feesTotal"`
	LaborCost   float64 `json:"laborCost"`
	PerDiemCost float64 `json:"perDiemCost"`
	OtherCost   float64 `json:"otherCost"`

	BaseCost     float64 `json:"baseCost"`
	MarginAmount float64 `json:"marginAmount"`
	PriceNet     float64 `json:"priceNet"`
	PriceGross   float64 `json:"priceGross"`

	CostPerKm  float64 `json:"costPerKm"`
	PricePerKm float64 `json:"pricePerKm"`

	Breakdown []BreakdownEntry `json:"breakdown"`
}

// Derive computes the full cost projection for one trip. Pure and total:
// unset fields compute as zero, zero distance yields zero per-km metrics,
// and no input can make it fail.
//
// Per-diem is day-count aware: the amount is multiplied by the day count,
// defaulting to a single day when no count is given.
func Derive(trip TripParameters) DerivedOutput {
	totalKm := utils.Coerce(trip.DeadheadKm)
	for _, leg := range trip.Legs {
		totalKm += utils.Coerce(leg.DistanceKm)
	}

	fuelLiters := totalKm * utils.Coerce(trip.ConsumptionLPer100Km) / 100
	fuelCost := fuelLiters * utils.Coerce(trip.FuelPricePerLiter)
	adBlueLiters := fuelLiters * utils.Coerce(trip.AdBluePercentOfFuel) / 100
	adBlueCost := adBlueLiters * utils.Coerce(trip.AdBluePricePerLiter)

	feesTotal := 0.0
	for _, fee := range trip.Fees {
		feesTotal += utils.Coerce(fee.Amount)
	}

	laborCost := utils.Coerce(trip.HourlyRate) * (utils.Coerce(trip.DriveHours) + utils.Coerce(trip.WorkHours))

	days := utils.Coerce(trip.Days)
	if days < 1 {
		days = 1
	}
	perDiemCost := utils.Coerce(trip.PerDiemAmount) * days

	otherCost := utils.Coerce(trip.OtherCost) + utils.Coerce(trip.ExtraExpenses)

	baseCost := fuelCost + adBlueCost + feesTotal + laborCost + perDiemCost + otherCost
	marginAmount := baseCost * utils.Coerce(trip.MarginPercent) / 100
	priceNet := baseCost + marginAmount

	priceGross := priceNet
	if trip.ApplyVAT {
		priceGross = priceNet * (1 + utils.Coerce(trip.VATPercent)/100)
	}

	costPerKm := 0.0
	pricePerKm := 0.0
	if totalKm > 0 {
		costPerKm = baseCost / totalKm
		pricePerKm = priceNet / totalKm
	}

	out := DerivedOutput{
		TotalDistanceKm: totalKm,
		FuelLiters:      fuelLiters,
		FuelCost:        fuelCost,
		AdBlueLiters:    adBlueLiters,
		AdBlueCost:      adBlueCost,
		FeesTotal:       feesTotal,
		LaborCost:       laborCost,
		PerDiemCost:     perDiemCost,
		OtherCost:       otherCost,
		BaseCost:        baseCost,
		MarginAmount:    marginAmount,
		PriceNet:        priceNet,
		PriceGross:      priceGross,
		CostPerKm:       costPerKm,
		PricePerKm:      pricePerKm,
	}

	// Fixed category order keeps the chart and export rows stable.
	candidates := []BreakdownEntry{
		{Label: "Fuel", Amount: fuelCost},
		{Label: "AdBlue", Amount: adBlueCost},
		{Label: "Tolls/fees", Amount: feesTotal},
		{Label: "Driver", Amount: laborCost},
		{Label: "Per-diem", Amount: perDiemCost},
		{Label: "Other", Amount: otherCost},
	}
	out.Breakdown = make([]BreakdownEntry, 0, len(candidates))
	for _, c := range candidates {
		if c.Amount > breakdownEpsilon {
			out.Breakdown = append(out.Breakdown, c)
		}
	}

	return out
}
