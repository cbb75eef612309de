package repositories

import (
	"context"
	"encoding/json"

	"freightcalc/internal/domain"
)

// PresetSlotKey is the single slot all preset operations act on. One preset
// exists at a time; saving overwrites it.
const PresetSlotKey = "transport-cost-preset"

// PresetRepository owns the slot key and the JSON encoding of the stored
// trip. All store access goes through the KVStore boundary.
type PresetRepository struct {
	KV KVStore
}

// Save serializes the full trip into the slot, stamping the preset name.
func (r PresetRepository) Save(ctx context.Context, name string, trip domain.TripParameters) error {
	trip.PresetName = name
	payload, err := json.Marshal(trip)
	if err != nil {
		return domain.InternalError{Msg: "failed to encode preset", Err: err}
	}
	if err := r.KV.Set(ctx, PresetSlotKey, string(payload)); err != nil {
		return domain.StoreWriteError{Key: PresetSlotKey, Err: err}
	}
	return nil
}

// Load reads the slot back. An absent slot is a NotFoundError, text that is
// not JSON at all is a MalformedPresetError. A structurally valid record is
// decoded field by field: a missing or wrongly-typed field falls back to its
// zero default instead of failing the whole load, so presets written by
// older shapes of the form still open.
func (r PresetRepository) Load(ctx context.Context) (domain.TripParameters, error) {
	var trip domain.TripParameters

	payload, ok, err := r.KV.Get(ctx, PresetSlotKey)
	if err != nil {
		return trip, domain.InternalError{Msg: "failed to read preset", Err: err}
	}
	if !ok {
		return trip, domain.NotFoundError{Resource: "preset"}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return trip, domain.MalformedPresetError{Key: PresetSlotKey, Err: err}
	}

	decodeField(raw, "deadheadKm", &trip.DeadheadKm)
	decodeField(raw, "legs", &trip.Legs)
	decodeField(raw, "consumptionLPer100Km", &trip.ConsumptionLPer100Km)
	decodeField(raw, "fuelPricePerLiter", &trip.FuelPricePerLiter)
	decodeField(raw, "adBluePercentOfFuel", &trip.AdBluePercentOfFuel)
	decodeField(raw, "adBluePricePerLiter", &trip.AdBluePricePerLiter)
	decodeField(raw, "hourlyRate", &trip.HourlyRate)
	decodeField(raw, "driveHours", &trip.DriveHours)
	decodeField(raw, "workHours", &trip.WorkHours)
	decodeField(raw, "perDiemAmount", &trip.PerDiemAmount)
	decodeField(raw, "days", &trip.Days)
	decodeField(raw, "fees", &trip.Fees)
	decodeField(raw, "otherCost", &trip.OtherCost)
	decodeField(raw, "extraExpenses", &trip.ExtraExpenses)
	decodeField(raw, "marginPercent", &trip.MarginPercent)
	decodeField(raw, "applyVat", &trip.ApplyVAT)
	decodeField(raw, "vatPercent", &trip.VATPercent)
	decodeField(raw, "presetName", &trip.PresetName)

	if trip.Legs == nil {
		trip.Legs = []domain.RouteLeg{}
	}
	if trip.Fees == nil {
		trip.Fees = []domain.FeeItem{}
	}

	return trip, nil
}

func decodeField[T any](raw map[string]json.RawMessage, key string, dst *T) {
	msg, ok := raw[key]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		return
	}
	*dst = v
}
