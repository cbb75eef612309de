package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"freightcalc/internal/domain"
	"freightcalc/internal/utils"
)

func exportTrip() domain.TripParameters {
	return domain.TripParameters{
		DeadheadKm: utils.Float64Ptr(50),
		Legs: []domain.RouteLeg{
			{ID: "leg-1", Name: "Leg 1", DistanceKm: utils.Float64Ptr(200)},
		},
		ConsumptionLPer100Km: utils.Float64Ptr(30),
		FuelPricePerLiter:    utils.Float64Ptr(1.50),
		MarginPercent:        utils.Float64Ptr(10),
		ApplyVAT:             true,
		VATPercent:           utils.Float64Ptr(20),
		PresetName:           "vienna run",
	}
}

func TestBuildCSVContent(t *testing.T) {
	trip := exportTrip()
	derived := domain.Derive(trip)

	data, filename, err := ExportService{}.BuildCSV(trip, derived, "2026-08-29")
	if err != nil {
		t.Fatalf("BuildCSV error: %v", err)
	}
	if filename != "cost-estimate_2026-08-29.csv" {
		t.Fatalf("filename = %q", filename)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if got := records[0]; got[0] != "Metric" || got[1] != "Value" {
		t.Fatalf("header = %v", got)
	}

	want := map[string]string{
		"Deadhead to loading (km)": "50.00",
		"Total distance (km)":      "250.00",
		"Fuel (l)":                 "75.00",
		"Fuel €":                   "112.50",
		"Total cost €":             "112.50",
		"Margin %":                 "10.00",
		"Margin €":                 "11.25",
		"Price (excl. VAT) €":      "123.75",
		"VAT %":                    "20.00",
		"Price (incl. VAT) €":      "148.50",
		"Cost/km €":                "0.45",
		"Price/km €":               "0.49",
	}
	got := map[string]string{}
	for _, rec := range records[1:] {
		if len(rec) != 2 {
			t.Fatalf("row with %d columns: %v", len(rec), rec)
		}
		got[rec[0]] = rec[1]
	}
	for metric, value := range want {
		if got[metric] != value {
			t.Fatalf("%s = %q, want %q", metric, got[metric], value)
		}
	}

	// Row order is fixed: fuel before AdBlue before fees, totals after
	// categories.
	text := string(data)
	if strings.Index(text, "Fuel €") > strings.Index(text, "AdBlue €") {
		t.Fatalf("fuel row must precede AdBlue row")
	}
	if strings.Index(text, "Total cost €") > strings.Index(text, "Price (excl. VAT) €") {
		t.Fatalf("total cost row must precede price rows")
	}
}

func TestBuildCSVVATOffReportsZeroRate(t *testing.T) {
	trip := exportTrip()
	trip.ApplyVAT = false
	derived := domain.Derive(trip)

	data, _, err := ExportService{}.BuildCSV(trip, derived, "2026-08-29")
	if err != nil {
		t.Fatalf("BuildCSV error: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	for _, rec := range records {
		if rec[0] == "VAT %" && rec[1] != "0.00" {
			t.Fatalf("VAT %% = %q, want 0.00 with VAT off", rec[1])
		}
	}
}

func TestBuildPDF(t *testing.T) {
	trip := exportTrip()
	data, filename, err := ExportService{}.BuildPDF(trip, domain.Derive(trip), "2026-08-29")
	if err != nil {
		t.Fatalf("BuildPDF error: %v", err)
	}
	if filename != "cost-estimate_2026-08-29.pdf" {
		t.Fatalf("filename = %q", filename)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}

func TestBuildXLSX(t *testing.T) {
	trip := exportTrip()
	data, filename, err := ExportService{}.BuildXLSX(trip, domain.Derive(trip), "2026-08-29")
	if err != nil {
		t.Fatalf("BuildXLSX error: %v", err)
	}
	if filename != "cost-estimate_2026-08-29.xlsx" {
		t.Fatalf("filename = %q", filename)
	}
	// XLSX is a zip container.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("output does not look like a spreadsheet")
	}
}
