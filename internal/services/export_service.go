package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"freightcalc/internal/domain"
	"freightcalc/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ExportService flattens a trip and its derived output into downloadable
// artifacts. Row order is fixed so repeated exports diff cleanly.
type ExportService struct {
	RequestID string
}

type exportRow struct {
	Metric string
	Value  string
}

// estimateRows is the shared row table behind every export format.
func estimateRows(trip domain.TripParameters, derived domain.DerivedOutput) []exportRow {
	vatPct := 0.0
	if trip.ApplyVAT {
		vatPct = utils.Coerce(trip.VATPercent)
	}

	return []exportRow{
		{"Deadhead to loading (km)", utils.FormatMoney(utils.Coerce(trip.DeadheadKm))},
		{"Total distance (km)", utils.FormatMoney(derived.TotalDistanceKm)},
		{"Fuel (l)", utils.FormatMoney(derived.FuelLiters)},
		{"Fuel €", utils.FormatMoney(derived.FuelCost)},
		{"AdBlue (l)", utils.FormatMoney(derived.AdBlueLiters)},
		{"AdBlue €", utils.FormatMoney(derived.AdBlueCost)},
		{"Tolls/fees €", utils.FormatMoney(derived.FeesTotal)},
		{"Driver €", utils.FormatMoney(derived.LaborCost)},
		{"Per-diem €", utils.FormatMoney(derived.PerDiemCost)},
		{"Other €", utils.FormatMoney(derived.OtherCost)},
		{"Total cost €", utils.FormatMoney(derived.BaseCost)},
		{"Margin %", utils.FormatMoney(utils.Coerce(trip.MarginPercent))},
		{"Margin €", utils.FormatMoney(derived.MarginAmount)},
		{"Price (excl. VAT) €", utils.FormatMoney(derived.PriceNet)},
		{"VAT %", utils.FormatMoney(vatPct)},
		{"Price (incl. VAT) €", utils.FormatMoney(derived.PriceGross)},
		{"Cost/km €", utils.FormatMoney(derived.CostPerKm)},
		{"Price/km €", utils.FormatMoney(derived.PricePerKm)},
	}
}

func exportFilename(dateStamp, ext string) string {
	return fmt.Sprintf("cost-estimate_%s.%s", dateStamp, ext)
}

// BuildCSV renders the Metric/Value table as UTF-8 CSV.
func (s ExportService) BuildCSV(trip domain.TripParameters, derived domain.DerivedOutput, dateStamp string) ([]byte, string, error) {
	rows := estimateRows(trip, derived)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Metric", "Value"}); err != nil {
		return nil, "", err
	}
	for _, row := range rows {
		if err := w.Write([]string{row.Metric, row.Value}); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "csv", fmt.Sprintf("rows=%d", len(rows)))
	return buf.Bytes(), exportFilename(dateStamp, "csv"), nil
}

// BuildPDF renders the estimate as a one-page cost sheet.
func (s ExportService) BuildPDF(trip domain.TripParameters, derived domain.DerivedOutput, dateStamp string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Transport Cost Estimate", false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRANSPORT COST ESTIMATE")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	name := trip.PresetName
	if name == "" {
		name = "-"
	}
	pdf.Cell(0, 7, tr(fmt.Sprintf("Preset: %s", name)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Date: %s", dateStamp)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(110, 8, "Metric", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Value", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range estimateRows(trip, derived) {
		pdf.CellFormat(110, 7, tr(row.Metric), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, row.Value, "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "pdf", fmt.Sprintf("bytes=%d", buf.Len()))
	return buf.Bytes(), exportFilename(dateStamp, "pdf"), nil
}

// BuildXLSX renders the estimate as a single styled worksheet.
func (s ExportService) BuildXLSX(trip domain.TripParameters, derived domain.DerivedOutput, dateStamp string) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Estimate"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, "", fmt.Errorf("set sheet name: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 32); err != nil {
		return nil, "", fmt.Errorf("set col width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 16); err != nil {
		return nil, "", fmt.Errorf("set col width: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, "", fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", "Metric"); err != nil {
		return nil, "", err
	}
	if err := f.SetCellValue(sheet, "B1", "Value"); err != nil {
		return nil, "", err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return nil, "", err
	}

	for i, row := range estimateRows(trip, derived) {
		r := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.Metric); err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.Value); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "xlsx", fmt.Sprintf("bytes=%d", buf.Len()))
	return buf.Bytes(), exportFilename(dateStamp, "xlsx"), nil
}
