package handlers

import (
	"net/http"
	"time"

	"freightcalc/internal/domain"
	"freightcalc/internal/http/middleware"
	"freightcalc/internal/services"

	"github.com/gin-gonic/gin"
)

func exportService(c *gin.Context) services.ExportService {
	return services.ExportService{RequestID: middleware.GetRequestID(c)}
}

func serveExport(c *gin.Context, contentType string, build func(domain.TripParameters, domain.DerivedOutput, string) ([]byte, string, error)) {
	var trip domain.TripParameters
	if !BindJSONOrError(c, &trip) {
		return
	}

	dateStamp := time.Now().Format("2006-01-02")
	data, filename, err := build(trip, domain.Derive(trip), dateStamp)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "export_failed", err.Error(), nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// ExportCSV streams the estimate as a CSV attachment.
func ExportCSV(c *gin.Context) {
	serveExport(c, "text/csv; charset=utf-8", exportService(c).BuildCSV)
}

// ExportPDF streams the estimate as a PDF cost sheet.
func ExportPDF(c *gin.Context) {
	serveExport(c, "application/pdf", exportService(c).BuildPDF)
}

// ExportXLSX streams the estimate as a spreadsheet.
func ExportXLSX(c *gin.Context) {
	serveExport(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", exportService(c).BuildXLSX)
}
