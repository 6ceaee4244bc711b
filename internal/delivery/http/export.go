package http

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/transitpulse/backend/internal/domain"
	"github.com/transitpulse/backend/internal/service"
	"github.com/transitpulse/backend/pkg/utils"
)

// BulkGenerateRequest is the body for bulk generation and ZIP export.
// Include flags default to true when omitted.
type BulkGenerateRequest struct {
	Days           int   `json:"days"`
	IncludeMetro   *bool `json:"include_metro"`
	IncludeRailway *bool `json:"include_railway"`
	IncludeBus     *bool `json:"include_bus"`
	IncludeSignals *bool `json:"include_signals"`
}

func (r BulkGenerateRequest) includes() map[domain.TransportType]bool {
	orTrue := func(b *bool) bool { return b == nil || *b }
	return map[domain.TransportType]bool{
		domain.TransportMetro:   orTrue(r.IncludeMetro),
		domain.TransportRailway: orTrue(r.IncludeRailway),
		domain.TransportBus:     orTrue(r.IncludeBus),
		domain.TransportSignal:  orTrue(r.IncludeSignals),
	}
}

// ExportCSV generates a series for one location and returns it as a CSV
// attachment
func (h *Handler) ExportCSV(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Days == 0 {
		req.Days = service.DefaultWindowDays
	}

	series, err := h.generator.Generate(req.LocationName, domain.TransportType(req.TransportType), req.Days)
	if err != nil {
		return errorToHTTP(err)
	}

	var buf bytes.Buffer
	if err := writeSeriesCSV(&buf, series); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to write CSV")
	}

	filename := csvFileName(domain.TransportType(req.TransportType), req.LocationName)
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(buf.Bytes())
}

// ExportZIP generates series for the selected transport types across the
// whole catalog and returns them as a ZIP of CSV files
func (h *Handler) ExportZIP(c *fiber.Ctx) error {
	var req BulkGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Days == 0 {
		req.Days = service.DefaultWindowDays
	}

	archive, _, err := h.buildBulkArchive(req.Days, req.includes())
	if err != nil {
		return errorToHTTP(err)
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=transport_data.zip")
	return c.Send(archive)
}

// BulkGenerate generates series for the selected transport types and reports
// the file set without returning the data
func (h *Handler) BulkGenerate(c *fiber.Ctx) error {
	var req BulkGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Days == 0 {
		req.Days = service.DefaultWindowDays
	}

	_, files, err := h.buildBulkArchive(req.Days, req.includes())
	if err != nil {
		return errorToHTTP(err)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"message":       "All data files generated successfully",
		"total_files":   len(files),
		"files":         files,
		"days_per_file": req.Days,
	})
}

// buildBulkArchive walks the catalog in order and zips one CSV per included
// location
func (h *Handler) buildBulkArchive(days int, include map[domain.TransportType]bool) ([]byte, []string, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	var files []string

	for _, transportType := range domain.TransportTypes {
		if !include[transportType] {
			continue
		}
		for _, loc := range h.catalog.LocationsOf(transportType) {
			series, err := h.generator.Generate(loc.Name, transportType, days)
			if err != nil {
				return nil, nil, err
			}

			filename := csvFileName(transportType, loc.Name)
			fw, err := zw.Create(filename)
			if err != nil {
				return nil, nil, fmt.Errorf("export: failed to create archive entry: %w", err)
			}
			if err := writeSeriesCSV(fw, series); err != nil {
				return nil, nil, fmt.Errorf("export: failed to write %s: %w", filename, err)
			}
			files = append(files, filename)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, nil, fmt.Errorf("export: failed to finalize archive: %w", err)
	}
	return buf.Bytes(), files, nil
}

func writeSeriesCSV(w io.Writer, series domain.FootfallSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ds", "y"}); err != nil {
		return err
	}
	for _, entry := range series {
		if err := cw.Write([]string{entry.Date, strconv.Itoa(entry.Value)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvFileName(transportType domain.TransportType, location string) string {
	return fmt.Sprintf("data_%s_%s.csv", transportType, utils.Slugify(location))
}
