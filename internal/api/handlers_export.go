package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/blushy/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	from, to, rangeError := handler.parseExportRange(c)
	if rangeError != "" {
		return apiError(c, fiber.StatusBadRequest, rangeError)
	}

	summary, err := handler.exportService.BuildSummary(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch days")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	from, to, rangeError := handler.parseExportRange(c)
	if rangeError != "" {
		return apiError(c, fiber.StatusBadRequest, rangeError)
	}

	rows, err := handler.exportService.BuildCSVRows(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch days")
	}
	now := handler.now().In(handler.location)

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range rows {
		if err := writer.Write(row.Columns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(now, "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	from, to, rangeError := handler.parseExportRange(c)
	if rangeError != "" {
		return apiError(c, fiber.StatusBadRequest, rangeError)
	}

	entries, err := handler.exportService.BuildJSONEntries(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch days")
	}
	now := handler.now().In(handler.location)

	payload := fiber.Map{
		"exportedAt": now.Format(time.RFC3339),
		"entries":    entries,
	}

	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(now, "json"))
	return c.Send(serialized)
}
