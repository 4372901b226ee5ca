package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/blushy/internal/services"
)

func (handler *Handler) parseExportRange(c *fiber.Ctx) (*time.Time, *time.Time, string) {
	from, to, err := services.ParseExportRange(c.Query("from"), c.Query("to"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExportFromDateInvalid):
			return nil, nil, "invalid from date"
		case errors.Is(err, services.ErrExportToDateInvalid):
			return nil, nil, "invalid to date"
		default:
			return nil, nil, "invalid range"
		}
	}
	return from, to, ""
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("blushy-export-%s.%s", now.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
