package dashboard

import (
	"bytes"
	"fmt"
	"student-dashboard/app/routes/auth"
	"student-dashboard/app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetDashboardStatsAPI returns the caller's dashboard statistics as JSON
func (h *Handler) GetDashboardStatsAPI(c *fiber.Ctx) error {
	profile := auth.CurrentProfile(c)
	if !profile.HasRole() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No role has been assigned to your account"})
	}

	dash, err := h.dashboards.Build(c.UserContext(), *profile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"role":  dash.Role,
			"stats": dash.Stats,
			"cards": dash.Cards,
		},
	})
}

// GetDashboardReportAPI streams the caller's dashboard as an XLSX workbook.
// A degraded dashboard is still exported with a note row.
func (h *Handler) GetDashboardReportAPI(c *fiber.Ctx) error {
	profile := auth.CurrentProfile(c)
	if !profile.HasRole() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No role has been assigned to your account"})
	}

	dash, err := h.dashboards.Build(c.UserContext(), *profile)
	if dash == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to build dashboard",
			"details": err.Error(),
		})
	}

	generated := h.now()
	var buf bytes.Buffer
	if err := services.WriteReport(&buf, dash, *profile, generated); err != nil {
		h.log.Error("write report failed", zap.String("profile_id", profile.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}

	c.Attachment(fmt.Sprintf("dashboard-%s-%s.xlsx", profile.Role, generated.UTC().Format("2006-01-02")))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Send(buf.Bytes())
}
