package dashboard

import (
	"context"
	"student-dashboard/app/models"
	"student-dashboard/app/routes/auth"
	"student-dashboard/app/routes/views"
	"student-dashboard/app/session"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Builder assembles a role's dashboard.
type Builder interface {
	Build(ctx context.Context, profile models.Profile) (*models.Dashboard, error)
}

type Handler struct {
	auth       *auth.Handler
	dashboards Builder
	log        *zap.Logger
	now        func() time.Time
}

func NewHandler(authHandler *auth.Handler, dashboards Builder, log *zap.Logger) *Handler {
	return &Handler{
		auth:       authHandler,
		dashboards: dashboards,
		log:        log.Named("dashboard"),
		now:        time.Now,
	}
}

func SetupDashboardRoutes(app *fiber.App, h *Handler) {
	// The page handles every session state itself.
	app.Get("/dashboard", h.GetDashboard)

	api := app.Group("/api/dashboard", h.auth.AuthMiddleware)
	api.Get("/stats", h.GetDashboardStatsAPI)
	api.Get("/report.xlsx", h.GetDashboardReportAPI)
}

// GetDashboard renders the prompt matching the session state, or the
// dashboard for the signed-in role.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	state, sess := h.auth.Resolve(c)
	data := views.Page(c, "Dashboard", nil)

	switch state {
	case session.StatePending:
		c.Set("Refresh", "2")
		data["State"] = "pending"
	case session.StateSignedOut:
		data["State"] = "signed-out"
	case session.StateSignedIn:
		profile := sess.Profile
		if !profile.HasRole() {
			data["State"] = "no-role"
			break
		}

		// A degraded dashboard still renders; the failure is already logged.
		dash, err := h.dashboards.Build(c.UserContext(), profile)
		if dash == nil {
			return err
		}
		data["State"] = "ready"
		data["Dashboard"] = dash
	}

	return c.Render("dashboard/index", data)
}
