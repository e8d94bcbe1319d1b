// Package server assembles the fiber application.
package server

import (
	"context"
	"errors"
	"strings"
	"student-dashboard/app/routes/auth"
	"student-dashboard/app/routes/dashboard"
	"student-dashboard/app/routes/landing"
	"student-dashboard/app/routes/sections"
	"student-dashboard/app/routes/views"
	"student-dashboard/app/templates"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

type Deps struct {
	Auth           *auth.Handler
	Dashboards     dashboard.Builder
	Log            *zap.Logger
	Checks         map[string]Check
	TemplateReload bool
	AccessLog      bool
}

func New(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Student Management System",
		Views:        templates.NewEngine(deps.TemplateReload),
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler(deps.Log),
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	if deps.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New())

	app.Get("/health", health(deps.Checks))
	app.Post("/ui/sidebar", views.ToggleSidebar)

	landing.SetupLandingRoutes(app, deps.Auth)
	auth.SetupAuthRoutes(app, deps.Auth)
	dashboard.SetupDashboardRoutes(app, dashboard.NewHandler(deps.Auth, deps.Dashboards, deps.Log))
	sections.SetupSectionRoutes(app, deps.Auth)

	// Catch-all route for 404 errors (must be last)
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	return app
}

func health(checks map[string]Check) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		status := fiber.StatusOK
		results := fiber.Map{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = fiber.StatusServiceUnavailable
				results[name] = err.Error()
				continue
			}
			results[name] = "ok"
		}

		overall := "ok"
		if status != fiber.StatusOK {
			overall = "degraded"
		}
		return c.Status(status).JSON(fiber.Map{"status": overall, "checks": results})
	}
}

// errorHandler answers /api paths with JSON and everything else with the
// error page.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"code":    code,
			})
		}

		data := fiber.Map{
			"Title":     "Error - Student Management System",
			"ErrorCode": code,
		}
		switch code {
		case fiber.StatusNotFound:
			data["Title"] = "Page Not Found - Student Management System"
			data["ErrorTitle"] = "Page Not Found"
			data["ErrorMessage"] = "The page you are looking for does not exist."
		case fiber.StatusForbidden:
			data["ErrorTitle"] = "Access Forbidden"
			data["ErrorMessage"] = "You don't have permission to access this resource."
		case fiber.StatusUnauthorized:
			data["ErrorTitle"] = "Unauthorized"
			data["ErrorMessage"] = "Please sign in to access this resource."
		case fiber.StatusInternalServerError:
			data["Title"] = "Server Error - Student Management System"
			data["ErrorTitle"] = "Internal Server Error"
			data["ErrorMessage"] = "We're experiencing technical difficulties. Please try again later."
		default:
			data["ErrorTitle"] = "An Error Occurred"
			data["ErrorMessage"] = err.Error()
		}

		if renderErr := c.Status(code).Render("error", data, ""); renderErr != nil {
			return c.Status(code).SendString(err.Error())
		}
		return nil
	}
}
