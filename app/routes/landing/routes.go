// Package landing serves the public entry page.
package landing

import (
	"student-dashboard/app/navigation"
	"student-dashboard/app/routes/auth"
	"student-dashboard/app/session"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Feature struct {
	Title       string
	Description string
}

var features = []Feature{
	{Title: "Student Management", Description: "Manage student profiles, enrollments, and academic records in one place."},
	{Title: "Course Management", Description: "Create and organize courses, assign teachers, and track enrollments."},
	{Title: "Attendance Tracking", Description: "Record daily attendance and monitor attendance rates across courses."},
	{Title: "Performance Analytics", Description: "Track marks and academic performance with clear summaries."},
}

func SetupLandingRoutes(app *fiber.App, authHandler *auth.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return ShowLandingPage(c, authHandler)
	})
}

// ShowLandingPage sends signed-in users to their dashboard.
func ShowLandingPage(c *fiber.Ctx, authHandler *auth.Handler) error {
	state, _ := authHandler.Resolve(c)

	switch state {
	case session.StatePending:
		return auth.RenderLoading(c)
	case session.StateSignedIn:
		return c.Redirect(navigation.DashboardPath)
	default:
		return c.Render("landing", fiber.Map{
			"Title":    "Student Management System",
			"Features": features,
			"Year":     time.Now().Year(),
		}, "")
	}
}
