// Package sections serves the pages behind each sidebar link other than the
// dashboard. Access follows the menus: a page is open to every role whose
// menu lists it.
package sections

import (
	"student-dashboard/app/navigation"
	"student-dashboard/app/routes/auth"
	"student-dashboard/app/routes/views"

	"github.com/gofiber/fiber/v2"
)

var summaries = map[string]string{
	"/users":           "Create, review and manage student, teacher and administrator accounts.",
	"/courses":         "Set up courses and assign teachers to them.",
	"/attendance":      "Review attendance records across all courses.",
	"/marks":           "Review marks recorded across all courses.",
	"/settings":        "Configure the system.",
	"/my-courses":      "The courses you teach.",
	"/take-attendance": "Record today's attendance for your classes.",
	"/manage-marks":    "Record and update marks for your students.",
	"/my-students":     "Students enrolled in your courses.",
	"/student-courses": "The courses you are enrolled in.",
	"/my-attendance":   "Your attendance history.",
	"/my-marks":        "Your marks and scores.",
}

var reportPages = map[string]bool{
	"/reports":         true,
	"/teacher-reports": true,
}

func SetupSectionRoutes(app *fiber.App, authHandler *auth.Handler) {
	for _, url := range navigation.Destinations() {
		item, _ := navigation.Find(url)
		app.Get(url,
			authHandler.AuthMiddleware,
			auth.RoleMiddleware(navigation.RolesFor(url)...),
			showSection(item),
		)
	}
}

func showSection(item navigation.Item) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("section", views.Page(c, item.Title, fiber.Map{
			"Summary":   summaries[item.URL],
			"IsProfile": item.URL == "/profile",
			"IsReport":  reportPages[item.URL],
		}))
	}
}
