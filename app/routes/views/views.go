// Package views builds the data every page rendered in the main layout needs.
package views

import (
	"student-dashboard/app/models"
	"student-dashboard/app/navigation"
	"student-dashboard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

const (
	SidebarCookie    = "sidebar_state"
	SidebarCollapsed = "collapsed"
	SidebarOpen      = "open"
)

// IsSidebarOpen reads the collapse cookie. The sidebar starts open.
func IsSidebarOpen(c *fiber.Ctx) bool {
	return c.Cookies(SidebarCookie) != SidebarCollapsed
}

// Page returns layout data for title plus extra. The sidebar highlights the
// current path for the signed-in role.
func Page(c *fiber.Ctx, title string, extra fiber.Map) fiber.Map {
	profile := auth.CurrentProfile(c)
	role := models.RoleNone
	if profile != nil {
		role = profile.Role
	}

	data := fiber.Map{
		"Title":   title,
		"Profile": profile,
		"Sidebar": navigation.BuildSidebar(role, c.Path(), IsSidebarOpen(c)),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// ToggleSidebar flips the collapse cookie and sends the browser back.
func ToggleSidebar(c *fiber.Ctx) error {
	next := SidebarCollapsed
	if !IsSidebarOpen(c) {
		next = SidebarOpen
	}

	c.Cookie(&fiber.Cookie{
		Name:     SidebarCookie,
		Value:    next,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: "Lax",
	})
	return c.RedirectBack(navigation.DashboardPath)
}
