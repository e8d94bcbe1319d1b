// Package navigation maps dashboard roles onto their sidebar menus.
package navigation

import "student-dashboard/app/models"

// Item is one sidebar entry. Icon names a glyph in the layout's icon set.
type Item struct {
	Title  string
	URL    string
	Icon   string
	Active bool
}

const DashboardPath = "/dashboard"

var dashboardItem = Item{Title: "Dashboard", URL: DashboardPath, Icon: "layout-dashboard"}

var adminItems = []Item{
	{Title: "Users", URL: "/users", Icon: "users"},
	{Title: "Courses", URL: "/courses", Icon: "book-open"},
	{Title: "Attendance", URL: "/attendance", Icon: "calendar"},
	{Title: "Marks", URL: "/marks", Icon: "trophy"},
	{Title: "Reports", URL: "/reports", Icon: "bar-chart"},
	{Title: "Settings", URL: "/settings", Icon: "settings"},
}

var teacherItems = []Item{
	{Title: "My Courses", URL: "/my-courses", Icon: "book-open"},
	{Title: "Take Attendance", URL: "/take-attendance", Icon: "clipboard-check"},
	{Title: "Manage Marks", URL: "/manage-marks", Icon: "trophy"},
	{Title: "My Students", URL: "/my-students", Icon: "users"},
	{Title: "Reports", URL: "/teacher-reports", Icon: "bar-chart"},
	{Title: "Profile", URL: "/profile", Icon: "user-cog"},
}

var studentItems = []Item{
	{Title: "My Courses", URL: "/student-courses", Icon: "graduation-cap"},
	{Title: "My Attendance", URL: "/my-attendance", Icon: "calendar"},
	{Title: "My Marks", URL: "/my-marks", Icon: "trophy"},
	{Title: "Profile", URL: "/profile", Icon: "user-cog"},
}

// MenuFor returns a fresh copy of the menu for role. Dashboard is always first;
// a role outside the closed set gets only the Dashboard item.
func MenuFor(role models.Role) []Item {
	var extra []Item
	switch role {
	case models.RoleAdmin:
		extra = adminItems
	case models.RoleTeacher:
		extra = teacherItems
	case models.RoleStudent:
		extra = studentItems
	case models.RoleNone:
		extra = nil
	}

	items := make([]Item, 0, len(extra)+1)
	items = append(items, dashboardItem)
	return append(items, extra...)
}

// RolesFor returns the roles whose menu contains url, in models.Roles order.
func RolesFor(url string) []models.Role {
	var roles []models.Role
	for _, role := range models.Roles {
		for _, item := range MenuFor(role) {
			if item.URL == url {
				roles = append(roles, role)
				break
			}
		}
	}
	return roles
}

// Find returns the first menu item with the given url across all roles.
func Find(url string) (Item, bool) {
	for _, role := range models.Roles {
		for _, item := range MenuFor(role) {
			if item.URL == url {
				return item, true
			}
		}
	}
	return Item{}, false
}

// Destinations lists every distinct menu url except the dashboard, in
// first-seen order.
func Destinations() []string {
	seen := map[string]bool{DashboardPath: true}
	var urls []string
	for _, role := range models.Roles {
		for _, item := range MenuFor(role) {
			if !seen[item.URL] {
				seen[item.URL] = true
				urls = append(urls, item.URL)
			}
		}
	}
	return urls
}
