package navigation

import "student-dashboard/app/models"

// Sidebar is the view model the layout renders.
type Sidebar struct {
	Label    string
	Items    []Item
	Open     bool
	Expanded bool
}

// BuildSidebar marks the item whose URL equals currentPath exactly.
func BuildSidebar(role models.Role, currentPath string, open bool) Sidebar {
	items := MenuFor(role)
	expanded := false
	for i := range items {
		if items[i].URL == currentPath {
			items[i].Active = true
			expanded = true
		}
	}

	label := "Menu"
	if role.Valid() {
		label = role.Title() + " Panel"
	}

	return Sidebar{
		Label:    label,
		Items:    items,
		Open:     open,
		Expanded: expanded,
	}
}
