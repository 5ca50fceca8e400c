package views

// NavItem is one entry in the header navigation.
type NavItem struct {
	Name   string
	Href   string
	Icon   string
	Active bool
}

var navigation = [...]NavItem{
	{Name: "Home", Href: "/", Icon: "home"},
	{Name: "Announcements", Href: "/dashboard/announcements", Icon: "megaphone"},
	{Name: "Events", Href: "/dashboard/events", Icon: "calendar"},
	{Name: "Issues", Href: "/dashboard/issues", Icon: "alert-circle"},
	{Name: "Marketplace", Href: "/dashboard/marketplace", Icon: "shopping-cart"},
	{Name: "Emergency", Href: "/dashboard/emergency", Icon: "phone"},
	{Name: "Forum", Href: "/dashboard/forum", Icon: "message-square"},
}

// Navigation marks the item whose href equals path exactly. Sub-paths do not
// activate their parent.
func Navigation(path string) []NavItem {
	items := make([]NavItem, len(navigation))
	for i, item := range navigation {
		item.Active = item.Href == path
		items[i] = item
	}
	return items
}
