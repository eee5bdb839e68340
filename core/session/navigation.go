package session

import "strings"

// Route is one top-level screen and the roles allowed to reach it.
// The same table drives the route gate and the navigation renderer.
type Route struct {
	ID    string `json:"id"`
	Path  string `json:"path"`
	Label string `json:"label"`
	Roles []Role `json:"-"`
}

// LoginPath is where unauthenticated navigation is sent.
const LoginPath = "/login"

var everyone = AllRoles

// Routes is the navigation table, in display order.
var Routes = []Route{
	{ID: "dashboard", Path: "/", Label: "Dashboard", Roles: everyone},
	{ID: "students", Path: "/students", Label: "Students", Roles: []Role{RoleAdmin, RoleTeacher}},
	{ID: "teachers", Path: "/teachers", Label: "Teachers", Roles: []Role{RoleAdmin}},
	{ID: "classes", Path: "/classes", Label: "Classes & Timetable", Roles: []Role{RoleAdmin, RoleTeacher, RoleStudent}},
	{ID: "assignments", Path: "/assignments", Label: "Assignments", Roles: []Role{RoleAdmin, RoleTeacher, RoleStudent}},
	{ID: "exams", Path: "/exams", Label: "Exams & Results", Roles: everyone},
	{ID: "fees", Path: "/fees", Label: "Fees & Payments", Roles: []Role{RoleAdmin, RoleParent}},
	{ID: "live-classes", Path: "/live-classes", Label: "Live Classes", Roles: []Role{RoleAdmin, RoleTeacher, RoleStudent}},
	{ID: "library", Path: "/library", Label: "Library", Roles: []Role{RoleAdmin, RoleTeacher, RoleStudent}},
	{ID: "transport", Path: "/transport", Label: "Transport", Roles: []Role{RoleAdmin, RoleStudent, RoleParent}},
	{ID: "hostel", Path: "/hostel", Label: "Hostel", Roles: []Role{RoleAdmin, RoleStudent, RoleParent}},
	{ID: "events", Path: "/events", Label: "Events & Activities", Roles: everyone},
	{ID: "cms", Path: "/cms", Label: "Content Management", Roles: []Role{RoleAdmin}},
	{ID: "crm", Path: "/crm", Label: "CRM & Leads", Roles: []Role{RoleAdmin}},
	{ID: "reports", Path: "/reports", Label: "Reports & Analytics", Roles: []Role{RoleAdmin, RoleTeacher}},
	{ID: "communication", Path: "/communication", Label: "Communication", Roles: everyone},
	{ID: "settings", Path: "/settings", Label: "Settings", Roles: []Role{RoleAdmin}},
}

// Allows reports whether role is in the route's allow-list.
func (r Route) Allows(role Role) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Navigation returns the routes visible to role, in table order.
func Navigation(role Role) []Route {
	visible := make([]Route, 0, len(Routes))
	for _, r := range Routes {
		if r.Allows(role) {
			visible = append(visible, r)
		}
	}
	return visible
}

// LookupRoute finds the route registered at path. Trailing slashes are ignored.
func LookupRoute(path string) (Route, bool) {
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		path = "/"
	}
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// RouteByID finds the route with the given id.
func RouteByID(id string) (Route, bool) {
	for _, r := range Routes {
		if r.ID == id {
			return r, true
		}
	}
	return Route{}, false
}
