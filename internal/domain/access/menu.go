package access

type Category string

const (
	CategoryManagement   Category = "gestion"
	CategoryServices     Category = "servicios"
	CategoryAppointments Category = "citas"
	CategoryDirect       Category = "direct"
)

type Entry struct {
	Capability Capability `json:"capability,omitempty"`
	URL        string     `json:"url"`
	Text       string     `json:"text"`
	Icon       string     `json:"icon"`
	Category   Category   `json:"-"`
}

type Group struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Items    []Entry  `json:"items"`
}

type Menu struct {
	Home   Entry   `json:"home"`
	Groups []Group `json:"groups"`
	Direct []Entry `json:"direct"`
}

var home = Entry{URL: "dashboard.html", Text: "Inicio", Icon: "bi-house-door"}

// entries is ordered: it is the order items appear inside each group.
var entries = []Entry{
	{Users, "users.html", "Usuarios", "bi-people", CategoryManagement},
	{Roles, "roles.html", "Roles", "bi-person-badge", CategoryManagement},
	{Employees, "employees.html", "Empleados", "bi-person-video", CategoryManagement},
	{Clients, "clients.html", "Clientes", "bi-person-circle", CategoryManagement},
	{Auth, "auth.html", "Autenticación", "bi-person-circle", CategoryManagement},

	{Services, "services.html", "Servicios", "bi-list-check", CategoryServices},
	{AppointmentServices, "appointmentservices.html", "Servicios de Citas", "bi-list-check", CategoryServices},

	{Schedules, "schedules.html", "Programación", "bi-clock", CategoryAppointments},
	{Appointments, "appointments.html", "Citas", "bi-calendar-plus", CategoryAppointments},

	{Payments, "payments.html", "Pagos", "bi-credit-card", CategoryDirect},
	{Announcements, "announces.html", "Anuncios", "bi-megaphone", CategoryDirect},
	{Reports, "reports.html", "Reportes", "bi-graph-up", CategoryDirect},
}

var groups = []Group{
	{Category: CategoryManagement, Name: "Gestión", Icon: "bi-gear"},
	{Category: CategoryServices, Name: "Servicios", Icon: "bi-scissors"},
	{Category: CategoryAppointments, Name: "Citas", Icon: "bi-calendar-event"},
}

// BuildMenu filters the static navigation table by the granted set.
// Groups without any granted entry are omitted; Home is always present.
func BuildMenu(granted Set) Menu {
	m := Menu{Home: home, Groups: []Group{}, Direct: []Entry{}}

	for _, g := range groups {
		g.Items = []Entry{}
		for _, e := range entries {
			if e.Category == g.Category && granted.Has(e.Capability) {
				g.Items = append(g.Items, e)
			}
		}
		if len(g.Items) > 0 {
			m.Groups = append(m.Groups, g)
		}
	}

	for _, e := range entries {
		if e.Category == CategoryDirect && granted.Has(e.Capability) {
			m.Direct = append(m.Direct, e)
		}
	}

	return m
}
