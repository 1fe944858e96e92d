package access

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Capability is a tag granting access to one section of the admin app.
type Capability string

const (
	Users               Capability = "users"
	Roles               Capability = "roles"
	Employees           Capability = "employees"
	Clients             Capability = "clients"
	Auth                Capability = "auth"
	Services            Capability = "services"
	AppointmentServices Capability = "appointments-services"
	Schedules           Capability = "schedules"
	Appointments        Capability = "appointments"
	Payments            Capability = "payments"
	Announcements       Capability = "announces"
	Reports             Capability = "reports"
)

// All lists every capability in menu order.
var All = []Capability{
	Users, Roles, Employees, Clients, Auth,
	Services, AppointmentServices,
	Schedules, Appointments,
	Payments, Announcements, Reports,
}

func (c Capability) Valid() bool {
	return slices.Contains(All, c)
}

// Set is the capability set granted to a role.
// It is stored as a comma separated text column and travels as a JSON array.
type Set map[Capability]struct{}

func NewSet(caps ...Capability) Set {
	s := make(Set, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// ParseSet parses "users,roles,clients". Unknown tags are an error.
func ParseSet(raw string) (Set, error) {
	s := Set{}
	var unknown []string
	for _, part := range strings.Split(raw, ",") {
		tag := Capability(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		if !tag.Valid() {
			unknown = append(unknown, string(tag))
			continue
		}
		s[tag] = struct{}{}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown capabilities: %s", strings.Join(unknown, ", "))
	}
	return s, nil
}

func (s Set) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// List returns the members in menu order.
func (s Set) List() []Capability {
	out := make([]Capability, 0, len(s))
	for _, c := range All {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s Set) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s.List() {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ",")
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var tags []Capability
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	out := Set{}
	for _, t := range tags {
		if !t.Valid() {
			return fmt.Errorf("unknown capability %q", t)
		}
		out[t] = struct{}{}
	}
	*s = out
	return nil
}

func (s Set) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan reads the stored column. Tags no longer known to the application are
// dropped rather than failing the whole row.
func (s *Set) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*s = Set{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("access.Set: unsupported type %T", src)
	}

	out := Set{}
	for _, part := range strings.Split(raw, ",") {
		tag := Capability(strings.TrimSpace(part))
		if tag.Valid() {
			out[tag] = struct{}{}
		}
	}
	*s = out
	return nil
}
