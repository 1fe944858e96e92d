package access

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSet(t *testing.T) {
	s, err := ParseSet(" clients, users ,appointments,,")
	require.NoError(t, err)

	assert.True(t, s.Has(Clients))
	assert.True(t, s.Has(Users))
	assert.True(t, s.Has(Appointments))
	assert.False(t, s.Has(Roles))
	assert.Equal(t, "users,clients,appointments", s.String())
}

func TestParseSet_UnknownTag(t *testing.T) {
	_, err := ParseSet("clients,billing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "billing")
}

func TestSet_JSON(t *testing.T) {
	s := NewSet(Payments, Clients)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["clients","payments"]`, string(raw))

	var back Set
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, s, back)

	assert.Error(t, json.Unmarshal([]byte(`["nope"]`), &back))
}

func TestSet_ScanValue(t *testing.T) {
	var s Set
	require.NoError(t, s.Scan([]byte("roles,legacy-tag,schedules")))
	assert.Equal(t, NewSet(Roles, Schedules), s)

	v, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, "roles,schedules", v)

	require.NoError(t, s.Scan(nil))
	assert.Empty(t, s)

	assert.Error(t, s.Scan(42))
}

func TestBuildMenu(t *testing.T) {
	m := BuildMenu(NewSet(Appointments, Clients, Payments, Schedules))

	assert.Equal(t, "dashboard.html", m.Home.URL)

	require.Len(t, m.Groups, 2)
	assert.Equal(t, CategoryManagement, m.Groups[0].Category)
	require.Len(t, m.Groups[0].Items, 1)
	assert.Equal(t, Clients, m.Groups[0].Items[0].Capability)

	assert.Equal(t, CategoryAppointments, m.Groups[1].Category)
	require.Len(t, m.Groups[1].Items, 2)
	assert.Equal(t, Schedules, m.Groups[1].Items[0].Capability)
	assert.Equal(t, Appointments, m.Groups[1].Items[1].Capability)

	require.Len(t, m.Direct, 1)
	assert.Equal(t, Payments, m.Direct[0].Capability)
}

func TestBuildMenu_EmptySet(t *testing.T) {
	m := BuildMenu(nil)

	assert.Equal(t, "Inicio", m.Home.Text)
	assert.Empty(t, m.Groups)
	assert.Empty(t, m.Direct)
	assert.NotNil(t, m.Groups)
}
