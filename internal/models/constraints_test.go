package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Required references block deletes of the referenced row.
func TestRequiredReferencesRestrictDelete(t *testing.T) {
	tests := []struct {
		model    any
		relation string
	}{
		{&Appointment{}, "Employee"},
		{&Appointment{}, "Client"},
		{&WeeklySchedule{}, "Employee"},
		{&Announcement{}, "Employee"},
		{&AuthUser{}, "Role"},
		{&AppointmentService{}, "Service"},
	}

	cache := &sync.Map{}
	for _, tt := range tests {
		s, err := schema.Parse(tt.model, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		t.Run(s.Name+"."+tt.relation, func(t *testing.T) {
			rel, ok := s.Relationships.Relations[tt.relation]
			require.True(t, ok)

			c := rel.ParseConstraint()
			require.NotNil(t, c)
			assert.Equal(t, "RESTRICT", c.OnDelete)
			assert.Equal(t, "CASCADE", c.OnUpdate)
		})
	}
}

func TestAppointmentServicesRelation(t *testing.T) {
	s, err := schema.Parse(&Appointment{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	rel, ok := s.Relationships.Relations["Services"]
	require.True(t, ok)
	assert.Equal(t, schema.HasMany, rel.Type)
	require.Len(t, rel.References, 1)
	assert.Equal(t, "appointment_id", rel.References[0].ForeignKey.DBName)
}
