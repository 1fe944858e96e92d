package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberia-admin/internal/models"
	"github.com/BruksfildServices01/barberia-admin/internal/validators"
)

func clientRouter(store *memStore[models.Client, *models.Client]) *gin.Engine {
	r := gin.New()
	NewClientHandler(store).Register(r.Group("/clients"))
	return r
}

func TestResource_ListEmptyIsArray(t *testing.T) {
	r := clientRouter(newMemStore[models.Client, *models.Client]())

	w := perform(r, http.MethodGet, "/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decode(t, w)
	assert.True(t, env.Success)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestResource_CreateGetUpdateDelete(t *testing.T) {
	store := newMemStore[models.Client, *models.Client]()
	r := clientRouter(store)

	w := perform(r, http.MethodPost, "/clients", map[string]any{
		"name":  "Pedro",
		"email": "pedro@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Client
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))
	assert.Equal(t, uint(1), created.ID)
	assert.True(t, created.IsActive)

	w = perform(r, http.MethodGet, "/clients/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cliente obtenido exitosamente.", decode(t, w).Message)

	w = perform(r, http.MethodPut, "/clients/1", map[string]any{"name": "Pedro Pérez"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Client
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &updated))
	assert.Equal(t, "Pedro Pérez", updated.Name)

	w = perform(r, http.MethodDelete, "/clients/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{1}, store.deactivated)
}

func TestResource_Errors(t *testing.T) {
	r := clientRouter(newMemStore[models.Client, *models.Client]())

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"missing name", http.MethodPost, "/clients", map[string]any{"phone": "555"}, http.StatusBadRequest, "invalid_request"},
		{"bad email", http.MethodPost, "/clients", map[string]any{"name": "A", "email": "nope"}, http.StatusBadRequest, "invalid_request"},
		{"malformed json", http.MethodPost, "/clients", "{", http.StatusBadRequest, "invalid_request"},
		{"bad id", http.MethodGet, "/clients/abc", nil, http.StatusBadRequest, "invalid_id"},
		{"zero id", http.MethodGet, "/clients/0", nil, http.StatusBadRequest, "invalid_id"},
		{"unknown id", http.MethodGet, "/clients/42", nil, http.StatusNotFound, "not_found"},
		{"update unknown", http.MethodPut, "/clients/42", map[string]any{"name": "A"}, http.StatusNotFound, "not_found"},
		{"delete unknown", http.MethodDelete, "/clients/42", nil, http.StatusNotFound, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)

			env := decode(t, w)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.ErrorCode)
		})
	}
}

func TestClientSearch_FiltersByQuery(t *testing.T) {
	store := newMemStore[models.Client, *models.Client]()
	r := clientRouter(store)

	w := perform(r, http.MethodGet, "/clients/search?query=ped", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, store.lastQuery)
}

func TestScheduleHandler(t *testing.T) {
	store := newMemStore[models.WeeklySchedule, *models.WeeklySchedule]()
	r := gin.New()
	NewScheduleHandler(store, validators.Schedule).Register(r.Group("/schedules"))

	t.Run("rejects inverted window", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/schedules", map[string]any{
			"employee_id": 1, "day_of_week": 1, "start_time": "13:00", "end_time": "09:00",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_time_range", decode(t, w).ErrorCode)
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/schedules", map[string]any{
			"employee_id": 1, "day_of_week": 1, "start_time": "9:00", "end_time": "13:00",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_request", decode(t, w).ErrorCode)
	})

	t.Run("rejects day out of range", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/schedules", map[string]any{
			"employee_id": 1, "day_of_week": 8, "start_time": "09:00", "end_time": "13:00",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("creates", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/schedules", map[string]any{
			"employee_id": 1, "day_of_week": 7, "start_time": "09:00", "end_time": "13:00",
		})
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("by day filters on the weekday", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/schedules/by-day/7", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []any{7, true}, store.lastArgs)
	})

	t.Run("by day rejects zero", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/schedules/by-day/0", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_day_of_week", decode(t, w).ErrorCode)
	})
}

func TestAppointmentServices_ByAppointment(t *testing.T) {
	store := newMemStore[models.AppointmentService, *models.AppointmentService]()
	r := gin.New()
	NewAppointmentServiceHandler(store).Register(r.Group("/appointment-services"))

	for _, line := range []map[string]any{
		{"appointment_id": 5, "service_id": 1, "quantity": 1, "unit_price": 60},
		{"appointment_id": 6, "service_id": 2, "quantity": 1, "unit_price": 30},
		{"appointment_id": 5, "service_id": 3, "quantity": 2, "unit_price": 15},
	} {
		w := perform(r, http.MethodPost, "/appointment-services", line)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := perform(r, http.MethodGet, "/appointment-services/by-appointment/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{uint(5), true}, store.lastArgs)

	var lines []models.AppointmentService
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &lines))
	require.Len(t, lines, 2)
	assert.Equal(t, uint(1), lines[0].ServiceID)
	assert.Equal(t, uint(3), lines[1].ServiceID)

	w = perform(r, http.MethodGet, "/appointment-services/by-appointment/x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", decode(t, w).ErrorCode)
}
