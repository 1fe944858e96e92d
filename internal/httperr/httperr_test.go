package httperr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFromDB(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
		code string
	}{
		{"record not found", gorm.ErrRecordNotFound, KindNotFound, "employee_not_found"},
		{"wrapped not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), KindNotFound, "employee_not_found"},
		{"unique violation", &pgconn.PgError{Code: "23505"}, KindConflict, "duplicate_record"},
		{"exclusion violation", &pgconn.PgError{Code: "23P01"}, KindConflict, "time_conflict"},
		{"fk violation", &pgconn.PgError{Code: "23503"}, KindValidation, "invalid_reference"},
		{"deadline", context.DeadlineExceeded, KindTransient, "service_unavailable"},
		{"connection refused", errors.New("dial tcp: connection refused"), KindTransient, "service_unavailable"},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, KindInternal, "database_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromDB(tt.err, "employee_not_found")
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.True(t, Is(err, tt.kind, tt.code), "got %v", err)
		})
	}

	assert.NoError(t, FromDB(nil, "x"))
}

func TestFromDB_KeepsClassifiedErrors(t *testing.T) {
	original := ErrValidation("missing_date", "Fecha obligatoria.")
	assert.Same(t, original, FromDB(original, "x"))
}

func TestErrTransient_DoesNotDoubleWrap(t *testing.T) {
	first := ErrTransient(errors.New("boom"))
	assert.Same(t, first, ErrTransient(first))
	assert.Nil(t, ErrTransient(nil))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", ErrValidation("invalid_date", "Fecha inválida."), http.StatusBadRequest, "invalid_date"},
		{"not found", ErrNotFound("employee_not_found", "Empleado no encontrado."), http.StatusNotFound, "employee_not_found"},
		{"conflict", ErrConflict("time_conflict", "Conflicto de horario."), http.StatusConflict, "time_conflict"},
		{"transient", ErrTransient(errors.New("db down")), http.StatusServiceUnavailable, "service_unavailable"},
		{"business", ErrBusiness("invalid_state"), http.StatusUnprocessableEntity, "invalid_state"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Respond(c, tt.err)

			assert.Equal(t, tt.status, w.Code)

			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
