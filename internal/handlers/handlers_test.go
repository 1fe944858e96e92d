package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberia-admin/internal/httperr"
	"github.com/BruksfildServices01/barberia-admin/internal/models"
	"github.com/BruksfildServices01/barberia-admin/internal/validators"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validators.RegisterBindings(); err != nil {
		panic(err)
	}
}

// memStore is an in-memory Store keyed by id.
type memStore[T any, PT interface {
	*T
	models.Entity
}] struct {
	mu          sync.Mutex
	rows        map[uint]T
	next        uint
	deactivated []uint
	lastQuery   any
	lastArgs    []any
	err         error
}

func newMemStore[T any, PT interface {
	*T
	models.Entity
}]() *memStore[T, PT] {
	return &memStore[T, PT]{rows: map[uint]T{}, next: 1}
}

func (s *memStore[T, PT]) ids() []uint {
	ids := make([]uint, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *memStore[T, PT]) List(_ context.Context, _ bool) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []T
	for _, id := range s.ids() {
		out = append(out, s.rows[id])
	}
	return out, nil
}

// Find evaluates conjunctions of "column = ?" against each row's JSON
// fields. Any other condition matches every row.
func (s *memStore[T, PT]) Find(_ context.Context, _ string, query any, args ...any) ([]T, error) {
	s.mu.Lock()
	s.lastQuery, s.lastArgs = query, args
	s.mu.Unlock()

	all, err := s.List(context.Background(), true)
	if err != nil {
		return nil, err
	}

	q, _ := query.(string)
	conds := strings.Split(q, " AND ")
	columns := make([]string, 0, len(conds))
	for _, cond := range conds {
		column, ok := strings.CutSuffix(cond, " = ?")
		if !ok || strings.ContainsAny(column, " ()") || len(conds) != len(args) {
			return all, nil
		}
		columns = append(columns, column)
	}

	var out []T
	for _, row := range all {
		raw, _ := json.Marshal(row)
		var fields map[string]any
		_ = json.Unmarshal(raw, &fields)

		match := true
		for i, column := range columns {
			if fmt.Sprint(fields[column]) != fmt.Sprint(args[i]) {
				match = false
				break
			}
		}
		if match {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *memStore[T, PT]) Get(_ context.Context, id uint) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	v, ok := s.rows[id]
	if !ok {
		return nil, httperr.ErrNotFound("not_found", "Registro no encontrado.")
	}
	return &v, nil
}

func (s *memStore[T, PT]) Create(_ context.Context, v PT) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	v.SetID(s.next)
	v.Activate()
	s.rows[s.next] = *v
	s.next++
	return nil
}

func (s *memStore[T, PT]) Update(_ context.Context, id uint, v PT) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return httperr.ErrNotFound("not_found", "Registro no encontrado.")
	}
	v.SetID(id)
	s.rows[id] = *v
	return nil
}

func (s *memStore[T, PT]) Deactivate(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return httperr.ErrNotFound("not_found", "Registro no encontrado.")
	}
	s.deactivated = append(s.deactivated, id)
	return nil
}

// ======================================================
// HTTP helpers
// ======================================================

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func perform(r http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}
