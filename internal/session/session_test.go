package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberia-admin/internal/domain/access"
)

type memoryStore struct {
	mu      sync.Mutex
	records map[string]Record
	getErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string]Record{}}
}

func (m *memoryStore) Save(_ context.Context, rec Record, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	rec, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func setup(t *testing.T) (*Issuer, *memoryStore, *Manager, *Guard) {
	t.Helper()
	issuer := NewIssuer("test-secret", time.Hour)
	store := newMemoryStore()
	return issuer, store, NewManager(issuer, store), NewGuard(issuer, store)
}

func TestGuard_Authenticated(t *testing.T) {
	_, store, mgr, guard := setup(t)

	opened, err := mgr.Open(context.Background(), 4, "ana", 2, access.NewSet(access.Appointments))
	require.NoError(t, err)
	assert.Len(t, store.records, 1)

	res, err := guard.Check(context.Background(), "Bearer "+opened.Token)
	require.NoError(t, err)

	assert.Equal(t, Authenticated, res.State)
	require.NotNil(t, res.Session)
	assert.Equal(t, uint(4), res.Session.AuthUserID)
	assert.Equal(t, "ana", res.Session.Username)
	assert.True(t, res.Session.Capabilities.Has(access.Appointments))
}

func TestGuard_States(t *testing.T) {
	issuer, _, mgr, guard := setup(t)

	opened, err := mgr.Open(context.Background(), 4, "ana", 2, access.NewSet())
	require.NoError(t, err)

	other := NewIssuer("another-secret", time.Hour)
	forged, _, err := other.Issue(4, 2, opened.SessionID)
	require.NoError(t, err)

	unknown, _, err := issuer.Issue(4, 2, "not-a-session")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   State
	}{
		{"no header", "", Missing},
		{"blank header", "   ", Missing},
		{"wrong scheme", "Basic " + opened.Token, Invalid},
		{"bearer only", "Bearer ", Invalid},
		{"garbage", "Bearer abc.def.ghi", Invalid},
		{"foreign signature", "Bearer " + forged, Invalid},
		{"no server session", "Bearer " + unknown, Revoked},
		{"lowercase scheme", "bearer " + opened.Token, Authenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := guard.Check(context.Background(), tt.header)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.State)
		})
	}
}

func TestGuard_Expired(t *testing.T) {
	issuer, _, mgr, guard := setup(t)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	opened, err := mgr.Open(context.Background(), 1, "luis", 1, access.NewSet())
	require.NoError(t, err)

	issuer.now = time.Now
	res, err := guard.Check(context.Background(), "Bearer "+opened.Token)
	require.NoError(t, err)
	assert.Equal(t, Expired, res.State)
}

func TestGuard_RevokedAfterClose(t *testing.T) {
	_, _, mgr, guard := setup(t)

	opened, err := mgr.Open(context.Background(), 1, "luis", 1, access.NewSet())
	require.NoError(t, err)
	require.NoError(t, mgr.Close(context.Background(), opened.SessionID))

	res, err := guard.Check(context.Background(), "Bearer "+opened.Token)
	require.NoError(t, err)
	assert.Equal(t, Revoked, res.State)
}

func TestGuard_StoreFailure(t *testing.T) {
	_, store, mgr, guard := setup(t)

	opened, err := mgr.Open(context.Background(), 1, "luis", 1, access.NewSet())
	require.NoError(t, err)

	store.getErr = errors.New("redis: connection refused")
	_, err = guard.Check(context.Background(), "Bearer "+opened.Token)
	assert.Error(t, err)
}

func TestIssuer_RejectsNoneAlgorithm(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	tok := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		AuthUserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "s",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	assert.Error(t, err)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "revoked", Revoked.String())
	assert.Equal(t, "authenticated", Authenticated.String())
}
