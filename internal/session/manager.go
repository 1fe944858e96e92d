package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberia-admin/internal/domain/access"
)

// Manager opens and closes sessions.
type Manager struct {
	issuer *Issuer
	store  Store
}

func NewManager(issuer *Issuer, store Store) *Manager {
	return &Manager{issuer: issuer, store: store}
}

type Opened struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	SessionID string    `json:"-"`
}

func (m *Manager) Open(
	ctx context.Context,
	authUserID uint,
	username string,
	roleID uint,
	caps access.Set,
) (*Opened, error) {

	id := uuid.NewString()

	token, exp, err := m.issuer.Issue(authUserID, roleID, id)
	if err != nil {
		return nil, err
	}

	rec := Record{
		ID:           id,
		AuthUserID:   authUserID,
		Username:     username,
		RoleID:       roleID,
		Capabilities: caps,
		CreatedAt:    time.Now(),
	}
	if err := m.store.Save(ctx, rec, m.issuer.TTL()); err != nil {
		return nil, err
	}

	return &Opened{Token: token, ExpiresAt: exp, SessionID: id}, nil
}

// Close revokes the session. Closing an unknown session is not an error.
func (m *Manager) Close(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}
