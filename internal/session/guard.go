package session

import (
	"context"
	"errors"
	"strings"
)

// State is the outcome of checking a request's credentials.
type State int

const (
	Authenticated State = iota
	Missing
	Invalid
	Expired
	Revoked
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Missing:
		return "missing"
	case Expired:
		return "expired"
	case Revoked:
		return "revoked"
	default:
		return "invalid"
	}
}

type Result struct {
	State   State
	Session *Record
}

type Guard struct {
	issuer *Issuer
	store  Store
}

func NewGuard(issuer *Issuer, store Store) *Guard {
	return &Guard{issuer: issuer, store: store}
}

// Check resolves an Authorization header value. The error is only set when
// the session store itself failed; every credential problem is a State.
func (g *Guard) Check(ctx context.Context, authorization string) (Result, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return Result{State: Missing}, nil
	}

	scheme, raw, ok := strings.Cut(authorization, " ")
	raw = strings.TrimSpace(raw)
	if !ok || !strings.EqualFold(scheme, "Bearer") || raw == "" {
		return Result{State: Invalid}, nil
	}

	claims, err := g.issuer.Parse(raw)
	if errors.Is(err, errTokenExpired) {
		return Result{State: Expired}, nil
	}
	if err != nil {
		return Result{State: Invalid}, nil
	}

	rec, err := g.store.Get(ctx, claims.ID)
	if errors.Is(err, ErrNotFound) {
		return Result{State: Revoked}, nil
	}
	if err != nil {
		return Result{}, err
	}
	if rec.AuthUserID != claims.AuthUserID {
		return Result{State: Invalid}, nil
	}

	return Result{State: Authenticated, Session: rec}, nil
}
