// Package session persists the client's authentication state: exactly two
// durable keys, the bearer token and the display username. Absent means
// logged out. The two keys are written and removed together; a store never
// exposes a partial session.
package session

import (
	"context"

	"github.com/dmitrijs2005/filebox/internal/client/models"
)

// Keys the session occupies in the underlying store. Fixed names, readable
// and writable only by this client.
const (
	tokenKey    = "auth_token"
	usernameKey = "username"
)

// Store is the durable session store.
//
// Contract:
//   - Get returns the zero Session unless BOTH keys are present.
//   - Set writes both keys atomically.
//   - Clear removes both keys atomically; clearing an empty store is a no-op.
//   - IsAuthenticated is Get().IsAuthenticated() without copying the token.
type Store interface {
	Get(ctx context.Context) (models.Session, error)
	Set(ctx context.Context, token, username string) error
	Clear(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)
}
