package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filebox/internal/client/models"
	"github.com/dmitrijs2005/filebox/internal/client/session"
)

// ErrNoToken is returned by Login when the server reports success but
// omits the token. The session is not established in that case; callers
// warn and stay where they are instead of proceeding half-logged-in.
var ErrNoToken = errors.New("login succeeded but no token was returned")

// AuthService owns the persisted session lifecycle.
//
// Contract:
//   - Register: create the account server-side; no session change.
//   - Login: authenticate, persist the session, install the bearer token.
//   - Restore: re-install the token from a session persisted by an earlier
//     run, if any.
//   - Logout / Invalidate: drop the session everywhere. Invalidate is the
//     reaction to an authorization failure; both clear token and username
//     together.
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (models.Session, string, error)
	Restore(ctx context.Context) (models.Session, error)
	Logout(ctx context.Context) error
	Invalidate(ctx context.Context) error
	Session(ctx context.Context) (models.Session, error)
}

type authService struct {
	client Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Register(ctx context.Context, username, password string) (string, error) {
	return a.client.Register(ctx, username, password)
}

// Login authenticates and, on a complete success, persists the session and
// installs the token on the transport. The server-returned username is
// canonical; the client-entered one (as typed) is kept only when the
// server omits the field. A 2xx response without a token establishes
// nothing and returns ErrNoToken.
func (a *authService) Login(ctx context.Context, username, password string) (models.Session, string, error) {
	res, err := a.client.Login(ctx, username, password)
	if err != nil {
		return models.Session{}, "", err
	}
	if res.Token == "" {
		return models.Session{}, res.Message, ErrNoToken
	}

	canonical := res.Username
	if canonical == "" {
		canonical = username
	}

	if err := a.store.Set(ctx, res.Token, canonical); err != nil {
		return models.Session{}, "", fmt.Errorf("persist session: %w", err)
	}
	a.client.SetToken(res.Token)

	return models.Session{Token: res.Token, Username: canonical}, res.Message, nil
}

func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	sess, err := a.store.Get(ctx)
	if err != nil {
		return models.Session{}, err
	}
	if sess.IsAuthenticated() {
		a.client.SetToken(sess.Token)
	}
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.ClearToken()
	return a.store.Clear(ctx)
}

// Invalidate drops the session after the server rejected the token. Same
// effect as Logout; the separate name keeps call sites readable.
func (a *authService) Invalidate(ctx context.Context) error {
	return a.Logout(ctx)
}

func (a *authService) Session(ctx context.Context) (models.Session, error) {
	return a.store.Get(ctx)
}
