package services

import (
	"context"

	"github.com/dmitrijs2005/filebox/internal/client/session"
)

// AccountService handles account self-deletion: the one destructive
// operation that also tears the local session down.
type AccountService interface {
	DeleteAccount(ctx context.Context) (string, error)
}

type accountService struct {
	client Client
	store  session.Store
}

func NewAccountService(client Client, store session.Store) AccountService {
	return &accountService{client: client, store: store}
}

// DeleteAccount removes the account server-side, then clears the local
// session. A failed request leaves the session untouched so the user can
// retry.
func (a *accountService) DeleteAccount(ctx context.Context) (string, error) {
	msg, err := a.client.DeleteAccount(ctx)
	if err != nil {
		return "", err
	}
	a.client.ClearToken()
	if err := a.store.Clear(ctx); err != nil {
		return msg, err
	}
	return msg, nil
}
