package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/filebox/internal/client/models"
)

func TestAccount_ShowsUsername(t *testing.T) {
	auth := &fakeAuthService{sess: models.Session{Token: "T", Username: "alice"}}
	a, out := newTestApp(auth, &fakeFileService{}, &fakeAccountService{})
	stubInputs(t, &inputScript{})

	if err := a.Account(context.Background()); err != nil {
		t.Fatalf("Account err: %v", err)
	}
	if !strings.Contains(out.String(), "Logged in as: alice") {
		t.Fatalf("username missing: %s", out.String())
	}
}

func TestDeleteAccount_Declined(t *testing.T) {
	auth := &fakeAuthService{sess: models.Session{Token: "T", Username: "alice"}}
	account := &fakeAccountService{}
	a, out := newTestApp(auth, &fakeFileService{}, account)
	stubInputs(t, &inputScript{confirms: []bool{false}})

	if err := a.DeleteAccount(context.Background()); err != nil {
		t.Fatalf("DeleteAccount err: %v", err)
	}
	if account.called {
		t.Fatal("account must not be deleted without confirmation")
	}
	if !a.isLoggedIn() {
		t.Fatal("session must survive a declined confirmation")
	}
	if !strings.Contains(out.String(), "Account deletion cancelled.") {
		t.Fatalf("message missing: %s", out.String())
	}
}

func TestDeleteAccount_Confirmed(t *testing.T) {
	auth := &fakeAuthService{sess: models.Session{Token: "T", Username: "alice"}}
	account := &fakeAccountService{msg: "Account deleted."}
	a, out := newTestApp(auth, &fakeFileService{}, account)
	stubInputs(t, &inputScript{confirms: []bool{true}})

	if err := a.DeleteAccount(context.Background()); err != nil {
		t.Fatalf("DeleteAccount err: %v", err)
	}
	if !account.called {
		t.Fatal("account service not called")
	}
	if a.isLoggedIn() {
		t.Fatal("session must be gone")
	}
	if !strings.Contains(out.String(), "Account deleted.") {
		t.Fatalf("message missing: %s", out.String())
	}
}

func TestDeleteAccount_FailureKeepsSession(t *testing.T) {
	auth := &fakeAuthService{sess: models.Session{Token: "T", Username: "alice"}}
	account := &fakeAccountService{err: errors.New("deletion failed")}
	a, out := newTestApp(auth, &fakeFileService{}, account)
	stubInputs(t, &inputScript{confirms: []bool{true}})

	if err := a.DeleteAccount(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !a.isLoggedIn() {
		t.Fatal("session must survive a failed deletion")
	}
	if !strings.Contains(out.String(), "deletion failed") {
		t.Fatalf("message missing: %s", out.String())
	}
}
