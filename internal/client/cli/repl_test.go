package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Upload(ctx context.Context) error {
	f.calls = append(f.calls, "upload")
	return nil
}
func (f *fakeExec) Download(ctx context.Context) error {
	f.calls = append(f.calls, "download")
	return nil
}
func (f *fakeExec) Permission(ctx context.Context) error {
	f.calls = append(f.calls, "perm")
	return nil
}
func (f *fakeExec) Delete(ctx context.Context) error {
	f.calls = append(f.calls, "rm")
	return nil
}
func (f *fakeExec) Account(ctx context.Context) error {
	f.calls = append(f.calls, "account")
	return nil
}
func (f *fakeExec) DeleteAccount(ctx context.Context) error {
	f.calls = append(f.calls, "rmaccount")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"list",
		"upload",
		"download",
		"perm",
		"rm",
		"account",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	out := &bytes.Buffer{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input), out)

	want := []string{"login", "list", "upload", "download", "perm", "rm", "account", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls[%d] = %q, want %q", i, exec.calls[i], want[i])
		}
	}
	if !strings.Contains(out.String(), "Bye!") {
		t.Fatalf("exit message missing: %s", out.String())
	}
}

func TestRunREPL_HelpFollowsLoginState(t *testing.T) {
	input := strings.NewReader("help\nlogin\nhelp\nexit\n")
	exec := &fakeExec{}
	out := &bytes.Buffer{}
	runREPL(context.Background(), exec, func() string { return "anonymous" }, bufio.NewScanner(input), out)

	got := out.String()
	if !strings.Contains(got, "Available commands: register, login, exit") {
		t.Fatalf("anonymous help missing:\n%s", got)
	}
	if !strings.Contains(got, "rmaccount") {
		t.Fatalf("logged-in help missing:\n%s", got)
	}
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	input := strings.NewReader("frobnicate\n\n")
	exec := &fakeExec{}
	out := &bytes.Buffer{}
	runREPL(context.Background(), exec, func() string { return "anonymous" }, bufio.NewScanner(input), out)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if !strings.Contains(out.String(), "Unknown command: frobnicate") {
		t.Fatalf("message missing: %s", out.String())
	}
}
