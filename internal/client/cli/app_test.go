package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/dmitrijs2005/filebox/internal/client/api"
	"github.com/dmitrijs2005/filebox/internal/client/config"
	"github.com/dmitrijs2005/filebox/internal/client/models"
	"github.com/dmitrijs2005/filebox/internal/logging"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// fakeAuthService keeps the session in memory so guard and the login flow
// see consistent state.
type fakeAuthService struct {
	sess models.Session

	loginSess models.Session
	loginMsg  string
	loginErr  error
	loginUser string
	loginPass string

	regMsg  string
	regErr  error
	regUser string
	regPass string

	invalidated bool
	loggedOut   bool
}

func (f *fakeAuthService) Register(_ context.Context, username, password string) (string, error) {
	f.regUser, f.regPass = username, password
	return f.regMsg, f.regErr
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (models.Session, string, error) {
	f.loginUser, f.loginPass = username, password
	if f.loginErr != nil {
		return models.Session{}, "", f.loginErr
	}
	f.sess = f.loginSess
	return f.loginSess, f.loginMsg, nil
}

func (f *fakeAuthService) Restore(context.Context) (models.Session, error) { return f.sess, nil }
func (f *fakeAuthService) Logout(context.Context) error {
	f.loggedOut = true
	f.sess = models.Session{}
	return nil
}
func (f *fakeAuthService) Invalidate(context.Context) error {
	f.invalidated = true
	f.sess = models.Session{}
	return nil
}
func (f *fakeAuthService) Session(context.Context) (models.Session, error) { return f.sess, nil }

type fakeFileService struct {
	listRes   []models.FileRecord
	listErr   error
	listCalls int

	statRes *models.FileRecord
	statErr error
	statID  int64

	uploadRes  *api.UploadResult
	uploadErr  error
	uploadPath string

	permMsg      string
	permErr      error
	permID       int64
	permValue    models.Permission
	permPassword string
	permCalls    int

	delMsg   string
	delErr   error
	delID    int64
	delCalls int

	dlPath     string
	dlErr      error
	dlLinkID   string
	dlPassword string
	dlFilename string
	dlCalls    int
}

func (f *fakeFileService) List(context.Context) ([]models.FileRecord, error) {
	f.listCalls++
	return f.listRes, f.listErr
}

func (f *fakeFileService) Stat(_ context.Context, fileID int64) (*models.FileRecord, error) {
	f.statID = fileID
	return f.statRes, f.statErr
}

func (f *fakeFileService) Upload(_ context.Context, path string, onProgress api.ProgressFunc) (*api.UploadResult, error) {
	f.uploadPath = path
	if onProgress != nil {
		onProgress(0)
		onProgress(100)
	}
	return f.uploadRes, f.uploadErr
}

func (f *fakeFileService) SetPermission(_ context.Context, fileID int64, permission models.Permission, password string) (string, error) {
	f.permCalls++
	f.permID, f.permValue, f.permPassword = fileID, permission, password
	return f.permMsg, f.permErr
}

func (f *fakeFileService) Delete(_ context.Context, fileID int64) (string, error) {
	f.delCalls++
	f.delID = fileID
	return f.delMsg, f.delErr
}

func (f *fakeFileService) DownloadURL(linkID, password string) string {
	return "http://example.test/files/" + linkID
}

func (f *fakeFileService) Download(_ context.Context, linkID, password, filename string) (string, error) {
	f.dlCalls++
	f.dlLinkID, f.dlPassword, f.dlFilename = linkID, password, filename
	return f.dlPath, f.dlErr
}

type fakeAccountService struct {
	msg    string
	err    error
	called bool
}

func (f *fakeAccountService) DeleteAccount(context.Context) (string, error) {
	f.called = true
	return f.msg, f.err
}

// inputScript feeds canned answers into the input seams in order.
type inputScript struct {
	texts     []string
	passwords []string
	confirms  []bool
}

func stubInputs(t *testing.T, s *inputScript) {
	t.Helper()
	origST, origGP, origGC, origSleep := getSimpleText, getPassword, getConfirmation, sleep

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(s.texts) == 0 {
			t.Fatal("unexpected text prompt")
		}
		v := s.texts[0]
		s.texts = s.texts[1:]
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(s.passwords) == 0 {
			t.Fatal("unexpected password prompt")
		}
		v := s.passwords[0]
		s.passwords = s.passwords[1:]
		return []byte(v), nil
	}
	getConfirmation = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		if len(s.confirms) == 0 {
			t.Fatal("unexpected confirmation prompt")
		}
		v := s.confirms[0]
		s.confirms = s.confirms[1:]
		return v, nil
	}
	sleep = func(time.Duration) {}

	t.Cleanup(func() {
		getSimpleText, getPassword, getConfirmation, sleep = origST, origGP, origGC, origSleep
	})
}

func newTestApp(auth *fakeAuthService, files *fakeFileService, account *fakeAccountService) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	a := &App{
		config: &config.Config{
			RequestTimeout:  time.Second,
			NavigateDelay:   time.Millisecond,
			ModalCloseDelay: time.Millisecond,
		},
		log:            nopLogger{},
		authService:    auth,
		fileService:    files,
		accountService: account,
		session:        auth.sess,
		reader:         bufio.NewReader(&bytes.Buffer{}),
		out:            out,
	}
	return a, out
}
