package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/filebox/internal/client/api"
	"github.com/dmitrijs2005/filebox/internal/client/config"
	"github.com/dmitrijs2005/filebox/internal/client/models"
	"github.com/dmitrijs2005/filebox/internal/client/services"
	"github.com/dmitrijs2005/filebox/internal/client/session"
	"github.com/dmitrijs2005/filebox/internal/common"
	"github.com/dmitrijs2005/filebox/internal/logging"

	_ "modernc.org/sqlite"
)

// sleep is a test seam for the pauses that follow navigation and modal
// close events. Tests replace it to avoid real delays.
var sleep = time.Sleep

type App struct {
	config         *config.Config
	log            logging.Logger
	authService    services.AuthService
	fileService    services.FileService
	accountService services.AccountService

	session models.Session
	reader  *bufio.Reader
	out     io.Writer

	passwordPrompt   passwordPrompt
	permissionPrompt permissionPrompt

	db *sql.DB
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	apiClient := api.NewClient(c.ServerBaseURL, &http.Client{})

	return &App{
		config:         c,
		log:            log,
		authService:    services.NewAuthService(apiClient, store),
		fileService:    services.NewFileService(apiClient, c.DownloadDir),
		accountService: services.NewAccountService(apiClient, store),
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
		db:             db,
	}, nil
}

// Run restores any saved session and enters the command loop.
func (a *App) Run(ctx context.Context) {
	sess, err := a.authService.Restore(ctx)
	if err != nil {
		a.log.Error(ctx, "error restoring session", "error", err)
	}
	a.session = sess
	if sess.IsAuthenticated() {
		fmt.Fprintf(a.out, "%s, welcome back.\n", sess.Username)
	}

	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, a.status, scanner, a.out)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if a.session.IsAuthenticated() {
		return fmt.Sprintf("%s, welcome", a.session.Username)
	}
	return "anonymous"
}

// requestContext bounds a single server call. Uploads and downloads manage
// their own lifetime and do not use it.
func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// guard re-reads the persisted session before any file or account command
// and refuses when no authenticated session exists. The store is
// authoritative; the in-memory copy is just a cache for the prompt.
func (a *App) guard(ctx context.Context) bool {
	sess, err := a.authService.Session(ctx)
	if err != nil {
		a.log.Error(ctx, "error reading session", "error", err)
		return false
	}
	if !sess.IsAuthenticated() {
		a.session = models.Session{}
		fmt.Fprintln(a.out, "Login required. Use the login command first.")
		return false
	}
	a.session = sess
	return true
}

// handleAuthFailure reacts to a rejected credential: the stored session is
// cleared and the user is sent back to the login prompt. Reports whether
// err was an authentication failure.
func (a *App) handleAuthFailure(ctx context.Context, err error) bool {
	if !errors.Is(err, common.ErrUnauthorized) {
		return false
	}
	fmt.Fprintln(a.out, "Session expired or invalid. Please log in again.")
	if cerr := a.authService.Invalidate(ctx); cerr != nil {
		a.log.Error(ctx, "error clearing session", "error", cerr)
	}
	a.session = models.Session{}
	sleep(a.config.NavigateDelay)
	return true
}

// serverMessage extracts the user-facing text from a failed call: the
// server's own message when one came back, the error text otherwise.
func serverMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
