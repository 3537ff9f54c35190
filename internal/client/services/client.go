package services

import (
	"context"

	"github.com/dmitrijs2005/filebox/internal/client/api"
	"github.com/dmitrijs2005/filebox/internal/client/models"
)

// Client is the transport surface the services require. *api.Client
// satisfies it; tests substitute fakes.
type Client interface {
	SetToken(token string)
	ClearToken()

	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (*api.LoginResult, error)

	ListFiles(ctx context.Context) ([]models.FileRecord, error)
	StatFile(ctx context.Context, fileID int64) (*models.FileRecord, error)
	UploadFile(ctx context.Context, path string, onProgress api.ProgressFunc) (*api.UploadResult, error)
	SetPermission(ctx context.Context, fileID int64, permission models.Permission, password string) (string, error)
	DeleteFile(ctx context.Context, fileID int64) (string, error)

	DownloadURL(linkID, password string) string
	Download(ctx context.Context, linkID, password, destDir, filename string) (string, error)

	DeleteAccount(ctx context.Context) (string, error)
}
