package services

import (
	"context"

	"github.com/dmitrijs2005/filebox/internal/client/api"
	"github.com/dmitrijs2005/filebox/internal/client/models"
)

// FileService exposes the dashboard's file operations. It is a thin layer
// over the transport; authorization failures pass through unchanged so the
// caller can clear the session.
type FileService interface {
	List(ctx context.Context) ([]models.FileRecord, error)
	Stat(ctx context.Context, fileID int64) (*models.FileRecord, error)
	Upload(ctx context.Context, path string, onProgress api.ProgressFunc) (*api.UploadResult, error)
	SetPermission(ctx context.Context, fileID int64, permission models.Permission, password string) (string, error)
	Delete(ctx context.Context, fileID int64) (string, error)
	DownloadURL(linkID, password string) string
	Download(ctx context.Context, linkID, password, filename string) (string, error)
}

type fileService struct {
	client      Client
	downloadDir string
}

// NewFileService constructs a FileService saving downloads under
// downloadDir.
func NewFileService(client Client, downloadDir string) FileService {
	return &fileService{client: client, downloadDir: downloadDir}
}

func (f *fileService) List(ctx context.Context) ([]models.FileRecord, error) {
	return f.client.ListFiles(ctx)
}

func (f *fileService) Stat(ctx context.Context, fileID int64) (*models.FileRecord, error) {
	return f.client.StatFile(ctx, fileID)
}

func (f *fileService) Upload(ctx context.Context, path string, onProgress api.ProgressFunc) (*api.UploadResult, error) {
	return f.client.UploadFile(ctx, path, onProgress)
}

func (f *fileService) SetPermission(ctx context.Context, fileID int64, permission models.Permission, password string) (string, error) {
	return f.client.SetPermission(ctx, fileID, permission, password)
}

func (f *fileService) Delete(ctx context.Context, fileID int64) (string, error) {
	return f.client.DeleteFile(ctx, fileID)
}

func (f *fileService) DownloadURL(linkID, password string) string {
	return f.client.DownloadURL(linkID, password)
}

func (f *fileService) Download(ctx context.Context, linkID, password, filename string) (string, error) {
	return f.client.Download(ctx, linkID, password, f.downloadDir, filename)
}
