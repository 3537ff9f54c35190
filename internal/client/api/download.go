package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/filebox/internal/common"
	"github.com/google/uuid"
)

// DownloadURL builds the address of a file's download endpoint. For
// password-protected files the password rides as a plaintext query
// parameter, per the server contract. The built URL must never be logged.
func (c *Client) DownloadURL(linkID, password string) string {
	u := c.baseURL + "/api/download/" + url.PathEscape(linkID)
	if password != "" {
		q := url.Values{}
		q.Set("password", password)
		u += "?" + q.Encode()
	}
	return u
}

// Download fetches a file by link id and saves it under destDir, returning
// the final path. The stream goes through a uuid-suffixed temp file that is
// renamed into place only on success, so a broken transfer never leaves a
// half-written file under the target name.
//
// The endpoint is unauthenticated; no bearer header is sent. filename is
// the name to save under; when empty, the server's Content-Disposition is
// consulted, then the link id.
func (c *Client) Download(ctx context.Context, linkID, password, destDir, filename string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.DownloadURL(linkID, password), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errorFromResponse(resp)
	}

	if filename == "" {
		filename = filenameFromDisposition(resp.Header.Get("Content-Disposition"))
	}
	if filename == "" {
		filename = linkID
	}
	// Strip any path components a hostile header could smuggle in.
	filename = filepath.Base(filename)

	if err := os.MkdirAll(destDir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", destDir, err)
	}

	tmpPath := filepath.Join(destDir, fmt.Sprintf(".%s.%s.part", filename, uuid.NewString()))
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("save download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	finalPath := filepath.Join(destDir, filename)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("finalize download: %w", err)
	}
	return finalPath, nil
}

func filenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
