package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/filebox/internal/common"
)

// ProgressFunc receives upload progress as a whole percentage in [0,100].
// Reported values are monotonically non-decreasing, driven by bytes sent
// over bytes total. The callback runs on the uploading goroutine and must
// not block.
type ProgressFunc func(percent int)

// UploadResult is the parsed 201 body of POST /api/upload.
type UploadResult struct {
	Message        string `json:"message"`
	FileID         int64  `json:"file_id"`
	Filename       string `json:"filename"`
	FilesizeBytes  int64  `json:"filesize_bytes"`
	DownloadLinkID string `json:"download_link_id"`
}

// progressReader counts bytes flowing out of the wrapped reader and reports
// whole-percent changes. Percentages never decrease and never exceed 100.
type progressReader struct {
	r        io.Reader
	total    int64
	read     int64
	lastPct  int
	onChange ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.onChange != nil && p.total > 0 {
		p.read += int64(n)
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct > p.lastPct {
			p.lastPct = pct
			p.onChange(pct)
		}
	}
	return n, err
}

// UploadFile streams the file at path to the server as the multipart form
// field "file". onProgress (optional) observes the transfer; exactly one
// terminal outcome is returned per call: the parsed result or an error.
//
// A 413 response resolves to the fixed file-too-large APIError without any
// body parsing.
func (c *Client) UploadFile(ctx context.Context, path string, onProgress ProgressFunc) (*UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	if onProgress != nil {
		onProgress(0)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(path))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		src := &progressReader{r: f, total: info.Size(), onChange: onProgress}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/api/upload", pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp)
	}

	var res UploadResult
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	// Non-JSON success bodies are tolerated; the zero result stands in.
	_ = json.Unmarshal(body, &res)
	return &res, nil
}
