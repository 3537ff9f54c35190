package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/filebox/internal/client/models"
	"github.com/dmitrijs2005/filebox/internal/common"
)

// Client talks to the filebox backend over HTTP. The access token is
// attached as a bearer header on authenticated operations; callers are
// responsible for not invoking those while logged out.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

// NewClient constructs a Client for the given base URL ("http://host:port").
// A nil httpClient falls back to a default client; per-call deadlines come
// from the caller's context.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// SetToken installs the bearer token used by authenticated operations.
func (c *Client) SetToken(token string) {
	c.accessToken = token
}

// ClearToken drops the bearer token, returning the client to the anonymous
// state.
func (c *Client) ClearToken() {
	c.accessToken = ""
}

// newRequest builds a request against the backend, attaching the bearer
// header when a token is installed.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", common.AuthScheme+" "+c.accessToken)
	}
	return req, nil
}

// doJSON executes req and decodes a 2xx JSON body into out. Decoding is
// skipped when out is nil, or when the body is empty or not JSON, since
// some operations return an optional body. Non-2xx responses become
// *APIError; transport failures wrap common.ErrUnavailable.
func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}
	if out == nil {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(body) == 0 {
		return nil
	}
	// A success response with a non-JSON body is tolerated rather than
	// failed; the caller keeps whatever defaults out already holds.
	_ = json.Unmarshal(body, out)
	return nil
}

// postJSON marshals payload and issues a POST with a JSON content type.
func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, out)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account. Returns the server's message.
func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	var mb messageBody
	err := c.postJSON(ctx, "/api/auth/register", credentialsRequest{
		Username: username,
		Password: password,
	}, &mb)
	if err != nil {
		return "", err
	}
	return mb.Message, nil
}

// LoginResult is the parsed success body of POST /api/auth/login. Token may
// be empty even on 2xx; callers must treat that as a partial failure and
// not establish a session.
type LoginResult struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login authenticates and returns the raw result. It does not install the
// token; the caller decides whether the result is acceptable first.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var res LoginResult
	err := c.postJSON(ctx, "/api/auth/login", credentialsRequest{
		Username: username,
		Password: password,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

type listFilesResponse struct {
	Files []models.FileRecord `json:"files"`
	Count int                 `json:"count"`
}

// ListFiles fetches the caller's files in server-provided order.
func (c *Client) ListFiles(ctx context.Context) ([]models.FileRecord, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/files", nil)
	if err != nil {
		return nil, err
	}
	var res listFilesResponse
	if err := c.doJSON(req, &res); err != nil {
		return nil, err
	}
	return res.Files, nil
}

// StatFile fetches metadata for a single file.
func (c *Client) StatFile(ctx context.Context, fileID int64) (*models.FileRecord, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/files/%d", fileID), nil)
	if err != nil {
		return nil, err
	}
	var rec models.FileRecord
	if err := c.doJSON(req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

type permissionRequest struct {
	Permission models.Permission `json:"permission"`
	Password   string            `json:"password,omitempty"`
}

// SetPermission changes a file's permission. The password travels only when
// the new permission is password-protected; it is never echoed back.
func (c *Client) SetPermission(ctx context.Context, fileID int64, permission models.Permission, password string) (string, error) {
	payload := permissionRequest{Permission: permission}
	if permission == models.PermissionPassword {
		payload.Password = password
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/api/files/%d/permission", fileID), bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var mb messageBody
	if err := c.doJSON(req, &mb); err != nil {
		return "", err
	}
	return mb.Message, nil
}

// DeleteFile removes a file. The success message is optional server-side.
func (c *Client) DeleteFile(ctx context.Context, fileID int64) (string, error) {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/files/%d", fileID), nil)
	if err != nil {
		return "", err
	}
	var mb messageBody
	if err := c.doJSON(req, &mb); err != nil {
		return "", err
	}
	return mb.Message, nil
}

// DeleteAccount removes the authenticated user and all of their files.
func (c *Client) DeleteAccount(ctx context.Context) (string, error) {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/auth/user", nil)
	if err != nil {
		return "", err
	}
	var mb messageBody
	if err := c.doJSON(req, &mb); err != nil {
		return "", err
	}
	return mb.Message, nil
}
