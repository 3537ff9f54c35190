package cli

import (
	"errors"

	"github.com/dmitrijs2005/filebox/internal/client/models"
)

// In-modal validation failures. They keep the prompt open; nothing is sent.
var (
	errPasswordRequired    = errors.New("please enter the password")
	errNewPasswordRequired = errors.New("a new password is required for 'password' permission")
	errUnknownPermission   = errors.New("permission must be public, private or password")
)

// pendingDownload exists only while the password prompt is open.
type pendingDownload struct {
	linkID   string
	filename string
}

// passwordPrompt collects the download password for a password-protected
// file: Closed -> Open(pendingDownload) -> Closed. Whoever opens it owns
// it; closing always discards the pending state.
type passwordPrompt struct {
	pending *pendingDownload
}

func (p *passwordPrompt) Open(linkID, filename string) {
	p.pending = &pendingDownload{linkID: linkID, filename: filename}
}

func (p *passwordPrompt) IsOpen() bool {
	return p.pending != nil
}

// Submit validates the entered password and hands back the pending
// download it applies to. An empty password is an in-modal validation
// failure; the prompt stays open.
func (p *passwordPrompt) Submit(password string) (pendingDownload, error) {
	if p.pending == nil {
		return pendingDownload{}, errors.New("no download pending")
	}
	if password == "" {
		return pendingDownload{}, errPasswordRequired
	}
	return *p.pending, nil
}

// Close discards the pending download with no side effects.
func (p *passwordPrompt) Close() {
	p.pending = nil
}

// pendingPermissionEdit exists only while the permission prompt is open.
type pendingPermissionEdit struct {
	fileID   int64
	filename string
	current  models.Permission
}

// permissionPayload is what a successful submit produces: the new
// permission, plus a password only when the permission is
// password-protected.
type permissionPayload struct {
	fileID     int64
	permission models.Permission
	password   string
}

// permissionPrompt edits a file's permission: Closed ->
// Open(pendingPermissionEdit) -> Closed. The current permission is
// pre-selected; the prompt never reuses or reveals the file's existing
// password.
type permissionPrompt struct {
	pending *pendingPermissionEdit
}

func (p *permissionPrompt) Open(fileID int64, filename string, current models.Permission) {
	p.pending = &pendingPermissionEdit{fileID: fileID, filename: filename, current: current}
}

func (p *permissionPrompt) IsOpen() bool {
	return p.pending != nil
}

func (p *permissionPrompt) Current() models.Permission {
	if p.pending == nil {
		return ""
	}
	return p.pending.current
}

// PasswordFieldVisible reports whether the password input applies to the
// given selection. It tracks the selection live, independent of
// submission.
func (p *permissionPrompt) PasswordFieldVisible(selected models.Permission) bool {
	return selected == models.PermissionPassword
}

// Submit validates the selection and builds the request payload. Selecting
// password permission with an empty password is an in-modal validation
// failure; the prompt stays open. The password is included in the payload
// only for password permission.
func (p *permissionPrompt) Submit(selected models.Permission, password string) (permissionPayload, error) {
	if p.pending == nil {
		return permissionPayload{}, errors.New("no permission edit pending")
	}
	switch selected {
	case models.PermissionPublic, models.PermissionPrivate, models.PermissionPassword:
	default:
		return permissionPayload{}, errUnknownPermission
	}
	if selected == models.PermissionPassword && password == "" {
		return permissionPayload{}, errNewPasswordRequired
	}

	payload := permissionPayload{fileID: p.pending.fileID, permission: selected}
	if selected == models.PermissionPassword {
		payload.password = password
	}
	return payload, nil
}

// Close discards any unsaved edits.
func (p *permissionPrompt) Close() {
	p.pending = nil
}
