package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/filebox/internal/client/models"
	"github.com/dmitrijs2005/filebox/internal/common"
)

// List fetches and renders the user's uploaded files.
func (a *App) List(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	fmt.Fprintln(a.out, "Loading files...")

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()

	files, err := a.fileService.List(reqCtx)
	if err != nil {
		if a.handleAuthFailure(ctx, err) {
			return err
		}
		fmt.Fprintf(a.out, "Error: %s\n", serverMessage(err))
		fmt.Fprintln(a.out, "(no files to display)")
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(a.out, "No files uploaded yet.")
		return nil
	}

	fmt.Fprintf(a.out, "%4s  %-30s  %10s  %-19s  %-10s  %s\n",
		"ID", "FILENAME", "SIZE", "UPLOADED", "PERMISSION", "LINK")
	for _, f := range files {
		fmt.Fprintf(a.out, "%4d  %-30s  %10s  %-19s  %-10s  %s\n",
			f.ID, f.Filename, FormatFileSize(f.Filesize), uploadTimeText(f),
			PermissionText(f.Permission), f.DownloadLinkID)
	}
	return nil
}

// Upload prompts for a local path, streams the file up with a progress
// indicator and refreshes the list on success.
func (a *App) Upload(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	path, err := getSimpleText(a.reader, "Enter the path of the file to upload", a.out)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(a.out, "Select a file to upload.")
		return nil
	}

	res, err := a.fileService.Upload(ctx, path, func(percent int) {
		fmt.Fprintf(a.out, "\rUploading... %3d%%", percent)
	})
	fmt.Fprintln(a.out)
	if err != nil {
		if a.handleAuthFailure(ctx, err) {
			return err
		}
		fmt.Fprintf(a.out, "Upload failed: %s\n", serverMessage(err))
		return err
	}

	msg := res.Message
	if msg == "" {
		msg = "File uploaded."
	}
	fmt.Fprintln(a.out, msg)
	if res.DownloadLinkID != "" {
		fmt.Fprintf(a.out, "Share link: %s\n", a.fileService.DownloadURL(res.DownloadLinkID, ""))
	}
	return a.List(ctx)
}

// promptFileID asks for a file ID and resolves it to a record so commands
// can show the filename they are about to act on.
func (a *App) promptFileID(ctx context.Context, prompt string) (*models.FileRecord, error) {
	text, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Please enter a numeric file ID.")
		return nil, nil
	}

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()

	rec, err := a.fileService.Stat(reqCtx, id)
	if err != nil {
		if a.handleAuthFailure(ctx, err) {
			return nil, err
		}
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "No file with that ID.")
			return nil, nil
		}
		fmt.Fprintf(a.out, "Error: %s\n", serverMessage(err))
		return nil, err
	}
	return rec, nil
}

// Download saves a file to the download directory. Password-protected
// files go through the password prompt first; the entered password rides
// along on the download request.
func (a *App) Download(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	rec, err := a.promptFileID(ctx, "Enter the file ID to download")
	if rec == nil || err != nil {
		return err
	}

	password := ""
	if rec.Permission == models.PermissionPassword {
		a.passwordPrompt.Open(rec.DownloadLinkID, rec.Filename)
		defer a.passwordPrompt.Close()

		for a.passwordPrompt.IsOpen() {
			pw, err := getPassword(fmt.Sprintf("Enter the password for %q", rec.Filename), a.out)
			if err != nil {
				return err
			}
			if _, err := a.passwordPrompt.Submit(string(pw)); err != nil {
				fmt.Fprintln(a.out, "Please enter the password.")
				common.WipeByteArray(pw)
				continue
			}
			password = string(pw)
			common.WipeByteArray(pw)
			break
		}
	}

	fmt.Fprintln(a.out, "Downloading...")

	path, err := a.fileService.Download(ctx, rec.DownloadLinkID, password, rec.Filename)
	if err != nil {
		fmt.Fprintf(a.out, "Download failed: %s\n", serverMessage(err))
	} else {
		fmt.Fprintf(a.out, "File saved to: %s\n", path)
	}

	// The password prompt closes after the pause whatever the outcome.
	if a.passwordPrompt.IsOpen() {
		sleep(a.config.ModalCloseDelay)
		a.passwordPrompt.Close()
	}
	return err
}

// Permission edits a file's access level. The current permission is
// pre-selected; choosing password access always requires entering a new
// password. A successful change refreshes the list.
func (a *App) Permission(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	rec, err := a.promptFileID(ctx, "Enter the file ID to change")
	if rec == nil || err != nil {
		return err
	}

	a.permissionPrompt.Open(rec.ID, rec.Filename, rec.Permission)
	defer a.permissionPrompt.Close()

	fmt.Fprintf(a.out, "Current permission for %q: %s\n", rec.Filename, PermissionText(rec.Permission))

	for a.permissionPrompt.IsOpen() {
		choice, err := getSimpleText(a.reader,
			"New permission [public/private/password] (Enter keeps current)", a.out)
		if err != nil {
			return err
		}
		selected := models.Permission(choice)
		if choice == "" {
			selected = a.permissionPrompt.Current()
		}

		password := ""
		if a.permissionPrompt.PasswordFieldVisible(selected) {
			pw, err := getPassword("Enter a new file password", a.out)
			if err != nil {
				return err
			}
			password = string(pw)
			common.WipeByteArray(pw)
		}

		payload, err := a.permissionPrompt.Submit(selected, password)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			continue
		}

		reqCtx, cancel := a.requestContext(ctx)
		msg, err := a.fileService.SetPermission(reqCtx, payload.fileID, payload.permission, payload.password)
		cancel()
		if err != nil {
			if a.handleAuthFailure(ctx, err) {
				return err
			}
			fmt.Fprintf(a.out, "Error: %s\n", serverMessage(err))
			retry, cerr := getConfirmation(a.reader, "Try again?", a.out)
			if cerr != nil {
				return cerr
			}
			if !retry {
				return err
			}
			continue
		}

		if msg == "" {
			msg = "Permission updated."
		}
		fmt.Fprintln(a.out, msg)
		if err := a.List(ctx); err != nil {
			return err
		}
		sleep(a.config.ModalCloseDelay)
		a.permissionPrompt.Close()
	}
	return nil
}

// Delete removes a file after an explicit confirmation that names it.
func (a *App) Delete(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	rec, err := a.promptFileID(ctx, "Enter the file ID to delete")
	if rec == nil || err != nil {
		return err
	}

	ok, err := getConfirmation(a.reader,
		fmt.Sprintf("Delete %q? This cannot be undone.", rec.Filename), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return nil
	}

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()

	msg, err := a.fileService.Delete(reqCtx, rec.ID)
	if err != nil {
		if a.handleAuthFailure(ctx, err) {
			return err
		}
		fmt.Fprintf(a.out, "Error: %s\n", serverMessage(err))
		return err
	}

	if msg == "" {
		msg = "File deleted."
	}
	fmt.Fprintln(a.out, msg)
	return a.List(ctx)
}
