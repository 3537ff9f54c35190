// Package services contains the application services of the filebox CLI.
// They sit between the interactive layer and the HTTP client: AuthService
// owns the persisted session lifecycle, FileService the file operations,
// AccountService self-deletion. All methods honor context cancellation.
package services
