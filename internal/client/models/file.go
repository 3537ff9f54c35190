package models

import "time"

// Permission controls who may download a file.
type Permission string

const (
	// PermissionPublic: anyone with the link may download.
	PermissionPublic Permission = "public"
	// PermissionPrivate: owner only.
	PermissionPrivate Permission = "private"
	// PermissionPassword: requires a shared secret at download time.
	PermissionPassword Permission = "password"
)

// FileRecord is a server-owned row from GET /api/files. The client never
// mutates it; after any successful action it re-fetches the list instead.
// DownloadLinkID is the only credential needed to address a download
// regardless of permission; password-protected files additionally require
// a password at fetch time.
type FileRecord struct {
	ID             int64      `json:"id"`
	Filename       string     `json:"filename"`
	Filesize       int64      `json:"filesize"`
	UploadTime     string     `json:"upload_time"`
	Permission     Permission `json:"permission"`
	DownloadLinkID string     `json:"download_link_id"`
}

// uploadTimeLayouts are the formats the server has been seen to emit:
// RFC 3339 and the bare SQLite timestamp.
var uploadTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// UploadedAt parses UploadTime. ok is false when the value matches none of
// the known layouts; callers then render the raw string.
func (f *FileRecord) UploadedAt() (t time.Time, ok bool) {
	for _, layout := range uploadTimeLayouts {
		if parsed, err := time.Parse(layout, f.UploadTime); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
