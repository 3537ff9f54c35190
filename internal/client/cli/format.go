package cli

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/filebox/internal/client/models"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatFileSize renders a byte count with the largest unit that keeps the
// value under 1024, rounded to at most two decimals with trailing zeros
// trimmed. Zero is rendered as "0 Bytes".
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	if i == 0 {
		return strconv.FormatInt(bytes, 10) + " " + sizeUnits[0]
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + " " + sizeUnits[i]
}

// PermissionText maps a permission value to its display label. Unknown
// values pass through unchanged so new server-side permissions still
// render.
func PermissionText(p models.Permission) string {
	switch p {
	case models.PermissionPublic:
		return "Public"
	case models.PermissionPrivate:
		return "Private"
	case models.PermissionPassword:
		return "Password"
	default:
		return string(p)
	}
}

// uploadTimeText prefers the parsed timestamp in the local zone and falls
// back to the raw server string.
func uploadTimeText(f models.FileRecord) string {
	if t, ok := f.UploadedAt(); ok {
		return t.Local().Format("2006-01-02 15:04:05")
	}
	return f.UploadTime
}
