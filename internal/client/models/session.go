// Package models defines the client-side data types: the persisted session
// and the server-owned file records the dashboard renders.
package models

// Session is the persisted authentication state. The zero value means
// logged out. Token and Username are only ever set and cleared together;
// no partial session is a valid state.
type Session struct {
	Token    string
	Username string
}

// IsAuthenticated reports whether both parts of the session are present.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.Username != ""
}
