// Package common contains shared constants and sentinel errors used across
// filebox components.
package common

// AuthScheme is the Authorization header scheme expected by the server
// on authenticated requests.
const AuthScheme = "Bearer"
