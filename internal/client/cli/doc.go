// Package cli provides the interactive FileBox command-line client.
//
// It wires configuration, the persisted session store, the API services
// and an interactive REPL. Typical flow: restore a saved session, prompt
// for credentials when there is none, and execute user commands.
//
// Key features:
//   - Register / Login / Logout with a session that survives restarts
//   - List uploaded files with size, upload time and permission
//   - Upload with a streaming progress indicator
//   - Download, with a password prompt for password-protected files
//   - Edit a file's permission (public, private, password)
//   - Delete files and the account itself, both behind confirmations
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
