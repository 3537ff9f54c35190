// Package config loads runtime settings for the filebox CLI.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, a .env file (if present), a JSON file given via
// -c/-config, and command-line flags.
package config
