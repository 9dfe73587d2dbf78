// Package config loads and merges the application configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults. Sources are merged in that order; the first source to
// supply a non-zero value for a field wins. The merged result is validated
// before the application starts.
package config
