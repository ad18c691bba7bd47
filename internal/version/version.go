// Package version exposes the application version string.
package version

// Version is the application version. Overridable at build time via
// -ldflags "-X github.com/cryptotracker/backend/internal/version.Version=...".
var Version = "1.0.0"
