// Package version holds the build version, stamped at link time.
package version

// Version is "dev" for local builds; releases overwrite it with -ldflags.
var Version = "dev"
