// Package version holds the sasjslint release version.
package version

// Version is the linter version. Release builds override it with
// -ldflags "-X github.com/cjdinger/lint-sasjs/version.Version=...".
var Version = "1.0.0"
