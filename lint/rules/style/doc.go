// Package style provides layout and hygiene rules for SAS source files:
// line length, whitespace, indentation, headers and embedded secrets.
package style
