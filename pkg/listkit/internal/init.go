// Package internal contains infrastructure shared by the listkit packages:
// logger setup, the active theme and key repeat timing.
// Types and functions in this package are not part of the public API.
package internal
