// Package app defines common runtime contracts shared by the gateway entrypoints
// (HTTP server, migration runner, admin commands).
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
