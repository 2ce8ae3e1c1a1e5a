// Package app defines the runtime contract shared by cmd/* entrypoints.
//
// The API server implements Runner so binaries can start it without
// depending on its concrete wiring.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
