package server

import "context"

// Server defines the common lifecycle contract for the transport servers
// managed by this package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is done or a transport fails, then shuts every
	// transport down. A clean shutdown returns nil.
	Run(ctx context.Context) error
}
