// Package server runs the gateway's transports.
//
// NewServer binds the HTTP listener (chi router from the handler package) and
// the optional gRPC listener (health service) up front. Server.Run serves them
// together with the storage health worker and shuts all of them down when the
// context ends or one of them fails; RunServer does the same driven by
// SIGTERM, SIGINT and SIGQUIT.
package server
