// Package server runs the local control API of the sync client.
//
// The server starts listening in Run and shuts down gracefully once the
// context passed to Run is done.
package server
