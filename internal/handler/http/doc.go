// Package http implements the local control API of the sync client.
//
// It exposes route wiring, request handlers, and middleware. Requests are
// traced and logged in this package before being delegated to the service
// layer: a sync pass can be triggered for a source, its status inspected,
// and the build version read.
package http
