// Package utils provides general-purpose helper utilities used across the
// manifest sync client: context keys, content hashing, HTTP response
// writing, HTTP client construction and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SourceIDCtxKey is the key under which the identifier of the source being
// synchronised is stored. The manifest adapter forwards it to the server as
// a request header.
var SourceIDCtxKey = contextKey("sourceID")

// WithSourceID returns a copy of ctx carrying sourceID.
func WithSourceID(ctx context.Context, sourceID string) context.Context {
	return context.WithValue(ctx, SourceIDCtxKey, sourceID)
}

// GetSourceIDFromContext retrieves the source identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true:  value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetSourceIDFromContext(ctx context.Context) (string, bool) {
	sourceID, ok := ctx.Value(SourceIDCtxKey).(string)
	return sourceID, ok && sourceID != ""
}
