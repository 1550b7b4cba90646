// Package config provides configuration loading, merging, and validation
// facilities for the manifest sync client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults (data directory, state database, intervals)
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file named by CONFIG or -c
//
// The merged result is validated before use: at least one source and the
// manifest server address are required, and the state database must live
// on disk so committed tokens survive restarts.
//
// The main entry point is [GetStructuredConfig].
package config
