// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client application runtime.
//
// It wires the background sync job, the optional control API server and
// the local stores into a single process lifecycle.
package client
