// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package service holds the process plumbing for long-running blobkit
// services: an HTTP server with graceful shutdown ([HTTPServer]) and
// the standard JSON service logger ([NewLogger]).
//
// HTTPServer binds its listener before serving, closes Ready once
// connections are accepted, and drains in-flight requests when the
// context passed to Serve is cancelled. Callers supply the
// http.Handler; routing and request handling live in the service's
// own package (see lib/uploadservice).
package service
