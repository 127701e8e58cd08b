// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines the
// configuration for it: the listen port, the API key guarding every route, whether
// API callers may name local archive paths, and the upload size limit.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the serve command to configure Fiber.
package server
