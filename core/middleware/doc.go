// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: Implements API key validation to protect endpoints.
//   - RayID: Tags every incoming request with a Request ID (RayID), stored in the
//     context locals and echoed in the response headers for tracing.
package middleware
