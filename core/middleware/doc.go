// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: API key validation protecting the whole API surface.
//   - rayid: assigns a unique request id (ray id) to every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Both are registered globally in the server startup; rayid runs first so
// the auth rejection itself carries a ray id.
package middleware
