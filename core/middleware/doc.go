// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: Writes one structured access log line per request.
//   - Secure: Security response headers (HSTS, nosniff, frame denial,
//     no-referrer) and the permissive CORS policy.
//
// The server registers them in a fixed order, ahead of compression, metrics
// and the feature routes.
package middleware
