// Package server runs the HTTPS listener in front of the feature routes.
//
// # Listener
//
// Listen binds the configured address and wraps it so every accepted
// connection is TLS-terminated with the shared, read-only *tls.Config. The
// handshake runs in the goroutine serving that connection, bounded by
// HandshakeTimeout; a failed handshake is logged and only closes that one
// connection.
//
// # Middleware Chain
//
// Middleware returns the global chain in the order it is applied:
//
//  1. rayid: request id
//  2. requestlog: access log
//  3. compress
//  4. secure.Headers: HSTS, nosniff, frame denial, no-referrer
//  5. secure.CORS
//  6. metrics
//
// followed by the feature routes, mounted by core/loader in registration order.
//
// # Ceilings
//
// Config exposes the per-connection limits: read (client request) timeout,
// idle keep-alive timeout, handshake timeout, shutdown (disconnect) timeout
// and the maximum number of concurrent connections.
package server
