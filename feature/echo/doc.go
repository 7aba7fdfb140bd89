// Package echo implements the echo WebSocket endpoint.
//
// Every connection runs its own Session: a plain loop reading frames in
// arrival order and writing the reply for each one. Sessions share nothing.
//
//   - Text frames are answered with "Echo: " followed by the text.
//   - Binary frames are sent back unchanged.
//   - Pings are answered with a pong carrying the same payload.
//   - A close frame is answered with a close frame carrying the same code
//     and reason, then the session ends.
//
// # HTTP Endpoints
//
//   - GET /ws : WebSocket upgrade; plain requests get 426 Upgrade Required.
package echo
