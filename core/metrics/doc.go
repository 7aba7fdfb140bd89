// Package metrics collects per-request Prometheus metrics and exposes them.
//
// Metrics owns its own registry rather than the global default one, so the
// server and its tests never share state. The middleware increments
// <namespace>_http_requests_total and observes
// <namespace>_http_requests_duration_seconds, labelled by method, route
// pattern and status. The collectors are internally synchronized, so
// concurrent requests never lose increments.
//
// GET /metrics serves the registry through promhttp in the text exposition
// format (text/plain; version=0.0.4).
package metrics
