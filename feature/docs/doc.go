// Package docs mounts the Swagger UI for the HTTP API.
//
// The OpenAPI document lives in docs/swagger and is regenerated with
// `swag init -g cmd/start.go -o docs/swagger` after handler annotations change.
//
// # HTTP Endpoints
//
//   - GET /swagger/* : Swagger UI; /swagger/doc.json returns the raw document.
package docs
