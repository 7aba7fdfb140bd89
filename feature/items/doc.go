// Package items serves the demo item catalogue.
//
// # HTTP Endpoints
//
//   - GET /api/v1/items : JSON array of {id, name}, always the same three items in id order.
package items
