// Package static serves the catch-all file route.
//
// Files come either from a local directory (the default, ./static) or from an
// S3/MinIO bucket through core/storage. In both cases a path ending in "/"
// resolves to the configured index file and a missing file answers 404.
//
// # HTTP Endpoints
//
//   - GET /* : the file at the request path, relative to the configured root.
package static
