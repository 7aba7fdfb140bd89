// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small read-only interface used by the
// static file feature when assets live in a bucket instead of on local disk.
// Both AWS S3 and self-hosted MinIO are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket (see CheckBucket).
//   - StatObject: Returns size, content type and modification time of an object.
//   - GetObject: Retrieves content as a stream.
//
// IsNotFound classifies S3 "NoSuchKey"/"NoSuchBucket" responses.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.CheckBucket(ctx, client, cfg.Storage.Bucket); err != nil {
//		return err
//	}
package storage
