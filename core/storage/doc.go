// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that pk3 archives (maps and, optionally, the
// reference paks) can be read from AWS S3 or a self-hosted MinIO instance through
// s3://bucket/key locations.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - ListArchives: Lists the .pk3 keys under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	keys, err := storage.ListArchives(ctx, client, "maps", "q3df/")
package storage
