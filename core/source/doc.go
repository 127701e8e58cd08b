// Package source supplies the raw bytes of pk3 archives.
//
// A Source is anything that can hand over an archive as a Blob (random access reader
// plus size). The checker never cares where the bytes come from; the variants are:
//
//   - LocalFile: a path on the local filesystem.
//   - RemoteFetch: an HTTP(S) download. HTML pages are scanned for the first .pk3 link.
//   - Object: an object in an S3/MinIO bucket, read through storage.Client.
//   - Bytes: data already in memory (uploads to the HTTP API).
//
// The Resolver turns a location string into the right variant:
//
//	http://host/map.pk3     -> RemoteFetch
//	s3://bucket/key.pk3     -> Object
//	baseq3/pak0.pk3         -> LocalFile
//
// # Errors
//
// A source that cannot deliver its bytes fails with *UnavailableError. Whether the
// failure is fatal is decided by the caller.
package source
