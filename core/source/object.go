package source

import (
	"context"
	"io"

	"q3-demo-checker/core/storage"

	"github.com/minio/minio-go/v7"
)

// Object reads an archive from an S3/MinIO bucket.
type Object struct {
	Bucket string
	Key    string
	Client storage.Client
}

// Name returns the object as an s3:// location.
func (o Object) Name() string {
	return "s3://" + o.Bucket + "/" + o.Key
}

// Open downloads the object into memory.
func (o Object) Open(ctx context.Context) (Blob, error) {
	if o.Client == nil {
		return nil, &UnavailableError{Source: o.Name(), Err: ErrNoStorage}
	}
	rc, err := o.Client.GetObject(ctx, o.Bucket, o.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, &UnavailableError{Source: o.Name(), Err: err}
	}
	defer rc.Close()

	// minio reports a missing key on the first read, not on GetObject.
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &UnavailableError{Source: o.Name(), Err: err}
	}
	return newMemBlob(data), nil
}
