package source

import (
	"bytes"
	"context"
	"io"
)

// Blob is an opened archive byte stream.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the total length in bytes.
	Size() int64
}

// Source supplies one archive.
type Source interface {
	// Name identifies the source in reports and errors.
	Name() string
	// Open returns the archive bytes. The caller must close the blob.
	Open(ctx context.Context) (Blob, error)
}

// memBlob serves bytes held in memory.
type memBlob struct {
	*bytes.Reader
}

func newMemBlob(data []byte) *memBlob {
	return &memBlob{Reader: bytes.NewReader(data)}
}

func (b *memBlob) Close() error {
	return nil
}

// Bytes is a source backed by data already in memory.
type Bytes struct {
	Label string
	Data  []byte
}

// Name returns the label.
func (b Bytes) Name() string {
	return b.Label
}

// Open returns a blob over the data.
func (b Bytes) Open(ctx context.Context) (Blob, error) {
	return newMemBlob(b.Data), nil
}
