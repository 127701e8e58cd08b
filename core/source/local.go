package source

import (
	"context"
	"os"
)

// LocalFile reads an archive from the filesystem.
type LocalFile struct {
	Path string
}

// Name returns the file path.
func (l LocalFile) Name() string {
	return l.Path
}

// Open opens the file for random access.
func (l LocalFile) Open(ctx context.Context) (Blob, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, &UnavailableError{Source: l.Path, Err: err}
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &UnavailableError{Source: l.Path, Err: err}
	}
	if info.IsDir() {
		f.Close()
		return nil, &UnavailableError{Source: l.Path, Err: errIsDir}
	}
	return &fileBlob{File: f, size: info.Size()}, nil
}

type fileBlob struct {
	*os.File
	size int64
}

func (b *fileBlob) Size() int64 {
	return b.size
}
