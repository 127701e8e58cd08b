package archive

import "fmt"

// ReadError reports an archive that is not a valid pk3, or is truncated or corrupt.
type ReadError struct {
	// Archive is the name of the archive that failed.
	Archive string
	// Entry is set when a single entry could not be read.
	Entry string
	Err   error
}

func (e *ReadError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("archive %s: read %s: %v", e.Archive, e.Entry, e.Err)
	}
	return fmt.Sprintf("archive %s: %v", e.Archive, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
