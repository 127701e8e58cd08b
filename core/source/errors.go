package source

import (
	"errors"
	"fmt"
)

// UnavailableError reports that a source could not supply its archive: a missing file,
// a failed download, a non-success HTTP response or a missing object.
type UnavailableError struct {
	// Source is the name of the source that failed.
	Source string
	// StatusCode is the HTTP status for remote fetches, zero otherwise.
	StatusCode int
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("source %s unavailable: HTTP %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

var (
	// ErrEmptyLocation is returned when no location was given.
	ErrEmptyLocation = errors.New("empty archive location")
	// ErrInvalidLocation is returned for malformed URLs and object locations.
	ErrInvalidLocation = errors.New("invalid archive location")
	// ErrLocalDenied is returned when local paths are disabled for the resolver.
	ErrLocalDenied = errors.New("local archive paths are not allowed")
	// ErrNoStorage is returned for s3:// locations when no storage client is configured.
	ErrNoStorage = errors.New("no storage client configured")
	// ErrTooLarge is returned when a download exceeds the configured size limit.
	ErrTooLarge = errors.New("archive exceeds size limit")
	// ErrNoArchiveLink is returned when an HTML page links to no .pk3 file.
	ErrNoArchiveLink = errors.New("page has no .pk3 link")

	errIsDir = errors.New("is a directory")
)
