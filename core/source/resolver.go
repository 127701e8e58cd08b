package source

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"q3-demo-checker/core/storage"
)

// Resolver turns location strings into sources.
type Resolver struct {
	// HTTP is used by RemoteFetch sources.
	HTTP *http.Client
	// Fetch carries the user agent and size limit of downloads.
	Fetch Config
	// Storage backs s3:// locations. It may be nil.
	Storage storage.Client
	// AllowLocal permits plain filesystem paths.
	AllowLocal bool
}

// NewResolver creates a resolver with an HTTP client built from cfg.
func NewResolver(cfg Config, store storage.Client, allowLocal bool) *Resolver {
	return &Resolver{
		HTTP:       NewHTTPClient(cfg),
		Fetch:      cfg,
		Storage:    store,
		AllowLocal: allowLocal,
	}
}

// Resolve picks the source variant for location.
func (r *Resolver) Resolve(location string) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}

	lower := strings.ToLower(location)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		if _, err := url.ParseRequestURI(location); err != nil {
			return nil, fmt.Errorf("%w: url %q: %v", ErrInvalidLocation, location, err)
		}
		return RemoteFetch{
			URL:       location,
			Client:    r.HTTP,
			UserAgent: r.Fetch.UserAgent,
			MaxBytes:  r.Fetch.MaxBytes,
		}, nil

	case strings.HasPrefix(lower, "s3://"):
		if r.Storage == nil {
			return nil, ErrNoStorage
		}
		bucket, key, ok := strings.Cut(location[len("s3://"):], "/")
		if !ok || bucket == "" || key == "" {
			return nil, fmt.Errorf("%w: %q, want s3://bucket/key", ErrInvalidLocation, location)
		}
		return Object{Bucket: bucket, Key: key, Client: r.Storage}, nil

	default:
		if !r.AllowLocal {
			return nil, ErrLocalDenied
		}
		return LocalFile{Path: location}, nil
	}
}
