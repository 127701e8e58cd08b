package compat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"q3-demo-checker/core/archive"
	"q3-demo-checker/core/deps"
	"q3-demo-checker/core/reconcile"
	"q3-demo-checker/core/source"
	"q3-demo-checker/core/storage"

	"go.uber.org/zap"
)

// ErrReferences marks failures to load the demo or full base archive.
var ErrReferences = errors.New("reference archives unavailable")

// Service runs compatibility checks.
type Service struct {
	maps    *source.Resolver
	refs    *source.Resolver
	cfg     Config
	storage storage.Config
	cache   *reconcile.Cache
	logger  *zap.Logger
}

// NewService creates a check service. Map locations go through resolver as is;
// reference archives come from configuration and may always be local paths.
func NewService(resolver *source.Resolver, cfg Config, store storage.Config, logger *zap.Logger) *Service {
	refs := *resolver
	refs.AllowLocal = true

	if cfg.Ignore.IgnorePaths == nil && cfg.Ignore.IgnoreTerms == nil {
		cfg.Ignore = deps.DefaultRules()
	}

	return &Service{
		maps:    resolver,
		refs:    &refs,
		cfg:     cfg,
		storage: store,
		cache:   reconcile.NewCache(time.Duration(cfg.CacheTTLSeconds) * time.Second),
		logger:  logger,
	}
}

// Check resolves location and checks the map archive found there.
func (s *Service) Check(ctx context.Context, location string) (*Report, error) {
	src, err := s.maps.Resolve(location)
	if err != nil {
		return nil, fmt.Errorf("resolve map location: %w", err)
	}
	return s.CheckSource(ctx, src)
}

// CheckSource checks the map archive supplied by src.
func (s *Service) CheckSource(ctx context.Context, src source.Source) (*Report, error) {
	start := time.Now()

	refs, err := s.References(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Opening map archive", zap.String("map", src.Name()))
	blob, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	a, err := archive.Open(src.Name(), blob, blob.Size())
	if err != nil {
		return nil, err
	}

	d, err := deps.Gather(a, s.cfg.Ignore)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name(), err)
	}

	result := reconcile.Classify(reconcile.Request{
		Required:   d.Required,
		Shipped:    a.Inventory(),
		References: *refs,
	})

	if len(result.Missing) > 0 {
		s.logger.Warn("Dependencies not found in any archive",
			zap.String("map", src.Name()),
			zap.Strings("missing", result.Missing),
		)
	}

	report := &Report{
		Map:          src.Name(),
		Verdict:      result.Verdict,
		Counts:       result.Counts(),
		Result:       result,
		Dependencies: d,
		References:   summarize(refs),
		Duration:     time.Since(start).Round(time.Millisecond).String(),
	}

	s.logger.Info("Map check completed",
		zap.String("map", report.Map),
		zap.String("verdict", string(report.Verdict)),
		zap.Int("required", result.Total()),
		zap.Int("full_only", len(result.FullOnly)),
		zap.Int("missing", len(result.Missing)),
	)
	return report, nil
}

// References returns the reference inventories, cached for the configured TTL.
func (s *Service) References(ctx context.Context) (*reconcile.References, error) {
	return s.cache.GetOrBuild(ctx, s.cfg.ReferenceKey(), s.loadReferences)
}

func (s *Service) loadReferences(ctx context.Context) (*reconcile.References, error) {
	demo, err := s.loadInventory(ctx, s.cfg.DemoBase)
	if err != nil {
		return nil, fmt.Errorf("%w: demo base: %w", ErrReferences, err)
	}
	full, err := s.loadInventory(ctx, s.cfg.FullBase)
	if err != nil {
		return nil, fmt.Errorf("%w: full base: %w", ErrReferences, err)
	}

	var (
		patches []archive.Inventory
		skipped []string
	)
	for _, location := range s.cfg.Patches {
		if strings.TrimSpace(location) == "" {
			continue
		}
		inv, err := s.loadInventory(ctx, location)
		var unavailable *source.UnavailableError
		if errors.As(err, &unavailable) {
			s.logger.Warn("Patch archive unavailable, skipping", zap.String("patch", location), zap.Error(err))
			skipped = append(skipped, location)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: patch %s: %w", ErrReferences, location, err)
		}
		patches = append(patches, inv)
	}

	refs := &reconcile.References{
		Demo:    demo,
		Patch:   reconcile.MergePatches(patches...),
		Full:    full,
		Skipped: skipped,
	}
	s.logger.Info("Reference archives loaded",
		zap.Int("demo", refs.Demo.Len()),
		zap.Int("patch", refs.Patch.Len()),
		zap.Int("full", refs.Full.Len()),
		zap.Int("patches_loaded", len(patches)),
		zap.Strings("patches_skipped", skipped),
	)
	return refs, nil
}

func (s *Service) loadInventory(ctx context.Context, location string) (archive.Inventory, error) {
	src, err := s.refs.Resolve(location)
	if err != nil {
		return nil, err
	}
	blob, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	return archive.ReadInventory(src.Name(), blob, blob.Size())
}

// ListMaps returns the map archives stored in the configured bucket.
func (s *Service) ListMaps(ctx context.Context) ([]string, error) {
	if s.maps.Storage == nil {
		return nil, source.ErrNoStorage
	}
	keys, err := storage.ListArchives(ctx, s.maps.Storage, s.storage.Bucket, s.storage.MapsPrefix)
	if err != nil {
		return nil, err
	}
	locations := make([]string, len(keys))
	for i, k := range keys {
		locations[i] = source.Object{Bucket: s.storage.Bucket, Key: k}.Name()
	}
	return locations, nil
}
