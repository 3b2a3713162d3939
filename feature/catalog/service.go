package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Service exposes catalog reads and edits.
type Service struct {
	source    Source
	pageLimit int
	logger    *zap.Logger
}

// NewService creates a catalog service over source.
func NewService(source Source, pageLimit int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, pageLimit: pageLimit, logger: logger}
}

// Source returns the backing source components bind to.
func (s *Service) Source() Source {
	return s.source
}

// List returns one window of assets.
func (s *Service) List(ctx context.Context, req QueryRequest) ([]Asset, error) {
	assets := []Asset{}
	for a, err := range s.source.Fetch(ctx, req.Query(s.pageLimit)) {
		if err != nil {
			return nil, fmt.Errorf("failed to list assets: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, nil
}

// Rename changes an asset's name. Components showing it re-render that one entry.
func (s *Service) Rename(ctx context.Context, ref, name string) (Asset, error) {
	a, err := s.source.Rename(ctx, ref, name)
	if err != nil {
		return Asset{}, err
	}
	s.logger.Info("Asset renamed", zap.String("ref", ref), zap.String("name", name))
	return a, nil
}

// Delete removes an asset. Components rebuild and apply their preservation mode.
func (s *Service) Delete(ctx context.Context, ref string) error {
	if err := s.source.Delete(ctx, ref); err != nil {
		return err
	}
	s.logger.Info("Asset deleted", zap.String("ref", ref))
	return nil
}

// Reload tells every bound component to refetch.
func (s *Service) Reload(ctx context.Context) {
	s.source.Reload(ctx)
	s.logger.Info("Catalog reloaded", zap.String("source", s.source.Kind()))
}
