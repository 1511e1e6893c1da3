// Package impl contains the usecase implementations, wired by fx.
package impl

import (
	"context"
	"log/slog"

	domainerrors "storemgr/internal/domain/errors"
	"storemgr/internal/domain/repository"
	"storemgr/internal/domain/schema"
	"storemgr/internal/infra/cache"
	"storemgr/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	tableRepo   repository.TableRepository
	reportCache cache.ReportCache
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TableRepo   repository.TableRepository
	ReportCache cache.ReportCache
	Logger      *slog.Logger
}

// NewCatalogService creates the generic insert/list usecase.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		tableRepo:   params.TableRepo,
		reportCache: params.ReportCache,
		logger:      params.Logger,
	}
}

// Insert validates the body against the entity's descriptor and writes
// one row. A successful write invalidates every cached report.
func (s *catalogService) Insert(ctx context.Context, entityName string, body map[string]any) (string, error) {
	desc, ok := schema.Tables[entityName]
	if !ok {
		return "", domainerrors.ErrNotFound
	}

	if err := desc.ValidateInsert(body); err != nil {
		return "", err
	}

	if err := s.tableRepo.Insert(ctx, desc, body); err != nil {
		return "", err
	}

	if err := s.reportCache.Flush(ctx); err != nil {
		// The write committed; a stale cache entry only lives until its TTL.
		s.logger.Warn("failed to flush report cache after insert",
			slog.String("entity", desc.Entity), slog.Any("error", err))
	}

	return desc.Entity, nil
}

// List dumps the entity's table in its natural key order.
func (s *catalogService) List(ctx context.Context, entityName string) (*usecase.TableDump, error) {
	desc, ok := schema.Tables[entityName]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}

	records, err := s.tableRepo.List(ctx, desc)
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []map[string]any{}
	}

	return &usecase.TableDump{
		NumRecords: len(records),
		Records:    records,
	}, nil
}
