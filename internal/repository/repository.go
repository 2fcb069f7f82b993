package repository

import (
	"context"

	"tool-rental-pos/internal/domain"
)

// ToolRepository is a read-only tool catalog
type ToolRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Tool, error)
	ListCodes(ctx context.Context) ([]string, error)
}

// ToolSource lists every rentable tool, for building catalog snapshots
type ToolSource interface {
	ListAll(ctx context.Context) ([]domain.Tool, error)
}
