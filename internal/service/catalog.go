package service

import (
	"context"
	"fmt"
	"strings"

	"tool-rental-pos/internal/domain"
	"tool-rental-pos/internal/repository"
)

type catalogService struct {
	toolRepo repository.ToolRepository
}

func NewCatalogService(toolRepo repository.ToolRepository) CatalogService {
	return &catalogService{toolRepo: toolRepo}
}

func (s *catalogService) GetTool(ctx context.Context, code string) (*domain.Tool, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: tool code is required", domain.ErrToolNotFound)
	}
	return s.toolRepo.GetByCode(ctx, code)
}

func (s *catalogService) ListToolCodes(ctx context.Context) ([]string, error) {
	return s.toolRepo.ListCodes(ctx)
}

func (s *catalogService) ListTools(ctx context.Context) ([]domain.Tool, error) {
	codes, err := s.toolRepo.ListCodes(ctx)
	if err != nil {
		return nil, err
	}
	tools := make([]domain.Tool, 0, len(codes))
	for _, code := range codes {
		t, err := s.toolRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("catalog listed %q but lookup failed: %w", code, err)
		}
		tools = append(tools, *t)
	}
	return tools, nil
}
