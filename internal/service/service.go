package service

import (
	"context"
	"time"

	"tool-rental-pos/internal/domain"
)

type CheckoutService interface {
	// Checkout prices a rental. It rejects out-of-range input and never returns a partial agreement.
	Checkout(ctx context.Context, tool *domain.Tool, checkoutDate time.Time, rentalDays, discountPercent int) (domain.RentalAgreement, error)
	// CheckoutRequest resolves the tool code through the catalog, then checks out.
	CheckoutRequest(ctx context.Context, req domain.CheckoutRequest) (domain.RentalAgreement, error)
}

type CatalogService interface {
	GetTool(ctx context.Context, code string) (*domain.Tool, error)
	ListToolCodes(ctx context.Context) ([]string, error)
	ListTools(ctx context.Context) ([]domain.Tool, error)
}
