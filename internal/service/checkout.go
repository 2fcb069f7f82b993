package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"

	"tool-rental-pos/internal/domain"
	"tool-rental-pos/internal/logger"
	"tool-rental-pos/internal/utils"
	"tool-rental-pos/internal/validation"
)

type checkoutService struct {
	catalog  CatalogService
	validate *validatorv10.Validate
	log      *slog.Logger
}

func NewCheckoutService(catalog CatalogService, validate *validatorv10.Validate) CheckoutService {
	return &checkoutService{
		catalog:  catalog,
		validate: validate,
		log:      logger.WithService("checkout"),
	}
}

func (s *checkoutService) CheckoutRequest(ctx context.Context, req domain.CheckoutRequest) (domain.RentalAgreement, error) {
	if err := validation.ValidateCheckout(s.validate, req); err != nil {
		logger.WarnContext(ctx, "Checkout request rejected", "service", "checkout", "tool_code", req.ToolCode, "error", err)
		return domain.RentalAgreement{}, err
	}

	tool, err := s.catalog.GetTool(ctx, req.ToolCode)
	if err != nil {
		logger.WarnContext(ctx, "Checkout tool lookup failed", "service", "checkout", "tool_code", req.ToolCode, "error", err)
		return domain.RentalAgreement{}, err
	}

	return s.Checkout(ctx, tool, req.CheckoutDate, req.RentalDays, req.DiscountPercent)
}

func (s *checkoutService) Checkout(ctx context.Context, tool *domain.Tool, checkoutDate time.Time, rentalDays, discountPercent int) (domain.RentalAgreement, error) {
	logger.EnterMethod("Checkout", "rental_days", rentalDays, "discount_percent", discountPercent)

	if tool == nil {
		err := errors.New("checkout requires a tool")
		logger.ExitMethodWithError("Checkout", err)
		return domain.RentalAgreement{}, err
	}

	req := domain.CheckoutRequest{
		ToolCode:        tool.Code,
		CheckoutDate:    checkoutDate,
		RentalDays:      rentalDays,
		DiscountPercent: discountPercent,
	}
	if err := validation.ValidateCheckout(s.validate, req); err != nil {
		logger.ExitMethodWithError("Checkout", err, "tool_code", tool.Code)
		return domain.RentalAgreement{}, err
	}

	checkoutDate = utils.CalendarDate(checkoutDate)
	dueDate := utils.DueDate(checkoutDate, rentalDays)
	chargeDays := utils.CalculateChargeDays(checkoutDate, dueDate, tool.ChargePolicy, rentalDays)

	charges, err := utils.CalculateCharges(chargeDays, tool.DailyCharge, discountPercent)
	if err != nil {
		logger.ExitMethodWithError("Checkout", err, "tool_code", tool.Code)
		return domain.RentalAgreement{}, err
	}

	agreement := domain.RentalAgreement{
		ToolCode:          tool.Code,
		ToolType:          tool.Type,
		ToolBrand:         tool.Brand,
		RentalDays:        rentalDays,
		CheckoutDate:      checkoutDate,
		DueDate:           dueDate,
		DailyRentalCharge: tool.DailyCharge,
		ChargeDays:        chargeDays,
		PreDiscountCharge: charges.PreDiscountCharge,
		DiscountPercent:   discountPercent,
		DiscountAmount:    charges.DiscountAmount,
		FinalCharge:       charges.FinalCharge,
	}

	s.log.InfoContext(ctx, "Checkout complete",
		"tool_code", agreement.ToolCode,
		"checkout_date", checkoutDate.Format(utils.DateLayout),
		"charge_days", chargeDays,
		"final_charge", agreement.FinalCharge.StringFixed(utils.CurrencyPlaces),
	)
	logger.ExitMethod("Checkout", "tool_code", tool.Code)
	return agreement, nil
}
