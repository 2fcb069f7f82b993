package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"tool-rental-pos/internal/domain"
)

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) GetByCode(ctx context.Context, code string) (*domain.Tool, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}

func (m *MockToolRepo) ListCodes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var (
	ladderType     = domain.ToolType{Name: "Ladder", DailyCharge: decimal.RequireFromString("1.99"), ChargePolicy: domain.ChargePolicy{WeekdayCharge: true, WeekendCharge: true, HolidayCharge: false}}
	chainsawType   = domain.ToolType{Name: "Chainsaw", DailyCharge: decimal.RequireFromString("1.49"), ChargePolicy: domain.ChargePolicy{WeekdayCharge: true, WeekendCharge: false, HolidayCharge: true}}
	jackhammerType = domain.ToolType{Name: "Jackhammer", DailyCharge: decimal.RequireFromString("2.99"), ChargePolicy: domain.ChargePolicy{WeekdayCharge: true, WeekendCharge: false, HolidayCharge: false}}
)

func testTools() []domain.Tool {
	return []domain.Tool{
		domain.NewTool("CHNS", "Stihl", chainsawType),
		domain.NewTool("LADW", "Werner", ladderType),
		domain.NewTool("JAKD", "DeWalt", jackhammerType),
		domain.NewTool("JAKR", "Ridgid", jackhammerType),
	}
}
