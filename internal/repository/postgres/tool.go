package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tool-rental-pos/internal/domain"
	"tool-rental-pos/internal/logger"
)

const toolColumns = `t.code, t.type, t.brand, tt.daily_charge, tt.weekday_charge, tt.weekend_charge, tt.holiday_charge
	FROM tools t JOIN tool_types tt ON tt.name = t.type`

// ToolRepository reads tools joined with the pricing of their type
type ToolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

func (r *ToolRepository) GetByCode(ctx context.Context, code string) (*domain.Tool, error) {
	logger.DatabaseCall("SELECT", "tools JOIN tool_types", "code", code)

	query := `SELECT ` + toolColumns + ` WHERE t.code = $1`
	t, err := scanTool(r.db.QueryRowContext(ctx, query, code))
	if errors.Is(err, sql.ErrNoRows) {
		logger.DatabaseResult("SELECT", 0, nil, "code", code)
		return nil, fmt.Errorf("%w: %q", domain.ErrToolNotFound, code)
	}
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "code", code)
		return nil, err
	}
	logger.DatabaseResult("SELECT", 1, nil, "code", code)
	return t, nil
}

func (r *ToolRepository) ListCodes(ctx context.Context) ([]string, error) {
	logger.DatabaseCall("SELECT", "tools")

	rows, err := r.db.QueryContext(ctx, `SELECT code FROM tools ORDER BY code`)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("SELECT", int64(len(codes)), err)
		return nil, err
	}
	logger.DatabaseResult("SELECT", int64(len(codes)), nil)
	return codes, nil
}

// ListAll returns every tool, ordered by code
func (r *ToolRepository) ListAll(ctx context.Context) ([]domain.Tool, error) {
	logger.DatabaseCall("SELECT", "tools JOIN tool_types")

	rows, err := r.db.QueryContext(ctx, `SELECT `+toolColumns+` ORDER BY t.code`)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *t)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("SELECT", int64(len(tools)), err)
		return nil, err
	}
	logger.DatabaseResult("SELECT", int64(len(tools)), nil)
	return tools, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTool(row rowScanner) (*domain.Tool, error) {
	t := &domain.Tool{}
	err := row.Scan(&t.Code, &t.Type, &t.Brand, &t.DailyCharge, &t.WeekdayCharge, &t.WeekendCharge, &t.HolidayCharge)
	if err != nil {
		return nil, err
	}
	return t, nil
}
