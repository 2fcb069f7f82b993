package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"tool-rental-pos/internal/domain"
	"tool-rental-pos/internal/logger"
	"tool-rental-pos/internal/repository"
)

// Store reads the tool catalog from two CSV files:
//
//	tool info:       type,daily charge,weekday charge,weekend charge,holiday charge
//	tools available: type,brand,code
//
// Charges look like "$1.99" and flags are Yes/No. A leading header row is skipped.
type Store struct {
	toolInfoPath       string
	toolsAvailablePath string
}

var _ repository.ToolSource = (*Store)(nil)

func NewStore(toolInfoPath, toolsAvailablePath string) *Store {
	return &Store{
		toolInfoPath:       toolInfoPath,
		toolsAvailablePath: toolsAvailablePath,
	}
}

// ListAll reads both files and returns every available tool
func (s *Store) ListAll(_ context.Context) ([]domain.Tool, error) {
	logger.Debug("Reading tool catalog", "tool_info", s.toolInfoPath, "tools_available", s.toolsAvailablePath)

	infoFile, err := os.Open(s.toolInfoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open tool info: %w", err)
	}
	defer infoFile.Close()

	types, err := ReadToolTypes(infoFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.toolInfoPath, err)
	}

	availFile, err := os.Open(s.toolsAvailablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open tools available: %w", err)
	}
	defer availFile.Close()

	tools, err := ReadTools(availFile, types)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.toolsAvailablePath, err)
	}
	return tools, nil
}

// ReadToolTypes parses tool info rows keyed by type name
func ReadToolTypes(r io.Reader) (map[string]domain.ToolType, error) {
	rows, err := readRows(r, 5)
	if err != nil {
		return nil, err
	}

	types := make(map[string]domain.ToolType, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		charge, err := ParseCharge(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		var flags [3]bool
		for j := range flags {
			if flags[j], err = ParseYesNo(row[2+j]); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}

		name := row[0]
		if _, dup := types[name]; dup {
			return nil, fmt.Errorf("row %d: duplicate tool type %q", i+1, name)
		}
		types[name] = domain.ToolType{
			Name:        name,
			DailyCharge: charge,
			ChargePolicy: domain.ChargePolicy{
				WeekdayCharge: flags[0],
				WeekendCharge: flags[1],
				HolidayCharge: flags[2],
			},
		}
	}
	return types, nil
}

// ReadTools parses tools available rows, pricing each from its type
func ReadTools(r io.Reader, types map[string]domain.ToolType) ([]domain.Tool, error) {
	rows, err := readRows(r, 3)
	if err != nil {
		return nil, err
	}

	tools := make([]domain.Tool, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		toolType, ok := types[row[0]]
		if !ok {
			return nil, fmt.Errorf("row %d: unknown tool type %q", i+1, row[0])
		}
		tools = append(tools, domain.NewTool(row[2], row[1], toolType))
	}
	return tools, nil
}

// ParseCharge reads a US currency amount such as "$1,234.50"
func ParseCharge(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid daily charge %q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("daily charge must not be negative: %q", s)
	}
	return d, nil
}

// ParseYesNo reads a Yes/No flag
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	default:
		return false, fmt.Errorf("invalid flag %q, expected Yes or No", s)
	}
}

func isHeader(row []string) bool {
	return strings.EqualFold(row[0], "type") || strings.EqualFold(row[0], "tool type")
}

func readRows(r io.Reader, fields int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fields
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}
