package repository

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"tool-rental-pos/internal/domain"
	"tool-rental-pos/internal/logger"
)

// Catalog is an immutable snapshot of the rentable tools
type Catalog struct {
	tools map[string]domain.Tool
	codes []string
}

// NewCatalog builds a snapshot. Codes must be unique and non-empty.
func NewCatalog(tools []domain.Tool) (*Catalog, error) {
	c := &Catalog{
		tools: make(map[string]domain.Tool, len(tools)),
		codes: make([]string, 0, len(tools)),
	}
	for _, t := range tools {
		if t.Code == "" {
			return nil, fmt.Errorf("tool of type %q has no code", t.Type)
		}
		if _, dup := c.tools[t.Code]; dup {
			return nil, fmt.Errorf("duplicate tool code %q", t.Code)
		}
		if t.DailyCharge.IsNegative() {
			return nil, fmt.Errorf("tool %q has negative daily charge %s", t.Code, t.DailyCharge)
		}
		c.tools[t.Code] = t
		c.codes = append(c.codes, t.Code)
	}
	sort.Strings(c.codes)
	return c, nil
}

// LoadCatalog builds a snapshot from everything the source lists
func LoadCatalog(ctx context.Context, src ToolSource) (*Catalog, error) {
	tools, err := src.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return NewCatalog(tools)
}

// GetByCode returns a copy of the tool, so callers cannot alter the snapshot
func (c *Catalog) GetByCode(_ context.Context, code string) (*domain.Tool, error) {
	t, ok := c.tools[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrToolNotFound, code)
	}
	return &t, nil
}

// ListCodes returns the tool codes in sorted order
func (c *Catalog) ListCodes(_ context.Context) ([]string, error) {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out, nil
}

// Len returns the number of tools in the snapshot
func (c *Catalog) Len() int {
	return len(c.codes)
}

// ReloadingCatalog serves lookups from the latest successfully loaded snapshot
type ReloadingCatalog struct {
	src     ToolSource
	current atomic.Pointer[Catalog]
}

// NewReloadingCatalog loads the first snapshot; it fails if that load fails
func NewReloadingCatalog(ctx context.Context, src ToolSource) (*ReloadingCatalog, error) {
	r := &ReloadingCatalog{src: src}
	if err := r.Reload(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload swaps in a fresh snapshot. On error the previous snapshot stays in service.
func (r *ReloadingCatalog) Reload(ctx context.Context) error {
	c, err := LoadCatalog(ctx, r.src)
	if err != nil {
		logger.Warn("Catalog reload failed, keeping previous snapshot", "error", err)
		return err
	}
	r.current.Store(c)
	logger.Info("Catalog loaded", "tools", c.Len())
	return nil
}

// Snapshot returns the snapshot currently in service
func (r *ReloadingCatalog) Snapshot() *Catalog {
	return r.current.Load()
}

func (r *ReloadingCatalog) GetByCode(ctx context.Context, code string) (*domain.Tool, error) {
	return r.Snapshot().GetByCode(ctx, code)
}

func (r *ReloadingCatalog) ListCodes(ctx context.Context) ([]string, error) {
	return r.Snapshot().ListCodes(ctx)
}
