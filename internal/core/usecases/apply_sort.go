package usecases

import (
	"TUI_playlist_sorter/internal/core/domain"
	"fmt"
)

// ApplySort selects field and direction and recomputes the order from the
// current items, discarding any manual order.
func (e *SortEngine) ApplySort(field domain.SortField, direction domain.SortDirection) error {
	if _, err := domain.ParseSortField(string(field)); err != nil {
		return err
	}
	if _, err := domain.ParseSortDirection(string(direction)); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.spec = domain.SortSpec{Field: field, Direction: direction}
	e.source = domain.AutoOrder(e.spec)
	e.items = domain.DeriveOrder(e.items, e.source, e.locale)

	e.log.Debug("Sort applied", "spec", e.spec.String(), "count", len(e.items))

	return nil
}

// CycleField selects the next sort field keeping the direction.
func (e *SortEngine) CycleField() error {
	spec := e.SortSpec()
	if err := e.ApplySort(spec.Field.Next(), spec.Direction); err != nil {
		return fmt.Errorf("error while cycling sort field: %w", err)
	}
	return nil
}

// FlipDirection toggles between ascending and descending.
func (e *SortEngine) FlipDirection() error {
	spec := e.SortSpec()
	if err := e.ApplySort(spec.Field, spec.Direction.Flip()); err != nil {
		return fmt.Errorf("error while flipping sort direction: %w", err)
	}
	return nil
}
