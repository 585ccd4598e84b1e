package usecases

import "TUI_playlist_sorter/internal/core/domain"

// NoDestination marks a move that was dropped outside the list.
const NoDestination = -1

// ReorderManually moves the item at from to position to and switches the
// order source to manual. A cancelled move (to == NoDestination), an out of
// range index or a drop on the same position changes nothing.
func (e *SortEngine) ReorderManually(from, to int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !domain.Move(e.items, from, to) {
		return false
	}

	e.source = domain.ManualOrder()
	e.log.Debug("Manual reorder", "from", from, "to", to)

	return true
}
