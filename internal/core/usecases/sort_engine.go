package usecases

import (
	"TUI_playlist_sorter/internal/core/domain"
	"TUI_playlist_sorter/internal/core/ports"
	"slices"
	"sync"

	"golang.org/x/text/language"
)

// EnginePhase is the state of the current playlist view.
type EnginePhase int

const (
	PhaseIdle EnginePhase = iota
	PhaseLoading
	PhaseAutoSorted
	PhaseManuallyOrdered
	PhaseSubmitting
	PhaseSubmitted
)

func (p EnginePhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseAutoSorted:
		return "auto-sorted"
	case PhaseManuallyOrdered:
		return "manually ordered"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSubmitted:
		return "submitted"
	default:
		return "idle"
	}
}

// SortEngine owns the items of one playlist view and their order.
//
// Every LoadItems call is stamped with a generation number; a response is
// applied only if no newer load was issued in the meantime.
type SortEngine struct {
	api    ports.SorterAPIPort
	alerts ports.AlertPort
	log    ports.LoggerPort
	locale language.Tag

	mu         sync.Mutex
	playlist   domain.PlaylistSummary
	items      []domain.PlaylistItem
	spec       domain.SortSpec
	source     domain.OrderSource
	loading    bool
	submitting bool
	generation uint64
	createdID  string
}

func NewSortEngine(api ports.SorterAPIPort, alerts ports.AlertPort, logger ports.LoggerPort, locale language.Tag) *SortEngine {
	spec := domain.DefaultSortSpec()
	return &SortEngine{
		api:    api,
		alerts: alerts,
		log:    logger,
		locale: locale,
		spec:   spec,
		source: domain.AutoOrder(spec),
	}
}

// Items returns a copy of the displayed sequence.
func (e *SortEngine) Items() []domain.PlaylistItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.items)
}

func (e *SortEngine) Playlist() domain.PlaylistSummary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playlist
}

// SortSpec returns the selected field and direction. While the order is
// manual this is the last selection, not the source of the order.
func (e *SortEngine) SortSpec() domain.SortSpec {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.spec
}

func (e *SortEngine) Source() domain.OrderSource {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.source
}

func (e *SortEngine) IsManual() bool {
	return e.Source().IsManual()
}

func (e *SortEngine) IsLoading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

func (e *SortEngine) IsSubmitting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submitting
}

// CreatedPlaylistID is the id of the playlist created by the last
// successful Submit of this view.
func (e *SortEngine) CreatedPlaylistID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.createdID
}

func (e *SortEngine) Phase() EnginePhase {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case e.playlist.ID == "":
		return PhaseIdle
	case e.loading:
		return PhaseLoading
	case e.submitting:
		return PhaseSubmitting
	case e.createdID != "":
		return PhaseSubmitted
	case e.source.IsManual():
		return PhaseManuallyOrdered
	default:
		return PhaseAutoSorted
	}
}
