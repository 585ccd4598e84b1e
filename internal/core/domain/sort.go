package domain

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField selects the item attribute used for automatic ordering.
type SortField string

const (
	SortByTitle   SortField = "title"
	SortByDate    SortField = "date"
	SortByChannel SortField = "channel"
)

// SortFields lists the fields in the order the UI cycles through them.
var SortFields = []SortField{SortByTitle, SortByDate, SortByChannel}

// String returns the display name for the field.
func (f SortField) String() string {
	switch f {
	case SortByTitle:
		return "Title"
	case SortByDate:
		return "Date"
	case SortByChannel:
		return "Channel Name"
	default:
		return "Unknown"
	}
}

// Next returns the field that follows f in SortFields.
func (f SortField) Next() SortField {
	i := slices.Index(SortFields, f)
	return SortFields[(i+1)%len(SortFields)]
}

// ParseSortField accepts the wire names used by the sorter API.
func ParseSortField(s string) (SortField, error) {
	switch SortField(strings.ToLower(strings.TrimSpace(s))) {
	case SortByTitle:
		return SortByTitle, nil
	case SortByDate, "publish", "published":
		return SortByDate, nil
	case SortByChannel:
		return SortByChannel, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortField, s)
}

// SortDirection is ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// String returns the display name for the direction.
func (d SortDirection) String() string {
	if d == Descending {
		return "Descending"
	}
	return "Ascending"
}

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseSortDirection accepts "asc" and "desc" in any case.
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(s))) {
	case Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortDirection, s)
}

// SortSpec is a declarative ordering instruction.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSortSpec is title ascending.
func DefaultSortSpec() SortSpec {
	return SortSpec{Field: SortByTitle, Direction: Ascending}
}

func (s SortSpec) String() string {
	return fmt.Sprintf("%s (%s)", s.Field, s.Direction)
}

type orderKind int

const (
	orderAuto orderKind = iota
	orderManual
)

// OrderSource says which of the two mutually exclusive sources computed the
// displayed order: an automatic SortSpec or a manual edit.
type OrderSource struct {
	kind orderKind
	spec SortSpec
}

// AutoOrder is an order derived from spec.
func AutoOrder(spec SortSpec) OrderSource {
	return OrderSource{kind: orderAuto, spec: spec}
}

// ManualOrder is an order produced by direct user moves.
func ManualOrder() OrderSource {
	return OrderSource{kind: orderManual}
}

// IsManual reports whether the order came from a manual edit.
func (o OrderSource) IsManual() bool {
	return o.kind == orderManual
}

// Spec returns the sort spec of an automatic order. ok is false for manual
// orders.
func (o OrderSource) Spec() (spec SortSpec, ok bool) {
	if o.kind != orderAuto {
		return SortSpec{}, false
	}
	return o.spec, true
}

// DeriveOrder computes the displayed sequence from the current sequence and
// the order source. Automatic orders are a stable sort of current; manual
// orders are current as is. The input slice is never modified.
func DeriveOrder(current []PlaylistItem, src OrderSource, locale language.Tag) []PlaylistItem {
	out := slices.Clone(current)
	if spec, ok := src.Spec(); ok {
		SortItems(out, spec, locale)
	}
	return out
}

// SortItems stably sorts items in place. Ties keep their prior relative
// order.
func SortItems(items []PlaylistItem, spec SortSpec, locale language.Tag) {
	cmp := comparatorFor(spec.Field, locale)
	slices.SortStableFunc(items, func(a, b PlaylistItem) int {
		if spec.Direction == Descending {
			return -cmp(a, b)
		}
		return cmp(a, b)
	})
}

func comparatorFor(field SortField, locale language.Tag) func(a, b PlaylistItem) int {
	switch field {
	case SortByDate:
		return func(a, b PlaylistItem) int {
			return a.PublishedTime().Compare(b.PublishedTime())
		}
	case SortByChannel:
		col := collate.New(locale)
		return func(a, b PlaylistItem) int {
			return col.CompareString(a.ChannelTitle, b.ChannelTitle)
		}
	default:
		col := collate.New(locale)
		return func(a, b PlaylistItem) int {
			return col.CompareString(a.Title, b.Title)
		}
	}
}

// Move removes the item at from and reinserts it at to, reporting whether
// the order changed. Indices outside the slice are ignored.
func Move(items []PlaylistItem, from, to int) bool {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return false
	}

	item := items[from]
	if from < to {
		copy(items[from:to], items[from+1:to+1])
	} else {
		copy(items[to+1:from+1], items[to:from])
	}
	items[to] = item

	return true
}

// SortRequest is the body of a create-sorted-playlist request.
type SortRequest struct {
	PlaylistID      string
	SortBy          string
	Order           SortDirection
	NewPlaylistName string
	CreatePlaylist  bool
	VideoIDs        []string
}

// ManualSortKey is sent as sort_by when the order came from manual edits.
const ManualSortKey = "manual"
