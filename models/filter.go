package models

// FilterKind selects which subset of accounts a listing shows.
type FilterKind int

const (
	// FilterAll lists every account.
	FilterAll FilterKind = iota

	// FilterFavorites lists accounts marked as favorite.
	FilterFavorites

	// FilterCategory lists accounts whose category equals AccountFilter.Category.
	FilterCategory
)

// AccountFilter describes a listing request coming from the presentation
// layer (the "All", "Favorites" and per-category views).
type AccountFilter struct {
	Kind     FilterKind
	Category string
}

// String returns a short human-readable label for the filter.
func (f AccountFilter) String() string {
	switch f.Kind {
	case FilterFavorites:
		return "Favorites"
	case FilterCategory:
		return "Category: " + f.Category
	default:
		return "All"
	}
}
