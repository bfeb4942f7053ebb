package catalog

import (
	"cmp"
	"net/url"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// All is the sentinel meaning "no filter applied" for a filter field.
const All = "Все"

// Sort identifies a {field, direction} sort option for the product list.
type Sort string

// The fixed set of sort options recognized in URLs.
const (
	SortNameAsc   Sort = "name-asc"
	SortNameDesc  Sort = "name-desc"
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
)

// Query parameter names for the filter serialization surface.
const (
	paramCategory = "category"
	paramStrength = "strength"
	paramSort     = "sort"
)

// FilterState is the catalog view-model state: what the product list is
// filtered by and how it is ordered. It is always representable as a URL
// query string and fully reconstructible from one.
type FilterState struct {
	Category string `json:"category"`
	Strength string `json:"strength"`
	Sort     Sort   `json:"sort"`
}

// DefaultFilter returns the unfiltered, name-ascending state.
func DefaultFilter() FilterState {
	return FilterState{Category: All, Strength: All, Sort: SortNameAsc}
}

// IsDefault reports whether every field is at its sentinel/default value.
func (f FilterState) IsDefault() bool {
	return f == DefaultFilter()
}

// Encode serializes the state to a canonical query string, omitting any
// field at its default so shared URLs stay minimal.
func (f FilterState) Encode() string {
	q := url.Values{}
	if f.Category != All && f.Category != "" {
		q.Set(paramCategory, f.Category)
	}
	if f.Strength != All && f.Strength != "" {
		q.Set(paramStrength, f.Strength)
	}
	if f.Sort != SortNameAsc && f.Sort != "" {
		q.Set(paramSort, string(f.Sort))
	}
	return q.Encode()
}

// DecodeFilter reconstructs a FilterState from query parameters. Parsing is
// lenient: a missing or unrecognized value silently falls back to the
// sentinel/default, so stale bookmarked URLs keep working.
func (c *Catalog) DecodeFilter(q url.Values) FilterState {
	f := DefaultFilter()

	if v := q.Get(paramCategory); c.HasCategory(v) {
		f.Category = v
	}
	if v := q.Get(paramStrength); c.HasStrength(v) {
		f.Strength = v
	}
	if v := Sort(q.Get(paramSort)); v.valid() {
		f.Sort = v
	}

	return f
}

func (s Sort) valid() bool {
	switch s {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// Apply projects the catalog through the filter state: exact-match filters
// (skipped at the sentinel), then a stable sort so that equal keys keep
// catalog order.
func (c *Catalog) Apply(f FilterState) []Product {
	filtered := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if f.Category != All && f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Strength != All && f.Strength != "" && p.Strength != f.Strength {
			continue
		}
		filtered = append(filtered, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(filtered, func(a, b Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(filtered, func(a, b Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortNameDesc:
		col := newCollator()
		slices.SortStableFunc(filtered, func(a, b Product) int {
			return col.CompareString(b.Name, a.Name)
		})
	default: // SortNameAsc
		col := newCollator()
		slices.SortStableFunc(filtered, func(a, b Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	}

	return filtered
}

// newCollator returns a Russian-locale collator. Collators carry internal
// buffers and are not safe for concurrent use, so each Apply call gets its
// own.
func newCollator() *collate.Collator {
	return collate.New(language.Russian)
}
