// Package listing turns the optional free-text filters and sort specification
// accepted by the listing endpoints into parameterized SQL fragments.
//
// Every surface (admin user listing, store listings, shopper store listing)
// owns a fixed allowlist of filterable fields and sortable columns. Filter
// values only ever travel as query parameters; the only tokens that reach
// clause position are column and direction names taken from the allowlists,
// so caller input can never be interpolated into SQL text.
package listing

import (
	"fmt"
	"strings"

	"github.com/ratemart/store-rating-system/internal/core/domain"
)

// Surface describes one listing endpoint's allowlists.
type Surface struct {
	// filterable maps an accepted filter field to the column it matches
	// against with a case-insensitive substring predicate.
	filterable map[string]string
	// sortable maps an accepted sortBy value to a real, indexed column.
	sortable map[string]string
	// defaultSort is the column used when sortBy is absent.
	defaultSort string
}

// The three listing surfaces. Allowlists are fixed at startup and never
// mutated.
var (
	// Users backs the admin user listing.
	Users = Surface{
		filterable: map[string]string{
			"name":    "name",
			"email":   "email",
			"address": "address",
			"role":    "role",
		},
		sortable: map[string]string{
			"name":       "name",
			"email":      "email",
			"role":       "role",
			"created_at": "created_at",
		},
		defaultSort: "name",
	}

	// Stores backs the admin and store-owner store listings.
	Stores = Surface{
		filterable: map[string]string{
			"name":    "s.name",
			"email":   "s.email",
			"address": "s.address",
		},
		sortable: map[string]string{
			"name":       "s.name",
			"email":      "s.email",
			"address":    "s.address",
			"created_at": "s.created_at",
		},
		defaultSort: "s.name",
	}

	// ShopperStores backs the end-user store listing, which exposes neither
	// store emails nor email filtering.
	ShopperStores = Surface{
		filterable: map[string]string{
			"name":    "s.name",
			"address": "s.address",
		},
		sortable: map[string]string{
			"name":       "s.name",
			"address":    "s.address",
			"created_at": "s.created_at",
		},
		defaultSort: "s.name",
	}
)

// Query is a validated, ready-to-assemble predicate and sort order. Column
// names inside a Query only ever come from a Surface allowlist.
type Query struct {
	filters []filter
	sortCol string
	desc    bool
}

type filter struct {
	column string
	value  string
}

// Build validates the caller-supplied filters and sort specification against
// the surface's allowlists. Unknown filter fields, unlisted sortBy values and
// unrecognized order values all fail with a domain.ValidationError before any
// storage access can happen. Empty filter values contribute no predicate.
func (s Surface) Build(filters map[string]string, sortBy, order string) (Query, error) {
	q := Query{}

	for field, value := range filters {
		column, ok := s.filterable[field]
		if !ok {
			return Query{}, domain.NewValidationError(fmt.Sprintf("unknown filter field %q", field))
		}
		if value == "" {
			continue
		}
		q.filters = append(q.filters, filter{column: column, value: value})
	}

	q.sortCol = s.defaultSort
	if sortBy != "" {
		column, ok := s.sortable[sortBy]
		if !ok {
			return Query{}, domain.NewValidationError("invalid sort field")
		}
		q.sortCol = column
	}

	switch strings.ToLower(order) {
	case "", "asc":
		q.desc = false
	case "desc":
		q.desc = true
	default:
		return Query{}, domain.NewValidationError("order must be asc or desc")
	}

	return q, nil
}

// Where renders the ANDed substring predicates as a SQL fragment starting
// with " AND ..." (callers open with "WHERE 1=1" or an existing predicate).
// Placeholders are numbered from next; the matching arguments are returned in
// order. An empty fragment is returned when no filters are present.
func (q Query) Where(next int) (string, []any) {
	if len(q.filters) == 0 {
		return "", nil
	}
	var sb strings.Builder
	args := make([]any, 0, len(q.filters))
	for _, f := range q.filters {
		fmt.Fprintf(&sb, " AND %s ILIKE $%d", f.column, next)
		args = append(args, "%"+f.value+"%")
		next++
	}
	return sb.String(), args
}

// OrderBy renders the ORDER BY clause. The column is always an allowlisted
// token, never caller input.
func (q Query) OrderBy() string {
	dir := "ASC"
	if q.desc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", q.sortCol, dir)
}
