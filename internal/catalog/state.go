package catalog

import (
	"errors"
	"fmt"
)

// SortOrder selects how Process orders the filtered entries. The values
// are the ones accepted by the sort selector and the --sort flag.
type SortOrder string

const (
	SortNameAsc        SortOrder = "alfa_asc"
	SortNameDesc       SortOrder = "alfa_desc"
	SortYearDesc       SortOrder = "ano_desc"
	SortYearAsc        SortOrder = "ano_asc"
	SortPopularityDesc SortOrder = "pop_desc"
	SortPopularityAsc  SortOrder = "pop_asc"
)

// ErrUnknownSortOrder is returned by ParseSortOrder for values outside
// the six known orders.
var ErrUnknownSortOrder = errors.New("unknown sort order")

// SortOption pairs an order with the label shown in the selector.
type SortOption struct {
	Order SortOrder
	Label string
}

// SortOptions lists the orders in selector order.
func SortOptions() []SortOption {
	return []SortOption{
		{SortNameAsc, "Ordem alfabética (A-Z)"},
		{SortNameDesc, "Ordem alfabética (Z-A)"},
		{SortYearDesc, "Ano: mais recente"},
		{SortYearAsc, "Ano: mais antigo"},
		{SortPopularityDesc, "Popularidade: maior"},
		{SortPopularityAsc, "Popularidade: menor"},
	}
}

// Label returns the selector label, or the raw value for unknown orders.
func (o SortOrder) Label() string {
	for _, opt := range SortOptions() {
		if opt.Order == o {
			return opt.Label
		}
	}
	return string(o)
}

// Known reports whether o is one of the six supported orders.
func (o SortOrder) Known() bool {
	for _, opt := range SortOptions() {
		if opt.Order == o {
			return true
		}
	}
	return false
}

func ParseSortOrder(s string) (SortOrder, error) {
	o := SortOrder(s)
	if !o.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSortOrder, s)
	}
	return o, nil
}

// State is what the pipeline is derived from besides the entries.
type State struct {
	SearchTerm string
	Sort       SortOrder
}

// NewState returns the startup state: no search, names A-Z.
func NewState() State {
	return State{SearchTerm: "", Sort: SortNameAsc}
}
