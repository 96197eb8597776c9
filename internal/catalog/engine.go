package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation locale used for name ordering when none
// is configured.
const DefaultLocale = "pt-BR"

// Engine filters and sorts entries. It holds no per-call state and is safe
// to reuse; each Process call builds its own collator.
type Engine struct {
	locale language.Tag
}

// NewEngine returns an engine collating names for locale. An unparsable
// locale falls back to DefaultLocale.
func NewEngine(locale string) *Engine {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &Engine{locale: tag}
}

var defaultEngine = NewEngine(DefaultLocale)

// Process runs the pipeline with the default locale.
func Process(entries []Entry, state State) []Entry {
	return defaultEngine.Process(entries, state)
}

// Process returns the entries matching state.SearchTerm, ordered by
// state.Sort. The input slice is never modified. Ties keep their input
// order. An unknown sort order leaves the filtered entries in input order.
func (e *Engine) Process(entries []Entry, state State) []Entry {
	out := Filter(entries, state.SearchTerm)

	switch state.Sort {
	case SortNameAsc:
		c := collate.New(e.locale)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortNameDesc:
		c := collate.New(e.locale)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[j].Name, out[i].Name) < 0
		})
	case SortYearDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreationYear > out[j].CreationYear
		})
	case SortYearAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreationYear < out[j].CreationYear
		})
	case SortPopularityDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Popularity > out[j].Popularity
		})
	case SortPopularityAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Popularity < out[j].Popularity
		})
	}

	return out
}

// CompareNames orders two names the way the name sorts do.
func (e *Engine) CompareNames(a, b string) int {
	return collate.New(e.locale).CompareString(a, b)
}

// Filter returns a fresh slice with the entries matching term. An empty
// term matches everything.
func Filter(entries []Entry, term string) []Entry {
	out := make([]Entry, 0, len(entries))
	if term == "" {
		return append(out, entries...)
	}

	needle := strings.ToLower(term)
	for _, entry := range entries {
		if Matches(entry, needle) {
			out = append(out, entry)
		}
	}
	return out
}

// Matches reports whether the lowercased needle occurs in the entry's
// name, description or any tag, ignoring case.
func Matches(entry Entry, needle string) bool {
	if strings.Contains(strings.ToLower(entry.Name), needle) ||
		strings.Contains(strings.ToLower(entry.Description), needle) {
		return true
	}
	for _, tag := range entry.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
