package render

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/pders01/devtec/internal/catalog"
)

const (
	EmptyMessage = "Nenhum resultado encontrado."
	YearLabel    = "Ano de Criação: "
	LinkText     = "Website"
)

// DefaultPalette holds the chip colors used when none are configured.
var DefaultPalette = []string{"#FF6B6B", "#FFA86B", "#FFE66D", "#4ECDC4", "#A78BFA"}

// ColorPicker returns an index in [0, n).
type ColorPicker func(n int) int

// RandomPicker picks uniformly at random.
func RandomPicker(n int) int {
	return rand.IntN(n)
}

// Chip is one tag on a card.
type Chip struct {
	Text  string
	Color lipgloss.Color
}

// Card is the presentation of a single entry.
type Card struct {
	Entry       catalog.Entry
	Title       string
	YearLine    string
	Description string
	Chips       []Chip
	Link        string
	LinkText    string
}

// Page is everything shown in the results area for one pipeline run.
// Banner is empty when there is no search term. Empty pages carry no
// cards.
type Page struct {
	Banner string
	Empty  bool
	Cards  []Card
}

// Renderer projects processed entries into a Page.
type Renderer struct {
	palette []lipgloss.Color
	pick    ColorPicker
}

// NewRenderer returns a renderer drawing chip colors from palette with
// pick. A nil pick means RandomPicker; an empty palette means
// DefaultPalette.
func NewRenderer(palette []string, pick ColorPicker) *Renderer {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if pick == nil {
		pick = RandomPicker
	}

	colors := make([]lipgloss.Color, len(palette))
	for i, c := range palette {
		colors[i] = lipgloss.Color(c)
	}
	return &Renderer{palette: colors, pick: pick}
}

// Palette returns the chip colors.
func (r *Renderer) Palette() []lipgloss.Color {
	out := make([]lipgloss.Color, len(r.palette))
	copy(out, r.palette)
	return out
}

// Render builds a fresh page. Entries are expected in display order; the
// term is only used for the banner.
func (r *Renderer) Render(entries []catalog.Entry, term string) Page {
	page := Page{}
	if term != "" {
		page.Banner = ResultsBanner(term, len(entries))
	}

	if len(entries) == 0 {
		page.Empty = true
		return page
	}

	page.Cards = make([]Card, 0, len(entries))
	for _, entry := range entries {
		page.Cards = append(page.Cards, r.card(entry))
	}
	return page
}

func (r *Renderer) card(entry catalog.Entry) Card {
	chips := make([]Chip, 0, len(entry.Tags))
	for _, tag := range entry.Tags {
		chips = append(chips, Chip{
			Text:  tag,
			Color: r.palette[r.pick(len(r.palette))],
		})
	}

	return Card{
		Entry:       entry,
		Title:       entry.Name,
		YearLine:    YearLabel + strconv.Itoa(entry.CreationYear),
		Description: entry.Description,
		Chips:       chips,
		Link:        entry.Link,
		LinkText:    LinkText,
	}
}

// ResultsBanner formats the search summary line. The plural suffix is
// dropped only for exactly one result.
func ResultsBanner(term string, n int) string {
	suffix := "s"
	if n == 1 {
		suffix = ""
	}
	return fmt.Sprintf("\"%s\" - %d resultado%s encontrado%s", term, n, suffix, suffix)
}
