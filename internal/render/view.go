package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pders01/devtec/internal/config"
)

const chipForeground = lipgloss.Color("#1A1A2E")

// Styles holds the lipgloss styles a page is drawn with. Build them with
// NewStyles whenever the theme changes.
type Styles struct {
	Banner       lipgloss.Style
	Empty        lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	Title        lipgloss.Style
	Year         lipgloss.Style
	Description  lipgloss.Style
	Link         lipgloss.Style
	URL          lipgloss.Style
	Chip         lipgloss.Style

	CardWidth int
}

func NewStyles(colors config.UIColors, cardWidth int) Styles {
	if cardWidth <= 0 {
		cardWidth = 80
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Muted)).
		Padding(0, 1).
		MarginBottom(1)

	return Styles{
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Secondary)).
			Bold(true),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Muted)).
			Italic(true).
			Align(lipgloss.Center),
		Card:         card,
		SelectedCard: card.BorderForeground(lipgloss.Color(colors.Accent)),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Primary)).
			Bold(true),
		Year: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Muted)),
		Description: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Text)),
		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Accent)).
			Underline(true),
		URL: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Muted)).
			Faint(true),
		Chip: lipgloss.NewStyle().
			Foreground(chipForeground).
			Padding(0, 1),
		CardWidth: cardWidth,
	}
}

// Selection marks the highlighted card, and optionally one of its chips.
// Card -1 selects nothing; Tag -1 selects the card itself.
type Selection struct {
	Card int
	Tag  int
}

// NoSelection highlights nothing.
var NoSelection = Selection{Card: -1, Tag: -1}

// Layout is a drawn page. Offsets[i] is the first line of card i in
// Content, used to scroll a selected card into view.
type Layout struct {
	Content string
	Offsets []int
}

// View draws the page for a results area width columns wide.
func (p Page) View(st Styles, width int, sel Selection) Layout {
	if width <= 0 {
		width = st.CardWidth
	}

	var (
		parts   []string
		line    int
		offsets []int
	)

	if p.Banner != "" {
		banner := st.Banner.Render(TruncateEnd(p.Banner, width))
		parts = append(parts, banner, "")
		line += lipgloss.Height(banner) + 1
	}

	if p.Empty {
		parts = append(parts, st.Empty.Width(width).Render(EmptyMessage))
		return Layout{Content: lipgloss.JoinVertical(lipgloss.Left, parts...)}
	}

	cardWidth := min(st.CardWidth, width)
	for i, card := range p.Cards {
		tag := -1
		if sel.Card == i {
			tag = sel.Tag
		}
		rendered := card.view(st, cardWidth, sel.Card == i, tag)

		offsets = append(offsets, line)
		parts = append(parts, rendered)
		line += lipgloss.Height(rendered)
	}

	return Layout{
		Content: lipgloss.JoinVertical(lipgloss.Left, parts...),
		Offsets: offsets,
	}
}

func (c Card) view(st Styles, width int, selected bool, selectedTag int) string {
	frame := st.Card
	if selected {
		frame = st.SelectedCard
	}
	inner := max(width-frame.GetHorizontalFrameSize(), 10)

	rows := []string{
		st.Title.Render(TruncateEnd(c.Title, inner)),
		st.Year.Render(c.YearLine),
	}
	if c.Description != "" {
		rows = append(rows, "", st.Description.Width(inner).Render(c.Description))
	}
	if len(c.Chips) > 0 {
		rows = append(rows, "", chipRows(c.Chips, st, inner, selectedTag))
	}
	if c.Link != "" {
		link := st.Link.Render(c.LinkText) + " " +
			st.URL.Render(TruncateMiddle(c.Link, inner-len([]rune(c.LinkText))-1))
		rows = append(rows, "", link)
	}

	// lipgloss widths include padding but not border or margin.
	return frame.Width(width - frame.GetHorizontalBorderSize() - frame.GetHorizontalMargins()).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// chipRows lays chips out left to right, wrapping when a row is full.
func chipRows(chips []Chip, st Styles, width, selected int) string {
	var (
		rows    []string
		current []string
		used    int
	)

	for i, chip := range chips {
		style := st.Chip.Background(chip.Color)
		if i == selected {
			style = style.Reverse(true).Bold(true)
		}
		rendered := style.Render(TruncateEnd(chip.Text, width-2))
		w := lipgloss.Width(rendered)

		if len(current) > 0 && used+1+w > width {
			rows = append(rows, strings.Join(current, " "))
			current, used = nil, 0
		}
		if len(current) > 0 {
			used++
		}
		current = append(current, rendered)
		used += w
	}
	if len(current) > 0 {
		rows = append(rows, strings.Join(current, " "))
	}

	return strings.Join(rows, "\n")
}

// Plain renders the page without styling, one card per block.
func (p Page) Plain() string {
	var b strings.Builder

	if p.Banner != "" {
		b.WriteString(p.Banner)
		b.WriteString("\n\n")
	}
	if p.Empty {
		b.WriteString(EmptyMessage)
		b.WriteString("\n")
		return b.String()
	}

	for i, card := range p.Cards {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(card.Title)
		b.WriteString("\n")
		b.WriteString(card.YearLine)
		b.WriteString("\n")
		if card.Description != "" {
			b.WriteString(card.Description)
			b.WriteString("\n")
		}
		if len(card.Chips) > 0 {
			tags := make([]string, len(card.Chips))
			for j, chip := range card.Chips {
				tags[j] = "[" + chip.Text + "]"
			}
			b.WriteString(strings.Join(tags, " "))
			b.WriteString("\n")
		}
		if card.Link != "" {
			b.WriteString(card.LinkText + ": " + card.Link)
			b.WriteString("\n")
		}
	}

	return b.String()
}
