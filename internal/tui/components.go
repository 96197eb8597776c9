package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pders01/devtec/internal/render"
)

// renderHeader puts the title on the left and the trailing text, usually
// the theme icon, flush right.
func renderHeader(st Styles, title, trailing string, width int) string {
	right := st.Icon.Render(trailing)
	left := st.Header.Render(render.TruncateEnd(title, max(width-lipgloss.Width(right)-2, 1)))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}

// renderInputFrame draws a rounded border around an input view.
func renderInputFrame(st Styles, inputView string, focused bool, contentWidth int) string {
	borderColor := st.InputBorder
	if focused {
		borderColor = st.InputBorderFocused
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(contentWidth + 2).
		Render(inputView)
}

// renderCentered centers content within a width x height box.
func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
