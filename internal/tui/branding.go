package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/pders01/devtec/internal/config"
	"github.com/pders01/devtec/internal/render"
)

const AppName = "devtec"

// LogoLines is the block-letter logo shown on the loading screen and by
// the version command.
var LogoLines = []string{
	"█▀▄ █▀▀ █ █ ▀█▀ █▀▀ █▀▀",
	"█ █ █▀▀ ▀▄▀  █  █▀▀ █  ",
	"▀▀  ▀▀▀  ▀   ▀  ▀▀▀ ▀▀▀",
}

// BannerColors cycle over the logo lines, one per line.
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#FF6B6B"),
	lipgloss.Color("#FFA86B"),
	lipgloss.Color("#FFE66D"),
	lipgloss.Color("#4ECDC4"),
	lipgloss.Color("#A78BFA"),
}

// Styles are the app's lipgloss styles for one theme.
type Styles struct {
	Logo          lipgloss.Style
	Title         lipgloss.Style
	Header        lipgloss.Style
	Icon          lipgloss.Style
	Help          lipgloss.Style
	Muted         lipgloss.Style
	Separator     lipgloss.Style
	StatusBar     lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarn    lipgloss.Style
	StatusError   lipgloss.Style

	InputBorder        lipgloss.Color
	InputBorderFocused lipgloss.Color

	Page render.Styles
}

// NewStyles builds the styles for a palette.
func NewStyles(colors config.UIColors, cardWidth int) Styles {
	muted := lipgloss.Color(colors.Muted)

	return Styles{
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Primary)).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Text)).
			Background(lipgloss.Color(colors.Surface)).
			Bold(true).
			Padding(0, 2),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Secondary)).
			Bold(true),
		Icon: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Accent)).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Separator: lipgloss.NewStyle().
			Foreground(muted),
		StatusBar: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		StatusInfo: lipgloss.NewStyle().
			Foreground(muted),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Success)),
		StatusWarn: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Accent)),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Error)).
			Bold(true),

		InputBorder:        muted,
		InputBorderFocused: lipgloss.Color(colors.Accent),

		Page: render.NewStyles(colors, cardWidth),
	}
}

func (s Styles) status(kind StatusKind) lipgloss.Style {
	switch kind {
	case StatusSuccess:
		return s.StatusSuccess
	case StatusWarn:
		return s.StatusWarn
	case StatusError:
		return s.StatusError
	default:
		return s.StatusInfo
	}
}

// GetCompactBanner returns the logo with a message under it.
func GetCompactBanner(st Styles, message string) string {
	coloredLines := make([]string, 0, len(LogoLines))
	for _, line := range LogoLines {
		coloredLines = append(coloredLines, st.Logo.Render(line))
	}

	logo := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		"",
		st.Help.Render(message),
	)
}

// Banner renders the framed logo with a tagline and version.
func Banner(version string) string {
	lines := make([]string, len(LogoLines)+1)
	copy(lines, LogoLines)
	lines[len(LogoLines)] = ""

	versionTag := version
	if versionTag != "" && versionTag != "dev" {
		if versionTag[0] != 'v' && versionTag[0] != 'V' {
			versionTag = "v" + versionTag
		}
		lines = append(lines, fmt.Sprintf("Catálogo de tecnologias %s", versionTag))
	} else {
		lines = append(lines, "Catálogo de tecnologias")
	}

	coloredLines := make([]string, 0, len(lines))
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}
		style := lipgloss.NewStyle().
			Foreground(BannerColors[i%len(BannerColors)]).
			Bold(i < len(LogoLines))
		coloredLines = append(coloredLines, style.Render(line))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		Padding(1, 3).
		MarginTop(1)

	framed := borderStyle.Render(lipgloss.JoinVertical(lipgloss.Center, coloredLines...))

	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#A78BFA")).
		Render("◆ ◇ ◆ ◇ ◆")

	centered := lipgloss.NewStyle().Width(60).Align(lipgloss.Center)
	return lipgloss.JoinVertical(lipgloss.Left,
		centered.Render(framed),
		centered.MarginBottom(1).Render(separator),
	)
}

// ShowBanner prints Banner to stdout.
func ShowBanner(version string) {
	fmt.Println(Banner(version))
}
