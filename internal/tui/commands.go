package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/pders01/devtec/internal/catalog"
	"github.com/pders01/devtec/internal/debuglog"
)

type catalogLoadedMsg struct {
	entries []catalog.Entry
	err     error
}

type detailRenderedMsg struct {
	name    string
	content string
}

type linkOpenedMsg struct {
	name string
}

type errorMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}

// loadCatalog reads the configured source once. Failures still deliver
// an empty catalog.
func (a *App) loadCatalog(ctx context.Context) tea.Cmd {
	source := a.config.Data.Source
	return func() tea.Msg {
		entries, err := a.loader.LoadOrEmpty(ctx, source)
		return catalogLoadedMsg{entries: entries, err: err}
	}
}

// renderDetail renders an entry as markdown with r. The renderer is
// resolved by the caller so the command touches no App state.
func renderDetail(r *glamour.TermRenderer, entry catalog.Entry) tea.Cmd {
	return func() tea.Msg {
		rendered, err := r.Render(detailMarkdown(entry))
		if err != nil {
			debuglog.Warnf("rendering detail for %s: %v", entry.Name, err)
			return detailRenderedMsg{
				name:    entry.Name,
				content: fmt.Sprintf("Falha ao renderizar %s: %v\n\nEsc para voltar.", entry.Name, err),
			}
		}
		return detailRenderedMsg{name: entry.Name, content: rendered}
	}
}

func detailMarkdown(entry catalog.Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", entry.Name)
	fmt.Fprintf(&b, "*Ano de Criação: %d* · Popularidade: **%s**\n\n", entry.CreationYear, formatPopularity(entry.Popularity))

	if entry.Description != "" {
		b.WriteString(entry.Description)
		b.WriteString("\n\n")
	}

	if len(entry.Tags) > 0 {
		b.WriteString("**Tags:** ")
		for i, tag := range entry.Tags {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "`%s`", tag)
		}
		b.WriteString("\n\n")
	}

	if entry.Link != "" {
		fmt.Fprintf(&b, "[Website](%s)\n", entry.Link)
	}

	return b.String()
}

func formatPopularity(p float64) string {
	if p == float64(int64(p)) {
		return fmt.Sprintf("%d", int64(p))
	}
	return fmt.Sprintf("%.1f", p)
}

func (a *App) openLink(entry catalog.Entry) tea.Cmd {
	opener := a.launcher
	return func() tea.Msg {
		if err := opener.Open(entry.Link); err != nil {
			return errorMsg{err: wrapErr("abrir "+entry.Name, err)}
		}
		return linkOpenedMsg{name: entry.Name}
	}
}

// setStatus shows text in the status bar until statusTTL passes or a
// newer message replaces it.
func (a *App) setStatus(text string, kind StatusKind) tea.Cmd {
	a.status = text
	a.statusKind = kind
	a.statusSeq++
	seq := a.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
