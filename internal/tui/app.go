package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pders01/devtec/internal/browser"
	"github.com/pders01/devtec/internal/catalog"
	"github.com/pders01/devtec/internal/config"
	"github.com/pders01/devtec/internal/debuglog"
	"github.com/pders01/devtec/internal/render"
	"github.com/pders01/devtec/internal/storage"
	"github.com/pders01/devtec/internal/theme"
)

// Rows taken by the header, the search frame and the status bar.
const chromeHeight = 1 + 3 + 2

// linkOpener opens an entry link outside the terminal.
type linkOpener interface {
	Open(rawURL string) error
}

type App struct {
	config     *config.Config
	loader     *catalog.Loader
	engine     *catalog.Engine
	renderer   *render.Renderer
	themes     *theme.Manager
	launcher   linkOpener
	keyHandler *KeyHandler
	ctx        context.Context

	searchInput textinput.Model
	viewport    viewport.Model
	detail      viewport.Model
	sortList    list.Model
	help        help.Model
	styles      Styles

	view         View
	previousView View

	// state is the only input of the pipeline besides entries.
	state    catalog.State
	entries  []catalog.Entry
	results  []catalog.Entry
	page     render.Page
	offsets  []int
	loading  bool
	selected int
	tag      int

	status     string
	statusKind StatusKind
	statusSeq  int

	width           int
	height          int
	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
	rendererTheme   theme.Theme
}

// NewApp builds the model. store may be nil, in which case the theme is
// not persisted.
func NewApp(ctx context.Context, cfg *config.Config, store *storage.Store) *App {
	var prefs theme.Preferences
	if store != nil {
		prefs = store
	}
	themes := theme.NewManager(prefs)
	current, err := themes.Load()
	if err != nil {
		debuglog.Warnf("loading theme: %v", err)
	}

	si := textinput.New()
	si.Placeholder = "Buscar por nome, descrição ou tag…"
	si.Prompt = "⌕ "
	si.CharLimit = 256

	sortList := list.New(sortItems(catalog.SortNameAsc), list.NewDefaultDelegate(), 0, 0)
	sortList.Title = "› ordenar por"
	sortList.SetShowStatusBar(false)
	sortList.SetFilteringEnabled(false)
	sortList.SetShowHelp(false)

	app := &App{
		config:       cfg,
		loader:       catalog.NewLoader(cfg),
		engine:       catalog.NewEngine(cfg.Data.Locale),
		renderer:     render.NewRenderer(cfg.UI.TagPalette, render.RandomPicker),
		themes:       themes,
		launcher:     browser.NewLauncher(cfg),
		ctx:          ctx,
		searchInput:  si,
		viewport:     viewport.New(0, 0),
		detail:       viewport.New(0, 0),
		sortList:     sortList,
		help:         help.New(),
		styles:       NewStyles(current.Colors(cfg.UI), cfg.UI.CardWidth),
		view:         ViewBrowse,
		previousView: ViewBrowse,
		state:        catalog.NewState(),
		entries:      []catalog.Entry{},
		loading:      true,
		selected:     -1,
		tag:          -1,
	}
	app.keyHandler = NewKeyHandler(app, cfg)

	return app
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.loadCatalog(a.ctx),
		textinput.Blink,
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		if a.view == ViewDetail {
			if entry, ok := a.selectedEntry(); ok {
				cmds = append(cmds, a.showDetail(entry))
			}
		}

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case catalogLoadedMsg:
		a.loading = false
		a.entries = msg.entries
		a.refresh()
		if msg.err != nil {
			cmds = append(cmds, a.setStatus(MsgLoadFailed, StatusWarn))
		} else {
			cmds = append(cmds, a.setStatus(MsgCatalogLoaded(len(msg.entries)), StatusInfo))
		}

	case detailRenderedMsg:
		if a.view == ViewDetail {
			a.detail.SetContent(msg.content)
			a.detail.GotoTop()
		}

	case linkOpenedMsg:
		cmds = append(cmds, a.setStatus(MsgLinkOpened(msg.name), StatusSuccess))

	case errorMsg:
		debuglog.Errorf("%v", msg.err)
		cmds = append(cmds, a.setStatus("✗ "+msg.err.Error(), StatusError))

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.status = ""
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		switch a.view {
		case ViewBrowse:
			a.viewport, cmd = a.viewport.Update(msg)
		case ViewDetail:
			a.detail, cmd = a.detail.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	if a.view == ViewBrowse && a.searchInput.Focused() {
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height

	bodyHeight := max(height-chromeHeight, 3)
	a.viewport.Width = width
	a.viewport.Height = bodyHeight
	a.detail.Width = width
	a.detail.Height = max(height-3, 3)
	a.sortList.SetSize(width, max(height-3, 3))
	a.help.Width = width

	// Frame border and padding, then the prompt and cursor.
	a.searchInput.Width = max(width-4-lipgloss.Width(a.searchInput.Prompt)-1, 10)

	a.redraw()
}

// refresh re-runs the pipeline from the current state and rebuilds the
// page. Chip colors are drawn again here and only here.
func (a *App) refresh() {
	a.results = a.engine.Process(a.entries, a.state)
	a.page = a.renderer.Render(a.results, a.state.SearchTerm)

	a.tag = -1
	if len(a.results) == 0 {
		a.selected = -1
	} else if a.selected < 0 || a.selected >= len(a.results) {
		a.selected = 0
	}

	a.redraw()
}

// redraw lays the current page out again without touching the pipeline.
func (a *App) redraw() {
	sel := render.Selection{Card: a.selected, Tag: a.tag}
	if a.searchInput.Focused() {
		sel = render.NoSelection
	}
	layout := a.page.View(a.styles.Page, a.viewport.Width, sel)
	a.offsets = layout.Offsets
	a.viewport.SetContent(layout.Content)
}

// scrollToTop moves the results to the first line and the cursor to the
// first card.
func (a *App) scrollToTop() {
	if len(a.results) > 0 {
		a.selected = 0
		a.tag = -1
	}
	a.redraw()
	a.viewport.GotoTop()
}

// ensureVisible scrolls so the selected card is on screen, preferring its
// top edge when it is taller than the viewport.
func (a *App) ensureVisible() {
	if a.selected < 0 || a.selected >= len(a.offsets) {
		return
	}

	top := a.offsets[a.selected]
	bottom := a.viewport.TotalLineCount()
	if a.selected+1 < len(a.offsets) {
		bottom = a.offsets[a.selected+1]
	}

	switch {
	case top < a.viewport.YOffset:
		a.viewport.SetYOffset(top)
	case bottom > a.viewport.YOffset+a.viewport.Height:
		a.viewport.SetYOffset(min(top, bottom-a.viewport.Height))
	}
}

func (a *App) selectedEntry() (catalog.Entry, bool) {
	if a.selected < 0 || a.selected >= len(a.results) {
		return catalog.Entry{}, false
	}
	return a.results[a.selected], true
}

// applySearch sets the search term to the raw field value.
func (a *App) applySearch() {
	a.state.SearchTerm = a.searchInput.Value()
	a.refresh()
	a.viewport.GotoTop()
}

// searchTag runs a search for a tag, mirroring it into the field.
func (a *App) searchTag(tag string) {
	a.searchInput.SetValue(tag)
	a.state.SearchTerm = tag
	a.selected = 0
	a.refresh()
	a.scrollToTop()
}

func (a *App) setSort(order catalog.SortOrder) {
	a.state.Sort = order
	a.refresh()
}

// toggleTheme flips and persists the theme, then restyles everything.
func (a *App) toggleTheme() tea.Cmd {
	current, err := a.themes.Toggle()
	a.styles = NewStyles(current.Colors(a.config.UI), a.config.UI.CardWidth)
	a.glamourRenderer = nil
	a.redraw()

	if err != nil {
		return func() tea.Msg { return errorMsg{err: wrapErr("tema", err)} }
	}
	if current == theme.Dark {
		return a.setStatus(MsgThemeDark, StatusInfo)
	}
	return a.setStatus(MsgThemeLight, StatusInfo)
}

func (a *App) showDetail(entry catalog.Entry) tea.Cmd {
	r, err := a.getRenderer()
	if err != nil {
		return func() tea.Msg { return errorMsg{err: wrapErr("renderizador", err)} }
	}
	return renderDetail(r, entry)
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrapWidth := min(max((a.width*9)/10, 40), 120)
	if a.width > 0 && a.width < 50 {
		wordWrapWidth = max(a.width-4, 20)
	}

	current := a.themes.Current()
	if a.glamourRenderer == nil || a.rendererTheme != current || abs(a.rendererWidth-wordWrapWidth) > 10 {
		style := "light"
		if current == theme.Dark {
			style = "dark"
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
		a.rendererTheme = current
	}

	return a.glamourRenderer, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (a *App) View() string {
	var content string

	switch a.view {
	case ViewBrowse:
		content = a.browseView()
	case ViewSort:
		content = lipgloss.NewStyle().
			Width(a.width).
			Height(a.height - 3).
			MaxHeight(a.height - 3).
			Render(a.sortList.View())
	case ViewDetail:
		content = a.detail.View()
	case ViewHelp:
		content = renderCentered(a.width, a.height-3, lipgloss.JoinVertical(
			lipgloss.Center,
			a.styles.Title.Render("› atalhos"),
			"",
			a.help.FullHelpView(a.keyHandler.keys.FullHelp()),
		))
	}

	separator := a.styles.Separator.Render(strings.Repeat("─", max(a.width, 0)))
	return lipgloss.JoinVertical(lipgloss.Top, content, separator, a.statusBar())
}

func (a *App) browseView() string {
	header := renderHeader(a.styles, "› "+AppName+" · "+a.state.Sort.Label(), a.themes.Current().Icon(), a.width)
	input := renderInputFrame(a.styles, a.searchInput.View(), a.searchInput.Focused(), max(a.width-4, 10))

	var body string
	if a.loading {
		body = renderCentered(a.width, a.viewport.Height, GetCompactBanner(a.styles, MsgLoading))
	} else {
		body = a.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, input, body)
}

func (a *App) statusBar() string {
	if a.status != "" {
		return a.styles.StatusBar.Width(a.width).Render(a.styles.status(a.statusKind).Render(a.status))
	}

	bindings := a.keyHandler.helpForCurrentView()
	if a.view != ViewBrowse || a.loading {
		return a.styles.StatusBar.Width(a.width).Render(a.help.ShortHelpView(bindings))
	}

	right := a.styles.Muted.Render(MsgResultsCount(len(a.results), len(a.entries)))
	h := a.help
	h.Width = max(a.width-lipgloss.Width(right)-3, 1)
	left := h.ShortHelpView(bindings)
	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return a.styles.StatusBar.Width(a.width).Render(left + strings.Repeat(" ", gap) + right)
}

type sortItem struct {
	option catalog.SortOption
	active bool
}

func (i sortItem) Title() string {
	if i.active {
		return "● " + i.option.Label
	}
	return "  " + i.option.Label
}

func (i sortItem) Description() string { return "  " + string(i.option.Order) }
func (i sortItem) FilterValue() string { return i.option.Label }

func sortItems(current catalog.SortOrder) []list.Item {
	options := catalog.SortOptions()
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = sortItem{option: opt, active: opt.Order == current}
	}
	return items
}
