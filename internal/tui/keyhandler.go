package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pders01/devtec/internal/catalog"
	"github.com/pders01/devtec/internal/config"
)

type KeyHandler struct {
	app         *App
	config      *config.Config
	keys        keyMap
	modifierKey string
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	return &KeyHandler{
		app:         app,
		config:      cfg,
		keys:        newKeyMap(cfg.Keys),
		modifierKey: cfg.Keys.Modifier + "+",
	}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if kh.isInTextInputMode() {
		return kh.handleTextInputMode(msg)
	}

	if model, cmd, handled := kh.handleCustomKeys(msg); handled {
		return model, cmd
	}

	return kh.delegateToCharm(msg)
}

func (kh *KeyHandler) isInTextInputMode() bool {
	return kh.app.view == ViewBrowse && kh.app.searchInput.Focused()
}

func (kh *KeyHandler) handleTextInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app

	switch {
	case msg.String() == "ctrl+c":
		return a, tea.Quit
	case msg.String() == "esc", msg.String() == "tab", msg.String() == "down":
		kh.blurSearch()
		return a, nil
	case msg.String() == "enter", key.Matches(msg, kh.keys.Search):
		a.applySearch()
		kh.blurSearch()
		return a, nil
	case key.Matches(msg, kh.keys.Sort):
		return kh.openSortList()
	case key.Matches(msg, kh.keys.Theme):
		return a, a.toggleTheme()
	case key.Matches(msg, kh.keys.Top):
		a.scrollToTop()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

// handleCustomKeys handles only our custom action keys
func (kh *KeyHandler) handleCustomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	a := kh.app

	// Global custom keys
	switch {
	case msg.String() == "ctrl+c":
		return a, tea.Quit, true
	case key.Matches(msg, kh.keys.Theme):
		return a, a.toggleTheme(), true
	case key.Matches(msg, kh.keys.Back):
		model, cmd := kh.navigateBack()
		return model, cmd, true
	}

	// View-specific custom keys
	switch a.view {
	case ViewBrowse:
		return kh.handleBrowseKeys(msg)
	case ViewSort:
		return kh.handleSortKeys(msg)
	case ViewDetail:
		return kh.handleDetailKeys(msg)
	case ViewHelp:
		// Any key leaves the help screen.
		a.view = a.previousView
		return a, nil, true
	default:
		return a, nil, false
	}
}

func (kh *KeyHandler) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	a := kh.app

	switch {
	case key.Matches(msg, kh.keys.Quit):
		return a, tea.Quit, true
	case key.Matches(msg, kh.keys.Search):
		a.applySearch()
		return a, nil, true
	case key.Matches(msg, kh.keys.Focus):
		kh.focusSearch()
		return a, textinput.Blink, true
	case key.Matches(msg, kh.keys.Sort):
		model, cmd := kh.openSortList()
		return model, cmd, true
	case key.Matches(msg, kh.keys.Top):
		a.scrollToTop()
		return a, nil, true
	case key.Matches(msg, kh.keys.Help):
		a.previousView = a.view
		a.view = ViewHelp
		return a, nil, true
	}

	if a.loading || len(a.results) == 0 {
		return a, nil, false
	}

	switch {
	case key.Matches(msg, kh.keys.Up):
		kh.moveCard(-1)
		return a, nil, true
	case key.Matches(msg, kh.keys.Down):
		kh.moveCard(1)
		return a, nil, true
	case key.Matches(msg, kh.keys.Left):
		kh.moveTag(-1)
		return a, nil, true
	case key.Matches(msg, kh.keys.Right):
		kh.moveTag(1)
		return a, nil, true
	case key.Matches(msg, kh.keys.Select):
		entry, _ := a.selectedEntry()
		if a.tag >= 0 && a.tag < len(entry.Tags) {
			a.searchTag(entry.Tags[a.tag])
			return a, nil, true
		}
		model, cmd := kh.openDetail()
		return model, cmd, true
	case key.Matches(msg, kh.keys.Detail):
		model, cmd := kh.openDetail()
		return model, cmd, true
	case key.Matches(msg, kh.keys.Open):
		return a, kh.openSelectedLink(), true
	}

	return a, nil, false
}

func (kh *KeyHandler) handleSortKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	a := kh.app

	switch {
	case key.Matches(msg, kh.keys.Select):
		if item, ok := a.sortList.SelectedItem().(sortItem); ok {
			a.setSort(item.option.Order)
			a.view = ViewBrowse
			return a, a.setStatus(MsgSortChanged(item.option.Label), StatusInfo), true
		}
		return a, nil, true
	case key.Matches(msg, kh.keys.Sort), msg.String() == "q":
		a.view = ViewBrowse
		return a, nil, true
	}
	return a, nil, false
}

func (kh *KeyHandler) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	a := kh.app

	switch {
	case key.Matches(msg, kh.keys.Open):
		return a, kh.openSelectedLink(), true
	case key.Matches(msg, kh.keys.Quit), key.Matches(msg, kh.keys.Detail):
		a.view = ViewBrowse
		return a, nil, true
	}
	return a, nil, false
}

// delegateToCharm lets Charm handle all keys we don't intercept
func (kh *KeyHandler) delegateToCharm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app
	var cmd tea.Cmd

	switch a.view {
	case ViewBrowse:
		a.viewport, cmd = a.viewport.Update(msg)
	case ViewSort:
		a.sortList, cmd = a.sortList.Update(msg)
	case ViewDetail:
		a.detail, cmd = a.detail.Update(msg)
	}
	return a, cmd
}

// navigateBack leaves the current view or, in the results, steps back one
// level of selection: tag, then search.
func (kh *KeyHandler) navigateBack() (tea.Model, tea.Cmd) {
	a := kh.app

	switch a.view {
	case ViewSort, ViewDetail, ViewHelp:
		a.view = ViewBrowse
		return a, nil
	}

	if a.tag >= 0 {
		a.tag = -1
		a.redraw()
		return a, nil
	}
	if a.state.SearchTerm != "" || a.searchInput.Value() != "" {
		a.searchInput.SetValue("")
		a.applySearch()
		return a, a.setStatus(MsgSearchReset, StatusInfo)
	}
	return a, nil
}

func (kh *KeyHandler) focusSearch() {
	kh.app.searchInput.Focus()
	kh.app.searchInput.CursorEnd()
	kh.app.redraw()
}

func (kh *KeyHandler) blurSearch() {
	kh.app.searchInput.Blur()
	kh.app.redraw()
	kh.app.ensureVisible()
}

func (kh *KeyHandler) moveCard(delta int) {
	a := kh.app
	next := a.selected + delta
	if next < 0 || next >= len(a.results) {
		return
	}
	a.selected = next
	a.tag = -1
	a.redraw()
	a.ensureVisible()
}

// moveTag walks the selected card's chips; stepping left of the first
// chip selects the card again.
func (kh *KeyHandler) moveTag(delta int) {
	a := kh.app
	entry, ok := a.selectedEntry()
	if !ok {
		return
	}
	next := a.tag + delta
	if next < -1 || next >= len(entry.Tags) {
		return
	}
	a.tag = next
	a.redraw()
}

func (kh *KeyHandler) openSortList() (tea.Model, tea.Cmd) {
	a := kh.app
	a.searchInput.Blur()
	a.sortList.SetItems(sortItems(a.state.Sort))
	for i, opt := range catalog.SortOptions() {
		if opt.Order == a.state.Sort {
			a.sortList.Select(i)
		}
	}
	a.previousView = ViewBrowse
	a.view = ViewSort
	return a, nil
}

func (kh *KeyHandler) openDetail() (tea.Model, tea.Cmd) {
	a := kh.app
	entry, ok := a.selectedEntry()
	if !ok {
		return a, nil
	}
	a.previousView = ViewBrowse
	a.view = ViewDetail
	a.detail.SetContent(MsgLoading)
	return a, a.showDetail(entry)
}

func (kh *KeyHandler) openSelectedLink() tea.Cmd {
	a := kh.app
	entry, ok := a.selectedEntry()
	if !ok {
		return nil
	}
	if entry.Link == "" {
		return a.setStatus(MsgNoLink, StatusWarn)
	}
	return a.openLink(entry)
}

// helpForCurrentView returns the bindings shown in the status bar.
func (kh *KeyHandler) helpForCurrentView() []key.Binding {
	k := kh.keys
	switch kh.app.view {
	case ViewBrowse:
		if kh.app.searchInput.Focused() {
			return []key.Binding{
				key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "buscar")),
				key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "resultados")),
			}
		}
		return k.ShortHelp()
	case ViewSort:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "aplicar")),
			k.Back,
		}
	case ViewDetail:
		return []key.Binding{k.Open, k.Back}
	case ViewHelp:
		return []key.Binding{k.Back}
	default:
		return nil
	}
}
