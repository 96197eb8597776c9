package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/pders01/devtec/internal/config"
)

// keyMap holds the bindings for every view. Modifier bindings come from
// the config; navigation keys are fixed.
type keyMap struct {
	Search key.Binding
	Focus  key.Binding
	Sort   key.Binding
	Theme  key.Binding
	Open   key.Binding
	Detail key.Binding
	Top    key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Back   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap(cfg config.KeyConfig) keyMap {
	mod := cfg.Modifier + "+"
	b := cfg.Bindings

	return keyMap{
		Search: key.NewBinding(key.WithKeys(mod+b.Search), key.WithHelp(mod+b.Search, "buscar")),
		Focus:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "campo de busca")),
		Sort:   key.NewBinding(key.WithKeys(mod+b.Sort), key.WithHelp(mod+b.Sort, "ordenar")),
		Theme:  key.NewBinding(key.WithKeys(mod+b.Theme), key.WithHelp(mod+b.Theme, "tema")),
		Open:   key.NewBinding(key.WithKeys(mod+b.Open), key.WithHelp(mod+b.Open, "abrir site")),
		Detail: key.NewBinding(key.WithKeys(mod+b.Detail), key.WithHelp(mod+b.Detail, "detalhes")),
		Top:    key.NewBinding(key.WithKeys(mod+b.Top, "home"), key.WithHelp(mod+b.Top, "topo")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "anterior")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "próximo")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "tag anterior")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "próxima tag")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "buscar tag / detalhes")),
		Back:   key.NewBinding(key.WithKeys(b.Back), key.WithHelp(b.Back, "voltar")),
		Help:   key.NewBinding(key.WithKeys(b.Help), key.WithHelp(b.Help, "ajuda")),
		Quit:   key.NewBinding(key.WithKeys(b.Quit, "ctrl+c"), key.WithHelp(b.Quit, "sair")),
	}
}

// ShortHelp implements help.KeyMap for the browse view's status bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Sort, k.Theme, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Search, k.Sort, k.Theme},
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.Open, k.Detail, k.Top, k.Back, k.Help, k.Quit},
	}
}
