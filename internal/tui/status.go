package tui

import (
	"fmt"
	"time"
)

// Canonical short status messages used across the app.
const (
	MsgLoading     = "Carregando catálogo…"
	MsgLoadFailed  = "Não foi possível carregar o catálogo"
	MsgThemeDark   = "Tema escuro"
	MsgThemeLight  = "Tema claro"
	MsgNoLink      = "Esta tecnologia não tem site"
	MsgSearchReset = "Busca limpa"
)

// statusTTL is how long transient messages stay before the help returns.
const statusTTL = 4 * time.Second

func MsgLinkOpened(name string) string {
	return fmt.Sprintf("Abrindo site de %s", name)
}

func MsgSortChanged(label string) string {
	return "Ordenação: " + label
}

// MsgResultsCount summarizes how many entries are visible.
func MsgResultsCount(shown, total int) string {
	if total == 1 {
		return fmt.Sprintf("%d de 1 tecnologia", shown)
	}
	return fmt.Sprintf("%d de %d tecnologias", shown, total)
}

func MsgCatalogLoaded(n int) string {
	if n == 1 {
		return "1 tecnologia carregada"
	}
	return fmt.Sprintf("%d tecnologias carregadas", n)
}
