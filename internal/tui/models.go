package tui

type View int

const (
	ViewBrowse View = iota
	ViewSort
	ViewDetail
	ViewHelp
)

func (v View) String() string {
	switch v {
	case ViewSort:
		return "sort"
	case ViewDetail:
		return "detail"
	case ViewHelp:
		return "help"
	default:
		return "browse"
	}
}
