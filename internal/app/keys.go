package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	Top            key.Binding
	Bottom         key.Binding
	PageDown       key.Binding
	PageUp         key.Binding
	Toggle         key.Binding
	ToggleCategory key.Binding
	SelectAll      key.Binding
	SelectNone     key.Binding
	Filter         key.Binding
	Copy           key.Binding
	Write          key.Binding
	ExportTree     key.Binding
	ToggleMode     key.Binding
	Rescan         key.Binding
	Help           key.Binding
	Quit           key.Binding
}

var keys = keyMap{
	Up:             key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:           key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	Top:            key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:         key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	PageDown:       key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "page down")),
	PageUp:         key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "page up")),
	Toggle:         key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	ToggleCategory: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle category")),
	SelectAll:      key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "all")),
	SelectNone:     key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "none")),
	Filter:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Copy:           key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	Write:          key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write")),
	ExportTree:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export files")),
	ToggleMode:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
	Rescan:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rescan")),
	Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
