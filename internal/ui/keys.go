package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the key legend shown by the help bar. The bindings here are
// for display; input/modes does the actual dispatch.
type keyMap struct {
	Move          key.Binding
	LineEnds      key.Binding
	TopBottom     key.Binding
	Page          key.Binding
	Jump          key.Binding
	JumpExclusive key.Binding
	Bidirectional key.Binding
	Visual        key.Binding
	Operators     key.Binding
	Escape        key.Binding
	Help          key.Binding
	Pager         key.Binding
	Quit          key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Move:          key.NewBinding(key.WithKeys("h", "j", "k", "l"), key.WithHelp("hjkl", "move")),
		LineEnds:      key.NewBinding(key.WithKeys("0", "$"), key.WithHelp("0/$", "line start/end")),
		TopBottom:     key.NewBinding(key.WithKeys("g", "G"), key.WithHelp("gg/G", "top/bottom")),
		Page:          key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("PgUp/PgDn", "page")),
		Jump:          key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "jump")),
		JumpExclusive: key.NewBinding(key.WithKeys("x", "X"), key.WithHelp("x/X", "jump before/past")),
		Bidirectional: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "toggle bidirectional")),
		Visual:        key.NewBinding(key.WithKeys("v", "V"), key.WithHelp("v/V", "visual/line")),
		Operators:     key.NewBinding(key.WithKeys("d", "y"), key.WithHelp("d/y", "delete/yank")),
		Escape:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Pager:         key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help pager")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.JumpExclusive, k.Bidirectional, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.LineEnds, k.TopBottom, k.Page},
		{k.Jump, k.JumpExclusive, k.Bidirectional, k.Escape},
		{k.Visual, k.Operators, k.Help, k.Pager, k.Quit},
	}
}
