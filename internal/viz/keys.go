package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Random  key.Binding
	Edit    key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Theme   key.Binding
	Help    key.Binding
	Quit    key.Binding
	Apply   key.Binding
	Discard key.Binding
}

var keys = keyMap{
	Start: key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("enter/s", "start sorting"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab/→", "next algorithm"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab/←", "previous algorithm"),
	),
	Random: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "random array"),
	),
	Edit: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "custom array"),
	),
	Faster: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "delay -100ms"),
	),
	Slower: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "delay +100ms"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "cycle theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Discard: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Start, k.Next, k.Random, k.Edit, k.Slower, k.Faster, k.Help, k.Quit}
}

func (k keyMap) full() []key.Binding {
	return []key.Binding{k.Start, k.Next, k.Prev, k.Random, k.Edit, k.Slower, k.Faster, k.Theme, k.Help, k.Quit}
}
