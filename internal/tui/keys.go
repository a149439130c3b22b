package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	copyUser   key.Binding
	favorite   key.Binding
	filter     key.Binding
	search     key.Binding
	categories key.Binding
	reveal     key.Binding
	buildInfo  key.Binding
	save       key.Binding
	generate   key.Binding
	showPass   key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	copyUser:   key.NewBinding(key.WithKeys("u")),
	favorite:   key.NewBinding(key.WithKeys("*")),
	filter:     key.NewBinding(key.WithKeys("f")),
	search:     key.NewBinding(key.WithKeys("/")),
	categories: key.NewBinding(key.WithKeys("g")),
	reveal:     key.NewBinding(key.WithKeys(" ")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
	generate:   key.NewBinding(key.WithKeys("ctrl+g")),
	showPass:   key.NewBinding(key.WithKeys("ctrl+r")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
}
