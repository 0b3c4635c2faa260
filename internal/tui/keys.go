package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	pin      key.Binding
	unpin    key.Binding
	syncPath key.Binding
	syncNow  key.Binding
	pause    key.Binding
	refresh  key.Binding
	auth     key.Binding
	copy     key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	pin:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "keep offline")),
	unpin:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "free up space")),
	syncPath: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync file")),
	syncNow:  key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sync all")),
	pause:    key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "pause/resume")),
	refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	auth:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "sign in")),
	copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.pin, k.unpin, k.syncPath, k.syncNow, k.pause, k.refresh, k.auth, k.copy, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.up, k.down}, k.ShortHelp()}
}
