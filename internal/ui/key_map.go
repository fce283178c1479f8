package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	open     key.Binding
	play     key.Binding
	back     key.Binding
	next     key.Binding
	prev     key.Binding
	autoplay key.Binding
	stop     key.Binding
	browser  key.Binding
	chat     key.Binding
	send     key.Binding
	close    key.Binding
	latest   key.Binding
	scroll   key.Binding
	copy     key.Binding
	quit     key.Binding
	forceQ   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		open:     key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "open course")),
		play:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
		back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		next:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next category")),
		prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev category")),
		autoplay: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "autoplay")),
		stop:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		browser:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in browser")),
		chat:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "ask Nova")),
		send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close chat")),
		latest:   key.NewBinding(key.WithKeys("end", "ctrl+g"), key.WithHelp("end", "latest")),
		scroll:   key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
		copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy answer")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		forceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.chat, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.open, k.next, k.prev},
		{k.play, k.autoplay, k.stop, k.browser, k.back},
		{k.chat, k.send, k.latest, k.copy, k.close},
		{k.quit},
	}
}
