package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Back     key.Binding
	Home     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	NextDoa  key.Binding
	PrevDoa  key.Binding

	// Actions
	Quit          key.Binding
	Help          key.Binding
	Escape        key.Binding
	Search        key.Binding
	Jump          key.Binding
	Favorite      key.Binding
	ShowFavorites key.Binding
	ShowAll       key.Binding
	Refresh       key.Binding
	OpenAd        key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "baca doa"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace", "b"),
			key.WithHelp("esc/b", "kembali"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "kembali ke daftar"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right", "pgdown"),
			key.WithHelp("l/→", "halaman berikutnya"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left", "pgup"),
			key.WithHelp("h/←", "halaman sebelumnya"),
		),
		NextDoa: key.NewBinding(
			key.WithKeys("l", "right", "n"),
			key.WithHelp("l/→", "doa selanjutnya"),
		),
		PrevDoa: key.NewBinding(
			key.WithKeys("h", "left", "p"),
			key.WithHelp("h/←", "doa sebelumnya"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "keluar"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "bantuan"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "batal"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "cari doa"),
		),
		Jump: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("C-k", "lompat ke doa"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f", " "),
			key.WithHelp("f", "favorit"),
		),
		ShowFavorites: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "tampilkan favorit"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "semua doa"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "muat ulang"),
		),
		OpenAd: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "buka/tutup iklan"),
		),
	}
}

// Keys is the global key map instance
var Keys = DefaultKeyMap()

// ListHelp returns the bindings shown on the list screen
func (k KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Search, k.Jump, k.NextPage, k.PrevPage,
		k.Favorite, k.ShowFavorites, k.ShowAll, k.Refresh, k.OpenAd, k.Quit}
}

// DetailHelp returns the bindings shown on the detail screen
func (k KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.NextDoa, k.PrevDoa, k.Favorite, k.Back, k.Home, k.OpenAd, k.Quit}
}
