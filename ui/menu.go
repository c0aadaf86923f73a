package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"rangeline/inspect"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

const separator = " • "

// KeyMap is the app's key bindings. It implements help.KeyMap.
type KeyMap struct {
	Reset  key.Binding
	Copy   key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy range"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Copy},
		{k.Cancel},
		{k.Help, k.Quit},
	}
}

// Menu is the help bar at the bottom of the screen.
type Menu struct {
	keys          KeyMap
	help          help.Model
	height, width int
	// singleLine forces the short help even when the full help is toggled on.
	singleLine bool
}

func NewMenu(keys KeyMap) *Menu {
	h := help.New()
	h.ShortSeparator = separator
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = sepStyle
	return &Menu{keys: keys, help: h}
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// SetSingleLine limits the menu to the short help.
func (m *Menu) SetSingleLine(singleLine bool) {
	m.singleLine = singleLine
}

// ToggleHelp switches between short and full help.
func (m *Menu) ToggleHelp() {
	m.help.ShowAll = !m.help.ShowAll
}

// ShowingAll reports whether the full help is displayed.
func (m *Menu) ShowingAll() bool {
	return m.help.ShowAll && !m.singleLine
}

func (m *Menu) String() string {
	h := m.help
	h.ShowAll = m.ShowingAll()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Bottom, h.View(m.keys))
}

// InspectNode implements inspect.Introspectable.
func (m *Menu) InspectNode() *inspect.Node {
	return inspect.NewNode("Menu").
		WithBounds(0, 0, m.width, m.height).
		WithState("show_all", m.ShowingAll()).
		WithState("single_line", m.singleLine)
}
