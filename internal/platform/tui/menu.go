package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Door is an entry of the main menu.
type Door int

const (
	DoorBowling Door = iota
	DoorNotes
	DoorGoodbye
)

// MenuItem is a selectable line of the doors menu.
type MenuItem struct {
	Door  Door
	Title string
}

var doorItems = []MenuItem{
	{DoorBowling, "Bowling Solitaire"},
	{DoorNotes, "Memo Pad"},
	{DoorGoodbye, "Goodbye"},
}

// DoorsMenu is the cursor state of the main menu.
type DoorsMenu struct {
	items  []MenuItem
	cursor int

	// NotesLocked hides the memo pad until the first note is unlocked.
	NotesLocked bool
}

// NewDoorsMenu creates the main menu with the cursor on the game.
func NewDoorsMenu() DoorsMenu {
	return DoorsMenu{items: doorItems}
}

// Apply moves the cursor or picks an item. It returns the picked item, if any.
func (m *DoorsMenu) Apply(action MenuAction) (MenuItem, bool) {
	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.Door == DoorNotes && m.NotesLocked {
			return MenuItem{}, false
		}
		return item, true
	}
	return MenuItem{}, false
}

// Pick moves the cursor to item n (1-based) and selects it.
func (m *DoorsMenu) Pick(n int) (MenuItem, bool) {
	if n < 1 || n > len(m.items) {
		return MenuItem{}, false
	}
	m.cursor = n - 1
	return m.Apply(MenuActionSelect)
}

// Cursor returns the highlighted item index.
func (m DoorsMenu) Cursor() int {
	return m.cursor
}

// View renders the menu centered in width.
func (m DoorsMenu) View(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  D O O R S  ", width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a door", width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		title := item.Title
		if item.Door == DoorNotes && m.NotesLocked {
			title = "...Coming soon..."
		}
		b.WriteString(centerText(style.Render(fmt.Sprintf("%s%d. %s", cursor, i+1, title)), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", width)))
	b.WriteString("\n")
	return b.String()
}

// Shared menu styles.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	onStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	boxStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// onOff renders a toggle.
func onOff(v bool) string {
	if v {
		return onStyle.Render("ON ")
	}
	return offStyle.Render("OFF")
}
