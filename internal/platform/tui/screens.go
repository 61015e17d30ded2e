package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bowling-solitaire/internal/games/bowling"
)

const noteWidth = 60

var logo = strings.Join([]string{
	"  ___  ___  _ _ _ _    _ _  _  ___ ",
	" | _ )/ _ \\| | | | |  |_ _|| \\| |/ __|",
	" | _ \\ (_) | V V / |__ | | | .` | (_ |",
	" |___/\\___/ \\_/\\_/|____|___||_|\\_|\\___|",
	"",
	"      S  O  L  I  T  A  I  R  E",
}, "\n")

func (m SessionModel) viewTitle() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerBlock(titleStyle.Render(logo), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render("Press any key to log in..."), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m SessionModel) viewSettings() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("B O W L I N G   S O L I T A I R E", m.width)))
	b.WriteString("\n\n")

	lines := []string{
		"(S) Start game",
		"(H) Hints: " + onOff(m.options.ShowHints),
		"(V) Visible discards: " + onOff(m.options.VisibleDiscards),
		"(I) Instructions",
		"(Tab) High scores",
		"(!) Delete saved options",
		"(Q) Back",
	}
	b.WriteString(centerBlock(boxStyle.Render(strings.Join(lines, "\n")), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(helpStyle.Render(fmt.Sprintf("Player: %s", m.options.Profile)), m.width))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(centerText(warnStyle.Render(m.status), m.width))
		b.WriteString("\n")
	}
	return b.String()
}

var instructions = []string{
	"1. Pick up to three pins that touch each other. Pins you can pick",
	"   have their letter highlighted. Pressing a picked pin again",
	"   drops the whole selection.",
	"",
	"2. When the last digit of the picked pins' sum equals the top card",
	"   of a hand pile, play that pile to knock the pins down.",
	"",
	"3. When no hand card fits, press SPACE to end the roll. After the",
	"   first roll the top card of every pile is thrown away and you",
	"   get one more roll at a spare.",
	"",
	"Strikes and spares score like real bowling. The tenth frame gives",
	"extra rolls for a strike or a spare.",
}

func (m SessionModel) viewInstructions() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("< Bowling Solitaire Instructions >", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(strings.Join(instructions, "\n"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render("Press any key to continue..."), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m SessionModel) viewFinal() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("F I N A L   S C O R E S", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(renderSheet(m.last.rolls), m.width))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Score %d", m.last.total)
	if m.last.high > 0 {
		summary += fmt.Sprintf("    Best %d", m.last.high)
	}
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n")
	if m.last.newBest {
		b.WriteString(centerText(onStyle.Render("New high score!"), m.width))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(centerText(warnStyle.Render(m.status), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Press any key to continue..."), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m SessionModel) viewNote() string {
	note, ok := bowling.NoteAt(m.options.StoryPhase, m.noteShown)
	if !ok {
		return m.viewNoteList()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(note.Heading, m.width)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText(fmt.Sprintf("note %d of %d", m.noteShown, bowling.StoryPhases), m.width)))
	b.WriteString("\n\n")
	text := lipgloss.NewStyle().Width(min(noteWidth, max(20, m.width-4))).Render(note.Text)
	b.WriteString(centerBlock(boxStyle.Render(text), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render("Press any key to continue..."), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m SessionModel) viewNoteList() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("M E M O   P A D", m.width)))
	b.WriteString("\n\n")

	var lines []string
	for i, n := range bowling.Notes(m.options.StoryPhase) {
		lines = append(lines, fmt.Sprintf("(%d) %s", i+1, n.Heading))
	}
	for i := m.options.StoryPhase; i < bowling.StoryPhases; i++ {
		lines = append(lines, offStyle.Render(fmt.Sprintf("(%d) ...", i+1)))
	}
	b.WriteString(centerBlock(boxStyle.Render(strings.Join(lines, "\n")), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render("1-3: Read  |  Q: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}
