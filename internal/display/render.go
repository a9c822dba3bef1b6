package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aymendh/edvox/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	modeInsertStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#bbf7d0")).
			Foreground(lipgloss.Color("#14532d")).
			Bold(true)

	modeCommandStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#bae6fd")).
				Foreground(lipgloss.Color("#0c4a6e")).
				Bold(true)

	cursorStyle = lipgloss.NewStyle().Reverse(true)

	gutterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	annotationMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#94a3b8"))

	statusMsgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	helpBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	helpHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Token colors by syntax category.
	tokenStyles = map[domain.Category]lipgloss.Style{
		domain.CategoryPlain:    lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d8")),
		domain.CategoryConstant: lipgloss.NewStyle().Foreground(lipgloss.Color("#fde68a")),
		domain.CategoryEntity:   lipgloss.NewStyle().Foreground(lipgloss.Color("#bae6fd")),
		domain.CategoryKeyword:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f0abfc")),
		domain.CategoryStorage:  lipgloss.NewStyle().Foreground(lipgloss.Color("#bbf7d0")),
		domain.CategoryVariable: lipgloss.NewStyle().Foreground(lipgloss.Color("#e4e4e7")),
	}
)

// ── View ─────────────────────────────────────────────────────────

func (m model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	textRows := m.height - 2 // status bar + prompt line
	if textRows < 1 {
		textRows = 1
	}
	scroll := m.scrollFor(textRows)

	var b strings.Builder
	for i := 0; i < textRows; i++ {
		row := scroll + i
		if row < m.buf.LineCount() {
			b.WriteString(m.renderRow(row))
		} else {
			b.WriteString(gutterStyle.Render("~"))
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.renderStatusBar())
	b.WriteByte('\n')

	if m.searching {
		b.WriteString(m.search.View())
	} else if m.status != "" {
		b.WriteString(statusMsgStyle.Render(m.status))
	} else {
		b.WriteString(helpHintStyle.Render("? for help"))
	}
	return b.String()
}

// scrollFor keeps the cursor row inside the visible window.
func (m model) scrollFor(textRows int) int {
	cur := m.buf.Cursor()
	if cur.Row >= textRows {
		return cur.Row - textRows + 1
	}
	return 0
}

// renderRow draws one buffer line: annotation gutter, then the
// highlighted tokens with the cursor cell reversed.
func (m model) renderRow(row int) string {
	var b strings.Builder

	if m.eng.RowHasAnnotation(row) {
		b.WriteString(annotationMarkStyle.Render("●"))
	} else {
		b.WriteString(" ")
	}
	b.WriteString(" ")

	cur := m.buf.Cursor()
	cursorCol := -1
	if row == cur.Row {
		cursorCol = cur.Column
	}

	col := 0
	for _, tok := range m.buf.TokensForRow(row) {
		style := tokenStyles[domain.ParseCategory(tok.Type)]
		end := col + len(tok.Value)

		if cursorCol >= col && cursorCol < end {
			at := cursorCol - col
			b.WriteString(style.Render(tok.Value[:at]))
			b.WriteString(cursorStyle.Render(tok.Value[at : at+1]))
			b.WriteString(style.Render(tok.Value[at+1:]))
		} else {
			b.WriteString(style.Render(tok.Value))
		}
		col = end
	}

	// Cursor sitting past the last character.
	if cursorCol >= col {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

func (m model) renderStatusBar() string {
	cur := m.buf.Cursor()

	var mode string
	switch m.eng.Mode() {
	case domain.ModeInsert:
		mode = modeInsertStyle.Render(" INSERT ")
	case domain.ModeCommand:
		mode = modeCommandStyle.Render(" COMMAND ")
	default:
		mode = barBg.Render(" " + strings.ToUpper(m.buf.ModalState()) + " ")
	}

	var toggles []string
	if m.eng.RowLocationEnabled() {
		toggles = append(toggles, "loc")
	}
	if m.eng.DisplacementEnabled() {
		toggles = append(toggles, "disp")
	}
	right := fmt.Sprintf("%d:%d", cur.Row+1, cur.Column+1)
	if len(toggles) > 0 {
		right = "[" + strings.Join(toggles, " ") + "]  " + right
	}

	left := mode + barBg.Render(" edvox ")
	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if pad < 1 {
		pad = 1
	}
	return left + barBg.Render(strings.Repeat(" ", pad)+right+" ")
}

func (m model) renderHelp() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("edvox — spoken editor feedback"))
	b.WriteString("\n\n")

	b.WriteString(helpBodyStyle.Render("  h j k l / arrows   move the cursor") + "\n")
	b.WriteString(helpBodyStyle.Render("  w b                jump between words") + "\n")
	b.WriteString(helpBodyStyle.Render("  0 $ g G            line and file edges") + "\n")
	b.WriteString(helpBodyStyle.Render("  i / esc            insert and command mode") + "\n")
	b.WriteString(helpBodyStyle.Render("  x / backspace      delete text") + "\n")
	b.WriteString(helpBodyStyle.Render("  / n                search, repeat search") + "\n")
	b.WriteString(helpBodyStyle.Render("  q / ctrl+c         quit") + "\n")
	b.WriteString("\n")

	b.WriteString(helpTitleStyle.Render("Announcement commands"))
	b.WriteString("\n\n")
	for _, c := range m.eng.Commands() {
		b.WriteString(helpBodyStyle.Render("  "+c.Description) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpHintStyle.Render("  press any key to close"))
	return b.String()
}
