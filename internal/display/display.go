// Package display provides the terminal editor surface using Bubble Tea.
//
// The [UI] type owns the whole terminal (alt screen): a highlighted
// buffer view with an annotation gutter, a status bar, a search prompt,
// and a help overlay. Every mutation it applies to the buffer is
// reported to the engine as the matching editor event, so the spoken
// feedback always tracks what is on screen.
package display

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aymendh/edvox/internal/domain"
	"github.com/aymendh/edvox/internal/editor"
	"github.com/aymendh/edvox/internal/engine"
	"github.com/aymendh/edvox/internal/logger"
)

// KeyEchoer speaks single keystrokes. Both the real speaker and the
// no-op voice satisfy it; the engine only gates whether echo is on.
type KeyEchoer interface {
	EchoKey(key string)
}

// UI manages the terminal through Bubble Tea. Call [NewUI] then
// [UI.Run] (blocking).
type UI struct {
	program *tea.Program
	initial model
}

// NewUI creates the editor surface. Call Run() to start.
func NewUI(buf *editor.Buffer, eng *engine.Engine, echo KeyEchoer, log *logger.Logger) *UI {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = searchPromptStyle
	ti.CharLimit = 200

	return &UI{
		initial: model{
			buf:    buf,
			eng:    eng,
			echo:   echo,
			log:    log,
			search: ti,
			width:  80,
			height: 24,
		},
	}
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	u.program = tea.NewProgram(u.initial, tea.WithAltScreen())
	_, err := u.program.Run()
	return err
}

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	buf  *editor.Buffer
	eng  *engine.Engine
	echo KeyEchoer
	log  *logger.Logger

	search    textinput.Model
	searching bool
	lastQuery string
	showHelp  bool
	status    string // transient message shown in the status bar

	width  int
	height int
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = msg.Width - 2
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	m.status = ""

	// Announcement chords go straight to the engine; it silently
	// ignores anything it has no command for.
	if s := msg.String(); strings.HasPrefix(s, "alt+ctrl+") {
		m.eng.InvokeTrigger("ctrl-alt-" + strings.TrimPrefix(s, "alt+ctrl+"))
		return m, nil
	}

	if m.buf.ModalState() == "insert" {
		return m.handleInsertKey(msg)
	}
	return m.handleCommandKey(msg)
}

func (m model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := m.buf.Cursor()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "h", "left":
		m.moveTo(cur.Row, cur.Column-1)
	case "l", "right":
		m.moveTo(cur.Row, cur.Column+1)
	case "j", "down":
		m.moveTo(cur.Row+1, cur.Column)
	case "k", "up":
		m.moveTo(cur.Row-1, cur.Column)
	case "0":
		m.moveTo(cur.Row, 0)
	case "$":
		m.moveTo(cur.Row, len(m.buf.LineText(cur.Row)))
	case "g":
		m.moveTo(0, cur.Column)
	case "G":
		m.moveTo(m.buf.LineCount()-1, cur.Column)
	case "w":
		m.moveCursor(m.buf.WordRight())
	case "b":
		m.moveCursor(m.buf.WordLeft())
	case "i":
		m.setMode("insert")
	case "x":
		if removed := m.buf.DeleteAt(); removed != "" {
			m.eng.OnTextChanged(domain.TextRemove, removed)
			m.relint()
		}
	case "/":
		m.searching = true
		m.search.Reset()
		m.search.Focus()
		return m, textinput.Blink
	case "n":
		m.findNext(m.lastQuery)
	case "?":
		m.showHelp = true
	}
	return m, nil
}

func (m model) handleInsertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.setMode("command")

	case tea.KeyEnter:
		m.buf.InsertNewline()
		m.eng.OnTextChanged(domain.TextInsert, "")
		m.eng.OnCursorChanged(m.buf.Cursor())
		m.relint()

	case tea.KeyBackspace:
		if removed := m.buf.DeleteBack(); removed != "" {
			if removed == "\n" {
				removed = "newline"
			}
			m.eng.OnTextChanged(domain.TextRemove, removed)
			m.eng.OnCursorChanged(m.buf.Cursor())
			m.relint()
		}

	case tea.KeyLeft:
		c := m.buf.Cursor()
		m.moveTo(c.Row, c.Column-1)
	case tea.KeyRight:
		c := m.buf.Cursor()
		m.moveTo(c.Row, c.Column+1)
	case tea.KeyUp:
		c := m.buf.Cursor()
		m.moveTo(c.Row-1, c.Column)
	case tea.KeyDown:
		c := m.buf.Cursor()
		m.moveTo(c.Row+1, c.Column)

	case tea.KeyRunes, tea.KeySpace:
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		m.buf.InsertText(text)
		// The echo path speaks the keystroke; the edit event carries no
		// text so the cursor event that follows stays quiet.
		m.echo.EchoKey(text)
		m.eng.OnTextChanged(domain.TextInsert, "")
		m.eng.OnCursorChanged(m.buf.Cursor())
		m.relint()
	}
	return m, nil
}

func (m model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil

	case tea.KeyEnter:
		query := strings.TrimSpace(m.search.Value())
		m.searching = false
		m.search.Blur()
		if query != "" {
			m.lastQuery = query
			m.findNext(query)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// ── Event wiring ─────────────────────────────────────────────────

// moveTo clamps the target and reports the cursor event only when the
// caret actually landed somewhere new.
func (m *model) moveTo(row, col int) {
	m.moveCursor(domain.Cursor{Row: row, Column: col})
}

func (m *model) moveCursor(target domain.Cursor) {
	before := m.buf.Cursor()
	after := m.buf.SetCursor(target)
	if after != before {
		m.eng.OnCursorChanged(after)
	}
}

func (m *model) setMode(state string) {
	m.buf.SetModalState(state)
	m.eng.OnModalStatusChanged()
}

// relint reruns the diagnostics pass after an edit.
func (m *model) relint() {
	m.eng.OnAnnotationsChanged(editor.Lint(m.buf.Lines()))
}

// findNext scans forward from just past the cursor, wrapping once. The
// cursor event lands first and the search result flushes over it, so
// the matched line is what gets heard.
func (m *model) findNext(query string) {
	if query == "" {
		return
	}

	cur := m.buf.Cursor()
	total := m.buf.LineCount()
	for i := 0; i <= total; i++ {
		row := (cur.Row + i) % total
		line := m.buf.LineText(row)
		from := 0
		if i == 0 {
			from = cur.Column + 1
		}
		if from > len(line) {
			continue
		}
		if col := strings.Index(line[from:], query); col >= 0 {
			m.moveTo(row, from+col)
			m.eng.OnSearchResultChanged(m.buf.LineText(row), true)
			m.status = "/" + query
			return
		}
	}

	m.eng.OnSearchResultChanged(query, false)
	m.status = "no match: " + query
}
