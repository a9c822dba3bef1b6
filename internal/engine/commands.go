package engine

import (
	"fmt"

	"github.com/aymendh/edvox/internal/domain"
)

// Command describes one user-invocable announcement action. Trigger is
// the keyboard chord (two modifiers plus a key); Name is the logical
// command identifier used by menu surfaces. Descriptions carry the
// literal trigger so menus can show it.
type Command struct {
	Trigger     string
	Name        string
	Description string
	run         func(*Engine) []domain.Action
}

// commandSet is the static ordered command list. Both lookup tables are
// built from it at engine construction.
func commandSet() []Command {
	return []Command{
		{
			Trigger:     "ctrl-alt-a",
			Name:        "speak_line_annotations",
			Description: "Speak annotations on the current line (ctrl-alt-a)",
			run: func(e *Engine) []domain.Action {
				return e.rowAnnotationActions(e.buf.Cursor().Row)
			},
		},
		{
			Trigger:     "ctrl-alt-e",
			Name:        "speak_all_annotations",
			Description: "Speak every annotation in the file (ctrl-alt-e)",
			run:         (*Engine).allAnnotationActions,
		},
		{
			Trigger:     "ctrl-alt-m",
			Name:        "speak_mode",
			Description: "Speak the current editing mode (ctrl-alt-m)",
			run:         (*Engine).modeAnnouncement,
		},
		{
			Trigger:     "ctrl-alt-r",
			Name:        "toggle_row_location",
			Description: "Toggle speaking the cursor location on row changes (ctrl-alt-r)",
			run: func(e *Engine) []domain.Action {
				e.speakRowLocation = !e.speakRowLocation
				return nil
			},
		},
		{
			Trigger:     "ctrl-alt-p",
			Name:        "speak_row_and_column",
			Description: "Speak the cursor row and column (ctrl-alt-p)",
			run: func(e *Engine) []domain.Action {
				c := e.buf.Cursor()
				text := fmt.Sprintf("row %d column %d", c.Row+1, c.Column+1)
				return []domain.Action{domain.Speak(text, domain.Flush, domain.DefaultProfile())}
			},
		},
		{
			Trigger:     "ctrl-alt-d",
			Name:        "toggle_displacement",
			Description: "Toggle speaking the text crossed on column changes (ctrl-alt-d)",
			run: func(e *Engine) []domain.Action {
				e.speakDisplacement = !e.speakDisplacement
				return nil
			},
		},
	}
}

func (e *Engine) indexCommands() {
	e.commands = commandSet()
	e.byTrigger = make(map[string]int, len(e.commands))
	e.byName = make(map[string]int, len(e.commands))
	for i, c := range e.commands {
		e.byTrigger[c.Trigger] = i
		e.byName[c.Name] = i
	}
}

// Commands returns the descriptor list for building menu surfaces.
func (e *Engine) Commands() []Command {
	return e.commands
}

// InvokeTrigger runs the command bound to a keyboard trigger. Unknown
// triggers are ignored.
func (e *Engine) InvokeTrigger(trigger string) {
	if i, ok := e.byTrigger[trigger]; ok {
		e.emit(e.commands[i].run(e))
	}
}

// InvokeCommand runs a command by its logical name. Unknown names are
// ignored.
func (e *Engine) InvokeCommand(name string) {
	if i, ok := e.byName[name]; ok {
		e.emit(e.commands[i].run(e))
	}
}
