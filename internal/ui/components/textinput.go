package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/ui/theme"
)

// PINInput is a masked, digits-only text field with a pass/fail mark
// after submission.
type PINInput struct {
	model  textinput.Model
	length int
	mark   string
}

// NewPINInput creates a focused input that accepts up to length digits.
func NewPINInput(length int) PINInput {
	ti := textinput.New()
	ti.Placeholder = strings.Repeat("·", length)
	ti.CharLimit = length
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Focus()
	return PINInput{model: ti, length: length}
}

func (p PINInput) Init() tea.Cmd {
	return p.model.Focus()
}

// Update drops every single-character key that is not a digit.
func (p PINInput) Update(msg tea.Msg) (PINInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return p, nil
		}
	}
	p.mark = ""
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return p, cmd
}

func (p PINInput) View() string {
	view := p.model.View()
	if p.mark != "" {
		view += " " + p.mark
	}
	return view
}

// Value returns the digits typed so far.
func (p PINInput) Value() string {
	return p.model.Value()
}

// Complete reports whether all digits have been typed.
func (p PINInput) Complete() bool {
	return len(p.model.Value()) == p.length
}

// Submit shows a check or a cross next to the field.
func (p *PINInput) Submit(valid bool) {
	if valid {
		p.mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	} else {
		p.mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
}

// Reset clears the digits and the mark.
func (p *PINInput) Reset() {
	p.model.SetValue("")
	p.mark = ""
}
