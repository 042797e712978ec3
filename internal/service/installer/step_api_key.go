package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/ragconf/internal/config"
)

// APIKeyStep collects the OpenRouter API key
type APIKeyStep struct {
	input textinput.Model
	empty bool
}

func NewAPIKeyStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "sk-or-v1-..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &APIKeyStep{
		input: ti,
	}
}

func (s *APIKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *APIKeyStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			// Stored verbatim, the loader does not trim either
			value := s.input.Value()
			if value == "" {
				s.empty = true
				return s, nil
			}
			s.empty = false
			state.EnvVars[config.APIKeyVar] = value
			return nil, nil
		}
	}
	return s, cmd
}

func (s *APIKeyStep) View(state *InstallState) string {
	view := "Enter your OpenRouter API Key:\n\n" +
		s.input.View() + "\n\n"
	if s.empty {
		view += errorStyle.Render("The API key must not be empty.") + "\n\n"
	}
	return view + "(press enter to confirm)\n"
}
