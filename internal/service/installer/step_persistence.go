package installer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/ragconf/internal/config"
)

// SaveEnvStep writes the collected configuration to the .env file
type SaveEnvStep struct {
	err error
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if state.Saved {
		return nil, nil
	}
	if s.err != nil {
		return s, nil
	}

	// Perform save synchronously (fast operation)
	if err := config.WriteDotEnv(state.EnvPath, state.EnvVars, state.Overwrite); err != nil {
		s.err = err
		state.Err = err
		return s, nil
	}

	state.Saved = true
	return nil, nil // Signal completion
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if state.Saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}
