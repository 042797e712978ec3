package installer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/ragconf/internal/config"
	"github.com/sandevgo/ragconf/internal/service/ui"
)

// ReviewStep shows the settings the new .env file will produce
type ReviewStep struct{}

func NewReviewStep() Step {
	return &ReviewStep{}
}

func (s *ReviewStep) Init() tea.Cmd {
	return nil
}

func (s *ReviewStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "y":
			return nil, nil
		case "esc", "n":
			return s, func() tea.Msg { return backMsg{} }
		}
	}
	return s, nil
}

func (s *ReviewStep) View(state *InstallState) string {
	settings, err := config.LoadFrom(state.EnvVars)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", err)) + "\n"
	}

	return "Review your settings:\n\n" +
		ui.RenderSettings(settings) + "\n\n" +
		fmt.Sprintf("They will be saved to %s\n\n", state.EnvPath) +
		"(press enter to save, esc to go back)\n"
}
