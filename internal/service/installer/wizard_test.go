package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sandevgo/ragconf/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func typeKey(t *testing.T, m model, key string) {
	t.Helper()
	step, ok := m.steps[0].(*APIKeyStep)
	require.True(t, ok)
	step.input.SetValue(key)
}

func TestAPIKeyStep_RejectsEmpty(t *testing.T) {
	t.Parallel()

	state := NewInstallState(".env", false)
	step := NewAPIKeyStep()

	next, _ := step.Update(enterKey, state, 80, 24)
	assert.Same(t, step, next)
	assert.NotContains(t, state.EnvVars, config.APIKeyVar)
	assert.Contains(t, step.View(state), "must not be empty")
}

func TestAPIKeyStep_StoresKeyVerbatim(t *testing.T) {
	t.Parallel()

	state := NewInstallState(".env", false)
	step := NewAPIKeyStep().(*APIKeyStep)
	step.input.SetValue(" sk-or-v1-abc ")

	next, _ := step.Update(enterKey, state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, " sk-or-v1-abc ", state.EnvVars[config.APIKeyVar])
}

func TestAPIKeyStep_MasksInput(t *testing.T) {
	t.Parallel()

	state := NewInstallState(".env", false)
	step := NewAPIKeyStep().(*APIKeyStep)
	step.input.SetValue("sk-or-v1-secret")

	assert.NotContains(t, step.View(state), "sk-or-v1-secret")
}

func TestReviewStep(t *testing.T) {
	t.Parallel()

	state := NewInstallState("/tmp/ragconf/.env", false)
	state.EnvVars[config.APIKeyVar] = "sk-or-v1-0123456789abcdef"
	step := NewReviewStep()

	view := step.View(state)
	assert.Contains(t, view, "sk-or-...cdef")
	assert.NotContains(t, view, "sk-or-v1-0123456789abcdef")
	assert.Contains(t, view, "/tmp/ragconf/.env")

	next, cmd := step.Update(escKey, state, 80, 24)
	assert.Same(t, step, next)
	require.NotNil(t, cmd)
	assert.IsType(t, backMsg{}, cmd())

	next, _ = step.Update(enterKey, state, 80, 24)
	assert.Nil(t, next)
}

func TestWizard_SavesEnvFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	m := initialModel(NewInstallState(path, false))

	typeKey(t, m, "sk-or-v1-wizard")
	m, _ = send(t, m, enterKey)
	assert.Equal(t, 1, m.currentStep)

	m, cmd := send(t, m, enterKey)
	assert.Equal(t, 2, m.currentStep)
	require.NotNil(t, cmd)

	// The save step is driven by the message its Init produces.
	m, _ = send(t, m, cmd())
	assert.Equal(t, 3, m.currentStep)
	assert.Equal(t, "Configuration complete!\n", m.View())

	state, err := result(m)
	require.NoError(t, err)
	assert.True(t, state.Saved)

	read, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{config.APIKeyVar: "sk-or-v1-wizard"}, read)
}

func TestWizard_BackFromReview(t *testing.T) {
	t.Parallel()

	m := initialModel(NewInstallState(filepath.Join(t.TempDir(), ".env"), false))

	typeKey(t, m, "sk-or-v1-first")
	m, _ = send(t, m, enterKey)
	require.Equal(t, 1, m.currentStep)

	m, cmd := send(t, m, escKey)
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.Equal(t, 0, m.currentStep)
}

func TestWizard_ExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OPENROUTER_API_KEY=old\n"), 0600))

	m := initialModel(NewInstallState(path, false))
	typeKey(t, m, "sk-or-v1-new")
	m, _ = send(t, m, enterKey)
	m, cmd := send(t, m, enterKey)
	m, _ = send(t, m, cmd())

	assert.Equal(t, 2, m.currentStep, "save step stays on error")
	assert.Contains(t, m.View(), "already exists")

	_, err := result(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save settings")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "OPENROUTER_API_KEY=old\n", string(data))
}

func TestWizard_Overwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OPENROUTER_API_KEY=old\n"), 0600))

	m := initialModel(NewInstallState(path, true))
	typeKey(t, m, "sk-or-v1-new")
	m, _ = send(t, m, enterKey)
	m, cmd := send(t, m, enterKey)
	m, _ = send(t, m, cmd())

	_, err := result(m)
	require.NoError(t, err)

	read, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-or-v1-new", read[config.APIKeyVar])
}

func TestWizard_CtrlC(t *testing.T) {
	t.Parallel()

	m := initialModel(NewInstallState(filepath.Join(t.TempDir(), ".env"), false))
	m, _ = send(t, m, ctrlC)

	assert.True(t, m.quitting)
	assert.Equal(t, "Setup cancelled.\n", m.View())

	_, err := result(m)
	assert.ErrorIs(t, err, ErrInterrupted)
}
