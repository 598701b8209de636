package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/chat"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/profile"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/speech"
)

// Deps are the injected collaborators for the program; every dependency is
// substitutable in tests.
type Deps struct {
	Orchestrator *chat.Orchestrator
	Profiles     *profile.Manager
	Recognizer   speech.Recognizer
	ImageDir     string
}

func InitialModel(deps Deps) Model {
	ti := textarea.New()
	ti.Placeholder = "Message DOT..."
	ti.Prompt = "❯ "
	ti.ShowLineNumbers = false
	ti.CharLimit = 0
	ti.MaxHeight = 6
	ti.SetHeight(2)
	ti.SetWidth(80)
	ti.FocusedStyle.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	ti.BlurredStyle.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	ti.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color("#545454"))
	ti.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color("#545454"))
	ti.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ti.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ti.Focus()

	ni := textinput.New()
	ni.Placeholder = "Display name"
	ni.CharLimit = 64
	ni.Width = ModalWidth - 8

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))

	vp := viewport.New(60, 15)

	m := Model{
		TextInput:    ti,
		NameInput:    ni,
		Viewport:     vp,
		Spinner:      sp,
		Orchestrator: deps.Orchestrator,
		Composer:     &chat.Composer{},
		Profiles:     deps.Profiles,
		Recognizer:   deps.Recognizer,
		ImageDir:     deps.ImageDir,
		Mode:         models.ModeGeneral,
		ImagePaths:   map[string]string{},
	}

	m.Profile = deps.Profiles.Load()
	deps.Orchestrator.Load()
	m.RebuildTranscript()

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.TextInput.Cursor.BlinkCmd(),
		m.Spinner.Tick,
	)
}

func NewProgram(deps Deps) *tea.Program {
	m := InitialModel(deps)
	return tea.NewProgram(&m, tea.WithAltScreen())
}
