package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/chat"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/profile"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/speech"
)

var ModalWidth = 60

const (
	HistoryPageSize = 10
)

// QuickPrompts are the welcome-screen suggestions; selecting one sends it as
// a normal draft.
var QuickPrompts = []struct {
	Label string
	Desc  string
}{
	{"Create an image", "Generate any picture"},
	{"Help me with writing", "Essays, stories, or emails"},
	{"Solve a problem step by step", "Step-by-step help"},
	{"Brainstorm ideas with me", "Get new ideas"},
	{"Help me write some code", "Write or fix code"},
	{"Search the web for", "Find live info"},
}

type ErrMsg error

// ReplyMsg carries the appended assistant message after a send completes.
type ReplyMsg struct {
	Reply models.Message
}

// SendRejectedMsg signals an empty-draft no-op.
type SendRejectedMsg struct{}

// VoiceMsg carries a recognized transcript (or the capture failure).
type VoiceMsg struct {
	Transcript string
	Err        error
}

type Model struct {
	Viewport  viewport.Model
	TextInput textarea.Model
	NameInput textinput.Model
	Spinner   spinner.Model
	Renderer  *glamour.TermRenderer

	Orchestrator *chat.Orchestrator
	Composer     *chat.Composer
	Profiles     *profile.Manager
	Profile      models.Profile
	Recognizer   speech.Recognizer
	ImageDir     string

	Mode      models.Mode
	Loading   bool
	Listening bool
	Err       error
	Notice    string

	// Rendered transcript, parallel to the orchestrator's log, plus the
	// cumulative line offsets used by jump-to-message.
	Messages    []string
	LineOffsets []int

	// ImagePaths maps message ids to exported image files.
	ImagePaths map[string]string

	WindowWidth  int
	WindowHeight int

	HistoryOpen        bool
	HistorySelectedIdx int
	HistoryPage        int
	HistoryItems       []models.Message

	SettingsOpen        bool
	SettingsSelectedIdx int

	ProfileOpen      bool
	ShortcutsOpen    bool
	ConfirmClearOpen bool
	QuickOpen        bool
	QuickSelectedIdx int

	listenCancel context.CancelFunc
}
