package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/chat"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/styles"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.Spinner, spCmd = m.Spinner.Update(msg)
		if m.Loading {
			m.UpdateViewport()
		}
		return m, spCmd

	case tea.KeyMsg:
		if handled, model, cmd := m.updateModals(msg); handled {
			return model, cmd
		}

		if isNewlineShortcut(msg) {
			m.TextInput.InsertString("\n")
			m.updateInputLayout()
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyTab:
			m.Mode = nextMode(m.Mode)
			return m, nil

		case tea.KeyCtrlH:
			m.openHistory()
			return m, nil

		case tea.KeyCtrlO:
			m.SettingsOpen = true
			m.SettingsSelectedIdx = 0
			return m, nil

		case tea.KeyCtrlP:
			m.ProfileOpen = true
			m.NameInput.SetValue(m.Profile.DisplayName)
			m.NameInput.Focus()
			return m, nil

		case tea.KeyCtrlS:
			m.ShortcutsOpen = true
			return m, nil

		case tea.KeyCtrlG:
			if !m.Loading {
				m.QuickOpen = true
				m.QuickSelectedIdx = 0
			}
			return m, nil

		case tea.KeyCtrlX:
			if len(m.Orchestrator.Messages()) > 0 {
				m.ConfirmClearOpen = true
			}
			return m, nil

		case tea.KeyCtrlV:
			return m.toggleVoice()

		case tea.KeyEnter:
			return m.submit()
		}

	case ReplyMsg:
		m.Loading = false
		m.RebuildTranscript()
		if err := m.Orchestrator.PersistErr(); err != nil {
			m.Notice = "History could not be saved; continuing in memory."
		}
		return m, nil

	case SendRejectedMsg:
		m.Loading = false
		m.UpdateViewport()
		return m, nil

	case VoiceMsg:
		m.Listening = false
		m.listenCancel = nil
		if msg.Err != nil {
			m.Notice = "Voice input failed: " + msg.Err.Error()
			return m, nil
		}
		if msg.Transcript != "" {
			m.Composer.SetText(m.TextInput.Value())
			m.Composer.AppendTranscript(msg.Transcript)
			m.TextInput.SetValue(m.Composer.Text())
			m.updateInputLayout()
		}
		return m, nil

	case ErrMsg:
		m.Loading = false
		m.Err = msg
		m.UpdateViewport()
		return m, nil

	case tea.WindowSizeMsg:
		m.WindowWidth = msg.Width
		m.WindowHeight = msg.Height

		ModalWidth = msg.Width - 10
		if ModalWidth > 60 {
			ModalWidth = 60
		}
		if ModalWidth < 30 {
			ModalWidth = 30
		}
		styles.ContentWidth = ModalWidth - 6

		chatWidth := msg.Width - 2
		m.Viewport.Width = chatWidth - 2
		m.updateInputLayout()

		glamourStyle := "dark"
		if !lipgloss.HasDarkBackground() {
			glamourStyle = "light"
		}
		m.Renderer, _ = glamour.NewTermRenderer(
			glamour.WithStylePath(glamourStyle),
			glamour.WithWordWrap(chatWidth-6),
		)
		m.RebuildTranscript()
		return m, tea.Batch(tiCmd, vpCmd)
	}

	m.TextInput, tiCmd = m.TextInput.Update(msg)
	m.updateInputLayout()
	m.Viewport, vpCmd = m.Viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

// submit handles Enter in the chat input: slash commands, the loading-flag
// gate, and the normal send.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.TextInput.Value())

	if strings.HasPrefix(input, "/") {
		return m.runCommand(input)
	}

	// A second send while one is in flight is rejected, not queued.
	if m.Loading {
		return m, nil
	}

	m.Composer.SetText(input)
	draft := m.Composer.Take()
	m.TextInput.Reset()
	m.updateInputLayout()
	if draft.Empty() {
		return m, nil
	}

	m.Notice = ""
	m.AppendBubble(m.formatUserMessage(models.Message{
		Role:      models.RoleUser,
		Text:      draft.Text,
		Image:     draft.Image,
		Timestamp: time.Now(),
	}))
	m.Loading = true
	m.UpdateViewport()

	return m, tea.Batch(m.sendCmd(draft), m.Spinner.Tick)
}

func (m *Model) runCommand(input string) (tea.Model, tea.Cmd) {
	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/attach":
		if arg == "" {
			m.Notice = "Usage: /attach <image path>"
			return m, nil
		}
		if err := m.Composer.AttachImageFile(arg); err != nil {
			m.Notice = "Attach failed: " + err.Error()
			return m, nil
		}
		m.Notice = "Image attached. It will be sent with your next message."
		m.clearCommandFromInput()
		return m, nil

	case "/detach":
		m.Composer.ClearImage()
		m.Notice = "Attachment removed."
		m.clearCommandFromInput()
		return m, nil

	case "/avatar":
		if arg == "" {
			m.Notice = "Usage: /avatar <image path>"
			return m, nil
		}
		avatar, err := chat.LoadImageFile(arg)
		if err != nil {
			m.Notice = "Avatar update failed: " + err.Error()
			return m, nil
		}
		m.Profile.Avatar = avatar
		if err := m.Profiles.Save(m.Profile); err != nil {
			m.Notice = "Avatar could not be saved: " + err.Error()
		} else {
			m.Notice = "Avatar updated."
		}
		m.clearCommandFromInput()
		return m, nil

	case "/clear":
		if len(m.Orchestrator.Messages()) > 0 {
			m.ConfirmClearOpen = true
		}
		m.clearCommandFromInput()
		return m, nil
	}

	m.Notice = "Unknown command: " + cmd
	return m, nil
}

func (m *Model) clearCommandFromInput() {
	m.TextInput.Reset()
	m.updateInputLayout()
}

func (m *Model) toggleVoice() (tea.Model, tea.Cmd) {
	if m.Recognizer == nil {
		m.Notice = "Voice input is not available on this platform."
		return m, nil
	}
	if m.Listening {
		if m.listenCancel != nil {
			m.listenCancel()
		}
		return m, nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.listenCancel = cancel
	m.Listening = true
	return m, m.voiceCmd(ctx)
}

func (m *Model) openHistory() {
	m.HistoryOpen = true
	m.HistoryPage = 0
	m.HistorySelectedIdx = 0
	m.refreshHistory()
}

// refreshHistory lists past user turns, newest first.
func (m *Model) refreshHistory() {
	msgs := m.Orchestrator.Messages()
	m.HistoryItems = m.HistoryItems[:0]
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == models.RoleUser {
			m.HistoryItems = append(m.HistoryItems, msgs[i])
		}
	}
}

// updateModals routes key input into whichever overlay is open. Returns
// handled=false when no overlay is open.
func (m *Model) updateModals(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case m.ConfirmClearOpen:
		switch msg.String() {
		case "y", "Y", "enter":
			m.ConfirmClearOpen = false
			m.HistoryOpen = false
			if err := m.Orchestrator.Clear(); err != nil {
				m.Notice = "Memory could not be fully cleared: " + err.Error()
			} else {
				m.Notice = "Memory cleared."
			}
			m.ImagePaths = map[string]string{}
			m.RebuildTranscript()
		case "n", "N", "esc", "ctrl+c":
			m.ConfirmClearOpen = false
		}
		return true, m, nil

	case m.HistoryOpen:
		switch msg.String() {
		case "ctrl+c":
			return true, m, tea.Quit
		case "esc", "ctrl+h":
			m.HistoryOpen = false
		case "up", "k":
			m.moveHistoryCursor(-1)
		case "down", "j":
			m.moveHistoryCursor(1)
		case "left", "h":
			if m.HistoryPage > 0 {
				m.HistoryPage--
				m.HistorySelectedIdx = 0
			}
		case "right", "l":
			if (m.HistoryPage+1)*HistoryPageSize < len(m.HistoryItems) {
				m.HistoryPage++
				m.HistorySelectedIdx = 0
			}
		case "x":
			m.ConfirmClearOpen = true
		case "enter":
			if item, ok := m.selectedHistoryItem(); ok {
				m.HistoryOpen = false
				m.JumpToMessage(item.ID)
			}
		}
		return true, m, nil

	case m.SettingsOpen:
		switch msg.String() {
		case "ctrl+c":
			return true, m, tea.Quit
		case "esc", "ctrl+o":
			m.SettingsOpen = false
		case "up", "k":
			if m.SettingsSelectedIdx > 0 {
				m.SettingsSelectedIdx--
			}
		case "down", "j":
			if m.SettingsSelectedIdx < 1 {
				m.SettingsSelectedIdx++
			}
		case "enter", " ":
			if m.SettingsSelectedIdx == 0 {
				m.Profile.Preferences.SnowfallEffect = !m.Profile.Preferences.SnowfallEffect
			} else {
				m.Profile.Preferences.ProModel = !m.Profile.Preferences.ProModel
			}
			if err := m.Profiles.Save(m.Profile); err != nil {
				m.Notice = "Settings could not be saved: " + err.Error()
			}
		}
		return true, m, nil

	case m.ProfileOpen:
		switch msg.String() {
		case "ctrl+c":
			return true, m, tea.Quit
		case "esc":
			m.ProfileOpen = false
			m.NameInput.Blur()
		case "enter":
			name := strings.TrimSpace(m.NameInput.Value())
			if name != "" {
				m.Profile.DisplayName = name
				if err := m.Profiles.Save(m.Profile); err != nil {
					m.Notice = "Profile could not be saved: " + err.Error()
				} else {
					m.Notice = "Profile saved."
				}
				m.RebuildTranscript()
			}
			m.ProfileOpen = false
			m.NameInput.Blur()
		default:
			var cmd tea.Cmd
			m.NameInput, cmd = m.NameInput.Update(msg)
			return true, m, cmd
		}
		return true, m, nil

	case m.ShortcutsOpen:
		switch msg.String() {
		case "ctrl+c":
			return true, m, tea.Quit
		case "esc", "enter", "ctrl+s":
			m.ShortcutsOpen = false
		}
		return true, m, nil

	case m.QuickOpen:
		switch msg.String() {
		case "ctrl+c":
			return true, m, tea.Quit
		case "esc", "ctrl+g":
			m.QuickOpen = false
		case "up", "k":
			m.QuickSelectedIdx--
			if m.QuickSelectedIdx < 0 {
				m.QuickSelectedIdx = len(QuickPrompts) - 1
			}
		case "down", "j":
			m.QuickSelectedIdx++
			if m.QuickSelectedIdx >= len(QuickPrompts) {
				m.QuickSelectedIdx = 0
			}
		case "enter":
			m.QuickOpen = false
			m.TextInput.SetValue(QuickPrompts[m.QuickSelectedIdx].Label)
			model, cmd := m.submit()
			return true, model, cmd
		}
		return true, m, nil
	}

	return false, m, nil
}

func (m *Model) moveHistoryCursor(delta int) {
	page := m.historyPageItems()
	if len(page) == 0 {
		return
	}
	m.HistorySelectedIdx += delta
	if m.HistorySelectedIdx < 0 {
		m.HistorySelectedIdx = len(page) - 1
	}
	if m.HistorySelectedIdx >= len(page) {
		m.HistorySelectedIdx = 0
	}
}

func (m *Model) historyPageItems() []models.Message {
	start := m.HistoryPage * HistoryPageSize
	if start >= len(m.HistoryItems) {
		return nil
	}
	end := start + HistoryPageSize
	if end > len(m.HistoryItems) {
		end = len(m.HistoryItems)
	}
	return m.HistoryItems[start:end]
}

func (m *Model) selectedHistoryItem() (models.Message, bool) {
	page := m.historyPageItems()
	if m.HistorySelectedIdx < 0 || m.HistorySelectedIdx >= len(page) {
		return models.Message{}, false
	}
	return page[m.HistorySelectedIdx], true
}

func nextMode(mode models.Mode) models.Mode {
	for i, candidate := range models.Modes {
		if candidate == mode {
			return models.Modes[(i+1)%len(models.Modes)]
		}
	}
	return models.ModeGeneral
}

func isNewlineShortcut(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "shift+enter", "shift+return", "ctrl+j", "ctrl+enter", "alt+enter":
		return true
	default:
		return false
	}
}

func (m *Model) updateInputLayout() {
	if m.WindowWidth == 0 || m.WindowHeight == 0 {
		return
	}

	inputWidth := m.WindowWidth - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	contentWidth := inputWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
	}

	maxInputHeight := 6
	lineCount := WrappedLineCount(m.TextInput.Value(), contentWidth)
	if lineCount > maxInputHeight {
		lineCount = maxInputHeight
	}

	m.TextInput.MaxHeight = maxInputHeight
	m.TextInput.SetWidth(inputWidth)
	m.TextInput.SetHeight(lineCount)

	inputBoxHeight := m.TextInput.Height() + 2
	reserved := inputBoxHeight + 6
	viewportHeight := m.WindowHeight - reserved
	if viewportHeight < 5 {
		viewportHeight = 5
	}
	m.Viewport.Height = viewportHeight
}
