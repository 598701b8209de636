package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/styles"
)

func GetWelcomeScreen(width, height int) string {
	art := `
 ╭───────────────────────────────────────╮
 │                                       │
 │   ██████╗   ██████╗  ████████╗        │
 │   ██╔══██╗ ██╔═══██╗ ╚══██╔══╝        │
 │   ██║  ██║ ██║   ██║    ██║           │
 │   ██║  ██║ ██║   ██║    ██║           │
 │   ██████╔╝ ╚██████╔╝    ██║           │
 │   ╚═════╝   ╚═════╝     ╚═╝           │
 │                                       │
 ╰───────────────────────────────────────╯
`
	subtitle := "Your personal AI assistant, made by SAI."
	hint := "Ctrl+G: quick prompts • Ctrl+S: shortcuts"

	styledArt := styles.WelcomeArtStyle.Render(art)
	styledSubtitle := styles.WelcomeSubtitleStyle.Render(subtitle)
	styledHint := lipgloss.NewStyle().Foreground(styles.HintColor).Render(hint)

	content := lipgloss.JoinVertical(lipgloss.Center, styledArt, "", styledSubtitle, "", styledHint)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) UpdateViewport() {
	if len(m.Messages) == 0 && !m.Loading {
		m.Viewport.SetContent(GetWelcomeScreen(m.Viewport.Width, m.Viewport.Height))
		return
	}

	content := strings.Join(m.Messages, "\n\n")
	if m.Loading {
		statusText := " Thinking..."
		loadingMsg := styles.DotLabelStyle.Render("DOT AI") + "\n" +
			fmt.Sprintf("%s%s", m.Spinner.View(), statusText)
		if len(m.Messages) > 0 {
			content = content + "\n\n" + loadingMsg
		} else {
			content = loadingMsg
		}
	}
	m.Viewport.SetContent(content)
	m.Viewport.GotoBottom()
}

// RenderAttachmentChip shows the pending image attachment above the input.
func (m *Model) RenderAttachmentChip() string {
	img := m.Composer.Image()
	if img == nil {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	chip := styles.AttachChipStyle.Render(fmt.Sprintf("🖼 %s, %s", img.MIME, humanSize(len(img.Data))))
	return label.Render("Attached: ") + chip + label.Render("  (/detach to remove)")
}

func (m *Model) RenderBottomBar() string {
	modeColor := "#81D4FA"
	if c, ok := styles.ModeColors[string(m.Mode)]; ok {
		modeColor = c
	}
	mode := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(modeColor)).
		Padding(0, 1).
		Render(strings.ToUpper(string(m.Mode)))

	name := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render(TruncateRunes(m.Profile.DisplayName, 20))

	tier := "flash"
	if m.Profile.Preferences.ProModel {
		tier = "pro"
	}
	tierLabel := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#B39DDB")).
		Render(tier)

	var extras []string
	if m.Profile.Preferences.SnowfallEffect {
		extras = append(extras, "❄")
	}
	if m.Listening {
		extras = append(extras, lipgloss.NewStyle().Foreground(lipgloss.Color("#EF9A9A")).Render("● listening"))
	}

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#555555")).
		Render("Tab: mode • Help: ^S")

	leftParts := []string{mode, "  ", name, "  ", tierLabel}
	for _, e := range extras {
		leftParts = append(leftParts, "  ", e)
	}
	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, leftParts...)
	rightSide := help

	availableWidth := m.WindowWidth - lipgloss.Width(leftSide) - lipgloss.Width(rightSide) - 2
	if availableWidth < 0 {
		availableWidth = 0
	}
	spacer := strings.Repeat(" ", availableWidth)

	bar := lipgloss.JoinHorizontal(lipgloss.Center, leftSide, spacer, rightSide)

	return lipgloss.NewStyle().
		Width(m.WindowWidth).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#333333")).
		Padding(0, 1).
		Render(bar)
}

func (m *Model) RenderHistorySelector() string {
	totalPages := (len(m.HistoryItems) + HistoryPageSize - 1) / HistoryPageSize
	if totalPages < 1 {
		totalPages = 1
	}
	title := styles.ModalTitleStyle.Render(fmt.Sprintf("Your Messages (%d) - Page %d/%d", len(m.HistoryItems), m.HistoryPage+1, totalPages))

	var body string
	page := m.historyPageItems()
	if len(page) == 0 {
		body = styles.ModalItemStyle.Render(lipgloss.NewStyle().Foreground(styles.HintColor).Render("No messages yet"))
	} else {
		items := make([]string, 0, len(page))
		for i, msg := range page {
			isSelected := i == m.HistorySelectedIdx
			cursor := "  "
			if isSelected {
				cursor = "> "
			}
			timeStr := RelativeTime(msg.Timestamp)
			prompt := PromptPreview(msg.Text)
			availableWidth := styles.ContentWidth - 2 - len(cursor) - 1 - len(timeStr)
			prompt = TruncateRunes(prompt, availableWidth)

			itemContent := fmt.Sprintf("%s%s %s", cursor, prompt, lipgloss.NewStyle().Foreground(styles.HintColor).Render(timeStr))
			if isSelected {
				items = append(items, styles.ModalSelectedStyle.Render(itemContent))
			} else {
				items = append(items, styles.ModalItemStyle.Render(itemContent))
			}
		}
		body = lipgloss.JoinVertical(lipgloss.Left, items...)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body)
	hint := lipgloss.NewStyle().
		Foreground(styles.HintColor).
		Width(styles.ContentWidth).
		PaddingTop(1).
		Render("↑/↓: navigate • ←/→: page • Enter: jump • x: clear all • Esc: close")

	return lipgloss.JoinVertical(lipgloss.Left, content, hint)
}

func (m *Model) RenderSettingsModal() string {
	title := styles.ModalTitleStyle.Render("Settings")

	onOff := func(v bool) string {
		if v {
			return lipgloss.NewStyle().Foreground(lipgloss.Color("#A5D6A7")).Render("on")
		}
		return lipgloss.NewStyle().Foreground(styles.HintColor).Render("off")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Snowfall effect", onOff(m.Profile.Preferences.SnowfallEffect)},
		{"Pro model", onOff(m.Profile.Preferences.ProModel)},
	}

	var items []string
	for i, row := range rows {
		cursor := "  "
		if i == m.SettingsSelectedIdx {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-20s %s", cursor, row.label, row.value)
		if i == m.SettingsSelectedIdx {
			items = append(items, styles.ModalSelectedStyle.Render(line))
		} else {
			items = append(items, styles.ModalItemStyle.Render(line))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, items...))
	hint := lipgloss.NewStyle().
		Foreground(styles.HintColor).
		Width(styles.ContentWidth).
		PaddingTop(1).
		Render("↑/↓: navigate • Enter/Space: toggle • Esc: close")

	return lipgloss.JoinVertical(lipgloss.Left, content, hint)
}

func (m *Model) RenderProfileModal() string {
	title := styles.ModalTitleStyle.Render("Profile")

	avatarLine := "Avatar: none (/avatar <path> to set)"
	if m.Profile.Avatar != nil {
		avatarLine = fmt.Sprintf("Avatar: %s, %s", m.Profile.Avatar.MIME, humanSize(len(m.Profile.Avatar.Data)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		styles.ModalItemStyle.Render("Display name:"),
		styles.ModalItemStyle.Render(m.NameInput.View()),
		"",
		styles.ModalItemStyle.Render(lipgloss.NewStyle().Foreground(styles.HintColor).Render(avatarLine)),
	)

	hint := lipgloss.NewStyle().
		Foreground(styles.HintColor).
		Width(styles.ContentWidth).
		PaddingTop(1).
		Render("Enter: save • Esc: cancel")

	return lipgloss.JoinVertical(lipgloss.Left, content, hint)
}

func (m *Model) RenderShortcutsModal() string {
	title := styles.ModalTitleStyle.Render("Keyboard Shortcuts")

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Ctrl+C", "Quit Application"},
		{"Tab", "Cycle Chat Mode"},
		{"Ctrl+G", "Quick Prompts"},
		{"Ctrl+H", "Message History"},
		{"Ctrl+P", "Edit Profile"},
		{"Ctrl+O", "Settings"},
		{"Ctrl+V", "Toggle Voice Input"},
		{"Ctrl+X", "Clear Memory"},
		{"Ctrl+S", "View Shortcuts (this menu)"},
		{"/attach", "Attach an image (in input)"},
	}

	var items []string
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFCC80")).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E0E0E0"))

	for _, s := range shortcuts {
		line := fmt.Sprintf("%s %s", keyStyle.Render(s.key), descStyle.Render(s.desc))
		items = append(items, styles.ModalItemStyle.Render(line))
	}

	listContent := lipgloss.JoinVertical(lipgloss.Left, items...)
	content := lipgloss.JoinVertical(lipgloss.Left, title, listContent)

	hint := lipgloss.NewStyle().
		Foreground(styles.HintColor).
		Width(styles.ContentWidth).
		PaddingTop(1).
		Render("Esc/Enter: close")

	return lipgloss.JoinVertical(lipgloss.Left, content, hint)
}

func (m *Model) RenderConfirmClearModal() string {
	title := styles.ModalTitleStyle.Render("Clear Memory")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		styles.ModalItemStyle.Render("Delete the entire conversation?"),
		styles.ModalItemStyle.Render("This cannot be undone."),
	)

	hint := lipgloss.NewStyle().
		Foreground(styles.HintColor).
		Width(styles.ContentWidth).
		PaddingTop(1).
		Render("y/Enter: clear • n/Esc: cancel")

	return lipgloss.JoinVertical(lipgloss.Left, content, hint)
}

func (m *Model) RenderQuickPromptsModal() string {
	title := styles.ModalTitleStyle.Render("Quick Prompts")

	var items []string
	for i, qp := range QuickPrompts {
		isSelected := i == m.QuickSelectedIdx
		cursor := "  "
		if isSelected {
			cursor = "> "
		}
		desc := lipgloss.NewStyle().Foreground(styles.HintColor).Render(qp.Desc)
		line := fmt.Sprintf("%s%s  %s", cursor, qp.Label, desc)
		if isSelected {
			items = append(items, styles.ModalSelectedStyle.Render(line))
		} else {
			items = append(items, styles.ModalItemStyle.Render(line))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, items...))
	hint := lipgloss.NewStyle().
		Foreground(styles.HintColor).
		Width(styles.ContentWidth).
		PaddingTop(1).
		Render("↑/↓: navigate • Enter: use • Esc: close")

	return lipgloss.JoinVertical(lipgloss.Left, content, hint)
}

func (m *Model) renderModal(inner string) string {
	modal := styles.ModalStyle.Width(ModalWidth).Render(inner)
	return lipgloss.Place(
		m.WindowWidth,
		m.WindowHeight,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

func (m *Model) View() string {
	inputWidth := m.WindowWidth - 4
	inputBox := styles.InputBoxStyle.Width(inputWidth).Render(m.TextInput.View())

	var inputParts []string
	if chip := m.RenderAttachmentChip(); chip != "" {
		inputParts = append(inputParts, chip)
	}
	if m.Err != nil {
		inputParts = append(inputParts, styles.ErrorStyle.Render("Error: "+m.Err.Error()))
	} else if m.Notice != "" {
		inputParts = append(inputParts, styles.NoticeStyle.Render(m.Notice))
	}
	inputParts = append(inputParts, inputBox)
	inputSection := lipgloss.JoinVertical(lipgloss.Left, inputParts...)

	chatContent := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle.Render("DOT AI"),
		"",
		m.Viewport.View(),
		"",
		inputSection,
	)
	chatArea := lipgloss.PlaceHorizontal(m.WindowWidth, lipgloss.Center, chatContent)
	bottomBar := m.RenderBottomBar()

	content := lipgloss.JoinVertical(lipgloss.Left, chatArea, bottomBar)

	switch {
	case m.ConfirmClearOpen:
		return m.renderModal(m.RenderConfirmClearModal())
	case m.HistoryOpen:
		return m.renderModal(m.RenderHistorySelector())
	case m.SettingsOpen:
		return m.renderModal(m.RenderSettingsModal())
	case m.ProfileOpen:
		return m.renderModal(m.RenderProfileModal())
	case m.ShortcutsOpen:
		return m.renderModal(m.RenderShortcutsModal())
	case m.QuickOpen:
		return m.renderModal(m.RenderQuickPromptsModal())
	}

	return content
}
