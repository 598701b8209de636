package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/styles"
)

// sendCmd runs one conversation turn off the update loop. The orchestrator
// appends and persists the user message before any network activity, so the
// transcript shown while loading is already durable.
func (m *Model) sendCmd(draft models.Draft) tea.Cmd {
	mode := m.Mode
	prof := m.Profile
	return func() tea.Msg {
		reply, ok := m.Orchestrator.Send(context.Background(), draft, mode, prof)
		if !ok {
			return SendRejectedMsg{}
		}
		return ReplyMsg{Reply: reply}
	}
}

// voiceCmd runs one listening session on the optional recognizer.
func (m *Model) voiceCmd(ctx context.Context) tea.Cmd {
	rec := m.Recognizer
	return func() tea.Msg {
		transcript, err := rec.Recognize(ctx)
		return VoiceMsg{Transcript: transcript, Err: err}
	}
}

// RebuildTranscript re-renders every bubble from the orchestrator's snapshot
// and recomputes the line offsets used by jump-to-message.
func (m *Model) RebuildTranscript() {
	msgs := m.Orchestrator.Messages()

	m.Messages = make([]string, 0, len(msgs))
	for _, msg := range msgs {
		if msg.Role == models.RoleAssistant && msg.Image != nil {
			if _, ok := m.ImagePaths[msg.ID]; !ok {
				if path, err := ExportImage(m.ImageDir, msg); err == nil {
					m.ImagePaths[msg.ID] = path
				}
			}
		}
		m.Messages = append(m.Messages, m.FormatMessage(msg))
	}

	m.recomputeOffsets()
	m.UpdateViewport()
}

// AppendBubble appends one rendered bubble without a full rebuild; used for
// the optimistic user bubble while a send is in flight.
func (m *Model) AppendBubble(rendered string) {
	m.Messages = append(m.Messages, rendered)
	m.recomputeOffsets()
	m.UpdateViewport()
}

func (m *Model) recomputeOffsets() {
	m.LineOffsets = make([]int, len(m.Messages))
	offset := 0
	for i, rendered := range m.Messages {
		m.LineOffsets[i] = offset
		offset += strings.Count(rendered, "\n") + 2 // +1 trailing line, +1 separator
	}
}

// JumpToMessage scrolls the viewport so the given message is at the top.
func (m *Model) JumpToMessage(id string) {
	_, idx, ok := m.Orchestrator.JumpTo(id)
	if !ok || idx >= len(m.LineOffsets) {
		return
	}
	m.Viewport.SetYOffset(m.LineOffsets[idx])
}

// FormatMessage renders one conversation turn as a transcript bubble.
func (m *Model) FormatMessage(msg models.Message) string {
	if msg.Role == models.RoleUser {
		return m.formatUserMessage(msg)
	}
	return m.formatAssistantMessage(msg)
}

func (m *Model) formatUserMessage(msg models.Message) string {
	label := styles.UserLabelStyle.Render(strings.ToUpper(m.Profile.DisplayName)) +
		styles.TimestampStyle.Render(msg.Timestamp.Format("15:04"))

	body := msg.Text
	if msg.Image != nil {
		note := fmt.Sprintf("[attached image, %s]", humanSize(len(msg.Image.Data)))
		if body == "" {
			body = note
		} else {
			body = body + "\n" + note
		}
	}

	width := m.Viewport.Width - 4
	if width < 20 {
		width = 20
	}
	return label + "\n" + styles.UserMsgStyle.Width(width).Render(body)
}

func (m *Model) formatAssistantMessage(msg models.Message) string {
	label := styles.DotLabelStyle.Render("DOT AI") +
		styles.TimestampStyle.Render(msg.Timestamp.Format("15:04"))

	body := msg.Text
	if m.Renderer != nil {
		if rendered, err := m.Renderer.Render(msg.Text); err == nil {
			body = strings.TrimSpace(rendered)
		}
	}

	parts := []string{label, styles.DotMsgStyle.Render(body)}

	if msg.Image != nil {
		note := fmt.Sprintf("[generated image, %s]", humanSize(len(msg.Image.Data)))
		if path, ok := m.ImagePaths[msg.ID]; ok {
			note = fmt.Sprintf("[generated image saved to %s]", path)
		}
		parts = append(parts, styles.ImageNoteStyle.Render(note))
	}

	for _, src := range msg.Sources {
		title := src.Title
		if title == "" {
			title = "Source"
		}
		parts = append(parts, styles.SourceChipStyle.Render(fmt.Sprintf("↗ %s — %s", title, src.URI)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ExportImage writes an inline image payload to the image directory so the
// terminal user has a file to open. Idempotent per message id.
func ExportImage(dir string, msg models.Message) (string, error) {
	if msg.Image == nil {
		return "", fmt.Errorf("message %s has no image", msg.ID)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	path := filepath.Join(dir, msg.ID+extForMIME(msg.Image.MIME))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, msg.Image.Data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

func extForMIME(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

func humanSize(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	if n < 1024*1024 {
		return fmt.Sprintf("%d KB", n/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
}

// PromptPreview condenses a user turn to a single history line.
func PromptPreview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "(image)"
	}
	return s
}

// TruncateRunes truncates by display width, appending an ellipsis.
func TruncateRunes(s string, max int) string {
	if max <= 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max-1, "…")
}

// RelativeTime renders a timestamp as a short "ago" string.
func RelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// WrappedLineCount estimates how many lines value occupies at width.
func WrappedLineCount(value string, width int) int {
	if width <= 0 {
		return 1
	}
	lines := 0
	for _, line := range strings.Split(value, "\n") {
		w := runewidth.StringWidth(line)
		n := w/width + 1
		lines += n
	}
	if lines < 1 {
		lines = 1
	}
	return lines
}
