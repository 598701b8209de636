package chat

import (
	"fmt"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
)

const framingTemplate = "You are DOT, a helpful AI assistant. You were created by SAI. " +
	"Use simple, clear, and professional language. User name: %s. Current mode: %s. " +
	"If anyone asks who created you, say SAI."

// Framing builds the system framing string: assistant persona, creator
// answer, the user's display name and the current mode.
func Framing(mode models.Mode, displayName string) string {
	return fmt.Sprintf(framingTemplate, displayName, mode)
}
