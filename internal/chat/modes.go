package chat

import (
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/gateway"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
)

// reasoningBudgetTokens is the fixed extended-reasoning budget attached to
// requests in reasoning mode. Opaque to this client; passed through as-is.
const reasoningBudgetTokens int32 = 4000

// Config is the AI request configuration a mode implies.
type Config struct {
	WebGrounding    bool
	ReasoningBudget int32
}

// ConfigFor maps an interaction mode to its request configuration. Pure
// function: mode changes only framing and auxiliary capabilities, never the
// transport or persistence path.
func ConfigFor(mode models.Mode) Config {
	switch mode {
	case models.ModeWeb:
		return Config{WebGrounding: true}
	case models.ModeReasoning:
		return Config{ReasoningBudget: reasoningBudgetTokens}
	default:
		return Config{}
	}
}

// TierFor selects the backend model tier from the user's preferences.
func TierFor(profile models.Profile) gateway.Tier {
	if profile.Preferences.ProModel {
		return gateway.TierQuality
	}
	return gateway.TierFast
}
