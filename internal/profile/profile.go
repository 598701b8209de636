// Package profile manages the persisted user profile and preferences.
package profile

import (
	"encoding/json"
	"log/slog"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/observability"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/store"
)

type Manager struct {
	store  store.Store
	logger *slog.Logger
}

func NewManager(st store.Store) *Manager {
	return &Manager{store: st, logger: observability.Logger()}
}

// Load returns the persisted profile, or defaults when the record is absent
// or corrupt. Never fails startup.
func (m *Manager) Load() models.Profile {
	raw, err := m.store.Load(store.KeyProfile)
	if err != nil {
		m.logger.Error("loading profile", "error", err)
		return models.DefaultProfile()
	}
	if raw == nil {
		return models.DefaultProfile()
	}

	var p models.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		m.logger.Error("profile record corrupt, using defaults", "error", err)
		return models.DefaultProfile()
	}
	if p.DisplayName == "" {
		p.DisplayName = models.DefaultProfile().DisplayName
	}
	return p
}

// Save writes the full profile record.
func (m *Manager) Save(p models.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return m.store.Save(store.KeyProfile, raw)
}
