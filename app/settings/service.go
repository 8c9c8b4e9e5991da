package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SettingsService is the wails-bound surface for reading and writing
// settings from the frontend.
type SettingsService struct {
	ctx context.Context
}

// NewSettingsService creates a settings service.
func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// Startup stores the wails context.
func (s *SettingsService) Startup(ctx context.Context) {
	s.ctx = ctx
}

// GetSettings returns the effective settings for the frontend.
func (s *SettingsService) GetSettings() Settings {
	return GetEffectiveSettings()
}

// SaveSettings persists settings supplied by the frontend. The stored
// instance id is preserved; the frontend never owns it.
func (s *SettingsService) SaveSettings(updated Settings) error {
	current := GetEffectiveSettings()
	updated.InstanceID = current.InstanceID
	if err := Save(updated); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// EnsureInstanceID generates and persists a stable instance id on first
// startup. Subsequent calls are no-ops.
func (s *SettingsService) EnsureInstanceID() error {
	current := GetEffectiveSettings()
	if current.InstanceID != "" {
		return nil
	}
	current.InstanceID = uuid.NewString()
	return Save(current)
}
