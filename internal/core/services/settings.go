package services

import (
	"fmt"

	"github.com/custodia-labs/acknow-cli/internal/core/domain"
	"github.com/custodia-labs/acknow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/acknow-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDefaultFile = "acknowledgements.default_file"
	keyWrapWidth   = "output.wrap_width"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}

	defaults := domain.DefaultAppSettings()
	settings := &domain.AppSettings{
		DefaultFile: defaults.DefaultFile,
		WrapWidth:   defaults.WrapWidth,
	}

	if file := s.configStore.GetString(keyDefaultFile); file != "" {
		settings.DefaultFile = file
	}
	if _, ok := s.configStore.Get(keyWrapWidth); ok {
		settings.WrapWidth = s.configStore.GetInt(keyWrapWidth)
	}

	return settings, nil
}

// SetDefaultFile updates the default acknowledgements file.
// An empty path clears the setting.
func (s *SettingsService) SetDefaultFile(path string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	return s.configStore.Set(keyDefaultFile, path)
}

// SetWrapWidth updates the license text wrap width.
func (s *SettingsService) SetWrapWidth(width int) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if width < 0 {
		return fmt.Errorf("wrap width must not be negative: %w", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyWrapWidth, width)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
