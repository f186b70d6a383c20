package driving

import "github.com/custodia-labs/acknow-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// SetDefaultFile updates the default acknowledgements file.
	SetDefaultFile(path string) error

	// SetWrapWidth updates the license text wrap width.
	// Zero means wrap to the terminal width.
	SetWrapWidth(width int) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
