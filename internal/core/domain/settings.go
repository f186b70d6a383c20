package domain

// Default values applied when a setting has never been configured.
const (
	// DefaultWrapWidth is the fallback column width for license text
	// output when the terminal width cannot be determined.
	DefaultWrapWidth = 80
)

// AppSettings holds user-configurable defaults for the CLI.
type AppSettings struct {
	// DefaultFile is the acknowledgements plist used when a command is
	// invoked without a file argument. Empty means none configured.
	DefaultFile string

	// WrapWidth is the column width for wrapped license text output.
	// Zero means wrap to the terminal width.
	WrapWidth int
}

// DefaultAppSettings returns the settings used before any configuration.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		DefaultFile: "",
		WrapWidth:   0,
	}
}
