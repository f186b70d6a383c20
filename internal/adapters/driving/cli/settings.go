package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage CLI settings",
	Long:  `View or change persisted settings such as the default file and wrap width.`,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Changes a setting. Supported keys:

  default-file   acknowledgements plist used when no file argument is given
  wrap-width     column width for license text output (0 = terminal width)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	defaultFile := settings.DefaultFile
	if defaultFile == "" {
		defaultFile = "(not set)"
	}

	cmd.Printf("default-file: %s\n", defaultFile)
	cmd.Printf("wrap-width:   %d\n", settings.WrapWidth)
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	switch args[0] {
	case "default-file":
		cmd.Println(settings.DefaultFile)
	case "wrap-width":
		cmd.Println(settings.WrapWidth)
	default:
		return fmt.Errorf("unknown setting: %s", args[0])
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]

	switch key {
	case "default-file":
		if err := settingsService.SetDefaultFile(value); err != nil {
			return fmt.Errorf("failed to set default-file: %w", err)
		}
	case "wrap-width":
		width, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("wrap-width must be an integer: %s", value)
		}
		if err := settingsService.SetWrapWidth(width); err != nil {
			return fmt.Errorf("failed to set wrap-width: %w", err)
		}
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
