// Package cli implements the cobra command tree for the acknow binary.
// Commands talk to the core exclusively through the driving ports;
// services are injected by main via SetServices.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/acknow-cli/internal/core/ports/driving"
	"github.com/custodia-labs/acknow-cli/internal/logger"
)

// version is the build version, injected via SetVersion.
var version = "dev"

// Services used by the commands. Nil services make the commands that
// need them fail with a clear error instead of panicking.
var (
	acknowledgementService driving.AcknowledgementService
	settingsService        driving.SettingsService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "acknow",
	Short: "Inspect acknowledgement property lists",
	Long: `Acknow parses acknowledgement property lists (the Settings.bundle
style document with a PreferenceSpecifiers array) into a header, a footer,
and a list of acknowledgement entries with normalised license text.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the services the commands depend on.
func SetServices(ack driving.AcknowledgementService, settings driving.SettingsService) {
	acknowledgementService = ack
	settingsService = settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveFile picks the document path from the command arguments, falling
// back to the configured default file.
func resolveFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if settingsService != nil {
		settings, err := settingsService.Get()
		if err == nil && settings.DefaultFile != "" {
			logger.Debug("using default file %s", settings.DefaultFile)
			return settings.DefaultFile, nil
		}
	}

	return "", errors.New("no file given and no default file configured")
}
