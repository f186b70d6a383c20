// Command acknow parses acknowledgement property lists.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/acknow-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/acknow-cli/internal/adapters/driven/loader/plistfile"
	"github.com/custodia-labs/acknow-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/acknow-cli/internal/core/services"
	"github.com/custodia-labs/acknow-cli/internal/normalisers/linebreak"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "acknow: %v\n", err)
		os.Exit(1)
	}

	acknowledgements := services.NewAcknowledgementService(plistfile.New(), linebreak.New())
	settings := services.NewSettingsService(configStore)

	cli.SetVersion(version)
	cli.SetServices(acknowledgements, settings)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
