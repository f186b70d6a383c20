package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/acknow-cli/internal/core/domain"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List acknowledgement entries",
	Long: `Parses the acknowledgements document and prints one line per entry.
Uses the configured default file when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output entries as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if acknowledgementService == nil {
		return errors.New("acknowledgement service not configured")
	}

	path, err := resolveFile(args)
	if err != nil {
		return err
	}

	acks := acknowledgementService.Load(context.Background(), path)

	if listJSON {
		return outputListJSON(cmd, acks.Entries)
	}

	return outputListTable(cmd, path, acks.Entries)
}

func outputListJSON(cmd *cobra.Command, entries []domain.Acknow) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputListTable(cmd *cobra.Command, path string, entries []domain.Acknow) error {
	if len(entries) == 0 {
		cmd.Printf("No acknowledgements found in %s\n", path)
		return nil
	}

	cmd.Printf("Acknowledgements in %s:\n\n", path)
	for i := range entries {
		title := entries[i].Title
		if title == "" {
			title = "(untitled)"
		}
		cmd.Printf("  [%d] %s\n", i, title)
		if entries[i].License != nil {
			cmd.Printf("      License: %s\n", *entries[i].License)
		}
	}

	cmd.Printf("\nTotal: %d entries\n", len(entries))
	return nil
}
