package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var headerJSON bool

var headerCmd = &cobra.Command{
	Use:   "header [file]",
	Short: "Show the document header and footer",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHeader,
}

func init() {
	headerCmd.Flags().BoolVar(&headerJSON, "json", false, "output header and footer as JSON")
	rootCmd.AddCommand(headerCmd)
}

func runHeader(cmd *cobra.Command, args []string) error {
	if acknowledgementService == nil {
		return errors.New("acknowledgement service not configured")
	}

	path, err := resolveFile(args)
	if err != nil {
		return err
	}

	acks := acknowledgementService.Load(context.Background(), path)

	if headerJSON {
		pair := struct {
			Header *string `json:"header"`
			Footer *string `json:"footer"`
		}{acks.Header, acks.Footer}

		data, err := json.MarshalIndent(pair, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal header/footer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Header: %s\n", textOrNone(acks.Header))
	cmd.Printf("Footer: %s\n", textOrNone(acks.Footer))
	return nil
}

func textOrNone(text *string) string {
	if text == nil {
		return "(none)"
	}
	return *text
}
