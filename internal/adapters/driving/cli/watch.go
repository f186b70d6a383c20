package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/acknow-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-parse the document on change",
	Long: `Watches the acknowledgements file and prints a parse summary each
time it changes. Press Ctrl-C to stop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if acknowledgementService == nil {
		return errors.New("acknowledgement service not configured")
	}

	path, err := resolveFile(args)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory: editors often replace the file rather
	// than writing it in place, which unregisters a direct file watch.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	target, err := filepath.Abs(path)
	if err != nil {
		target = path
	}

	printSummary(cmd, path)
	cmd.Printf("Watching %s (Ctrl-C to stop)\n", path)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				name = event.Name
			}
			if name != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change event: %s", event)
			printSummary(cmd, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

func printSummary(cmd *cobra.Command, path string) {
	acks := acknowledgementService.Load(context.Background(), path)

	header := "no"
	if acks.Header != nil {
		header = "yes"
	}
	footer := "no"
	if acks.Footer != nil {
		footer = "yes"
	}

	cmd.Printf("[%s] %d entries, header: %s, footer: %s\n",
		time.Now().Format("15:04:05"), len(acks.Entries), header, footer)
}
