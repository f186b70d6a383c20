package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/acknow-cli/internal/core/domain"
)

var (
	showWidth  int
	showNoWrap bool
)

var showCmd = &cobra.Command{
	Use:   "show [file] [index|title]",
	Short: "Print one entry's license text",
	Long: `Prints the normalised license text of a single acknowledgement entry,
selected by its list index or by (case-insensitive) title. With a single
argument the configured default file is used and the argument is the selector.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVar(&showWidth, "width", 0, "wrap width (0 = terminal width)")
	showCmd.Flags().BoolVar(&showNoWrap, "no-wrap", false, "print text without wrapping")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if acknowledgementService == nil {
		return errors.New("acknowledgement service not configured")
	}

	var fileArgs []string
	selector := args[len(args)-1]
	if len(args) == 2 {
		fileArgs = args[:1]
	}

	path, err := resolveFile(fileArgs)
	if err != nil {
		return err
	}

	acks := acknowledgementService.Load(context.Background(), path)

	entry, err := selectEntry(acks.Entries, selector)
	if err != nil {
		return err
	}

	title := entry.Title
	if title == "" {
		title = "(untitled)"
	}
	cmd.Printf("%s\n", title)
	if entry.License != nil {
		cmd.Printf("License: %s\n", *entry.License)
	}
	cmd.Println()

	text := entry.Text
	if !showNoWrap {
		text = wrapText(text, wrapWidth())
	}
	cmd.Println(text)
	return nil
}

// selectEntry picks an entry by index when the selector parses as an
// integer, otherwise by case-insensitive title match.
func selectEntry(entries []domain.Acknow, selector string) (*domain.Acknow, error) {
	if idx, err := strconv.Atoi(selector); err == nil {
		if idx < 0 || idx >= len(entries) {
			return nil, fmt.Errorf("index %d out of range (%d entries): %w", idx, len(entries), domain.ErrNotFound)
		}
		return &entries[idx], nil
	}

	for i := range entries {
		if strings.EqualFold(entries[i].Title, selector) {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("no entry titled %q: %w", selector, domain.ErrNotFound)
}

// wrapWidth resolves the output width: the --width flag, then the
// configured setting, then the terminal, then the fallback default.
func wrapWidth() int {
	if showWidth > 0 {
		return showWidth
	}

	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && settings.WrapWidth > 0 {
			return settings.WrapWidth
		}
	}

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return domain.DefaultWrapWidth
}

// wrapText greedily word-wraps each line of text to width columns.
// Blank lines (paragraph separators left by the normaliser) pass through.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
