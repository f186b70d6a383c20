package driven

// TextNormaliser rewrites license text for display.
// Implementations must be pure and idempotent: the same input always yields
// the same output, and normalising twice equals normalising once.
type TextNormaliser interface {
	// Normalise transforms the given text.
	Normalise(text string) string
}
