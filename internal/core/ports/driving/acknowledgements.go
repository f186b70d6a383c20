package driving

import (
	"context"

	"github.com/custodia-labs/acknow-cli/internal/core/domain"
)

// AcknowledgementService parses acknowledgement documents.
type AcknowledgementService interface {
	// Load reads the document at path and parses it.
	// Loading never fails; a missing or malformed document parses to an
	// Acknowledgements value with nil header/footer and no entries.
	Load(ctx context.Context, path string) domain.Acknowledgements

	// Parse parses an already-loaded root mapping.
	// Pure: no I/O, total over all inputs.
	Parse(root domain.Dict) domain.Acknowledgements
}
