package driven

import (
	"context"

	"github.com/custodia-labs/acknow-cli/internal/core/domain"
)

// DocumentLoader obtains the root mapping of an acknowledgements document.
// Loaders never fail: on any read or decode problem, or a root that is not
// a string-keyed mapping, they return an empty Dict so the parser can
// degrade to empty output instead of aborting.
type DocumentLoader interface {
	// Load reads and deserializes the document at path.
	Load(ctx context.Context, path string) domain.Dict
}
