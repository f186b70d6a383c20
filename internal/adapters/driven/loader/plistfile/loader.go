// Package plistfile loads acknowledgement documents from property-list files.
package plistfile

import (
	"context"
	"os"

	"howett.net/plist"

	"github.com/custodia-labs/acknow-cli/internal/core/domain"
	"github.com/custodia-labs/acknow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/acknow-cli/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads XML and binary property-list files.
type Loader struct{}

// New creates a new plist file loader.
func New() *Loader {
	return &Loader{}
}

// Load reads and deserializes the plist at path. Per the loader contract it
// never fails: any read or decode problem, or a root that is not a
// dictionary, yields an empty Dict and a warning on the verbose log.
func (l *Loader) Load(_ context.Context, path string) domain.Dict {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("failed to read %s: %v", path, err)
		return domain.Dict{}
	}

	var root any
	if _, err := plist.Unmarshal(data, &root); err != nil {
		logger.Warn("failed to decode %s: %v", path, err)
		return domain.Dict{}
	}

	dict := domain.DictFromAny(root)
	if len(dict) == 0 {
		logger.Debug("document %s has no top-level dictionary entries", path)
	}
	return dict
}
