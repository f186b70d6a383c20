package services

import (
	"context"

	"github.com/custodia-labs/acknow-cli/internal/core/domain"
	"github.com/custodia-labs/acknow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/acknow-cli/internal/core/ports/driving"
)

// Ensure AcknowledgementService implements the interface.
var _ driving.AcknowledgementService = (*AcknowledgementService)(nil)

// AcknowledgementService parses acknowledgement documents.
// The parse itself is total: malformed input degrades to absent header/footer
// and zero-value entries, never an error.
type AcknowledgementService struct {
	loader     driven.DocumentLoader
	normaliser driven.TextNormaliser
}

// NewAcknowledgementService creates a new acknowledgement service.
func NewAcknowledgementService(loader driven.DocumentLoader, normaliser driven.TextNormaliser) *AcknowledgementService {
	return &AcknowledgementService{
		loader:     loader,
		normaliser: normaliser,
	}
}

// Load reads the document at path and parses it.
func (s *AcknowledgementService) Load(ctx context.Context, path string) domain.Acknowledgements {
	if s.loader == nil {
		return domain.Acknowledgements{Entries: []domain.Acknow{}}
	}
	return s.Parse(s.loader.Load(ctx, path))
}

// Parse parses an already-loaded root mapping.
func (s *AcknowledgementService) Parse(root domain.Dict) domain.Acknowledgements {
	specifiers, _ := root.Array(domain.PreferenceSpecifiersKey)
	header, footer := headerFooter(specifiers)

	return domain.Acknowledgements{
		Header:  header,
		Footer:  footer,
		Entries: s.entries(specifiers),
	}
}

// headerFooter derives the header and footer from the first and last
// specifier entries. A one-element sequence serves as both header and
// footer; an empty or missing sequence yields neither.
func headerFooter(specifiers domain.Array) (header, footer *string) {
	if len(specifiers) == 0 {
		return nil, nil
	}
	return footerText(specifiers[0]), footerText(specifiers[len(specifiers)-1])
}

// footerText extracts an entry's FooterText string, or nil when the entry
// is not a mapping or the key holds a non-string.
func footerText(entry domain.Value) *string {
	dict, ok := entry.AsDict()
	if !ok {
		return nil
	}
	text, ok := dict.String(domain.FooterTextKey)
	if !ok {
		return nil
	}
	return &text
}

// entries builds acknowledgement records from the interior specifiers.
// The header and footer are excluded by position (index 0 and len-1), so
// an interior entry that happens to share their field values is kept.
func (s *AcknowledgementService) entries(specifiers domain.Array) []domain.Acknow {
	if len(specifiers) <= 2 {
		return []domain.Acknow{}
	}

	interior := specifiers[1 : len(specifiers)-1]
	entries := make([]domain.Acknow, 0, len(interior))
	for _, specifier := range interior {
		entries = append(entries, s.record(specifier))
	}
	return entries
}

// record converts one interior specifier into an Acknow. An entry missing
// a Title or FooterText string degrades to the zero Acknow so that output
// length and ordering always match the interior sequence.
func (s *AcknowledgementService) record(specifier domain.Value) domain.Acknow {
	dict, ok := specifier.AsDict()
	if !ok {
		return domain.Acknow{}
	}

	title, okTitle := dict.String(domain.TitleKey)
	text, okText := dict.String(domain.FooterTextKey)
	if !okTitle || !okText {
		return domain.Acknow{}
	}

	ack := domain.Acknow{
		Title: title,
		Text:  s.normalise(text),
	}
	if license, ok := dict.String(domain.LicenseKey); ok {
		ack.License = &license
	}
	return ack
}

func (s *AcknowledgementService) normalise(text string) string {
	if s.normaliser == nil {
		return text
	}
	return s.normaliser.Normalise(text)
}
