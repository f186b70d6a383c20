package domain

// Property-list keys used by acknowledgement documents.
// The document root holds an ordered sequence of specifier entries under
// PreferenceSpecifiersKey; the first and last entries carry the header and
// footer, the interior entries carry one acknowledgement each.
const (
	// PreferenceSpecifiersKey holds the ordered entry sequence.
	PreferenceSpecifiersKey = "PreferenceSpecifiers"

	// TitleKey holds an entry's title.
	TitleKey = "Title"

	// FooterTextKey holds body text, for header/footer and
	// acknowledgement entries alike.
	FooterTextKey = "FooterText"

	// LicenseKey holds an acknowledgement entry's license identifier.
	LicenseKey = "License"
)

// Acknow is a single parsed acknowledgement record.
// It is a plain value with no identity beyond its fields; a malformed
// specifier entry yields the zero Acknow rather than being dropped.
type Acknow struct {
	// Title is the acknowledged component's name.
	Title string `json:"title"`

	// Text is the license text after line-break normalisation.
	Text string `json:"text"`

	// License is the license identifier (e.g., "MIT"). Nil when the
	// entry carries none.
	License *string `json:"license,omitempty"`
}

// Acknowledgements is the full result of parsing one document.
type Acknowledgements struct {
	// Header is the text of the first specifier entry, nil when absent.
	Header *string `json:"header,omitempty"`

	// Footer is the text of the last specifier entry, nil when absent.
	Footer *string `json:"footer,omitempty"`

	// Entries are the interior acknowledgement records in document order.
	Entries []Acknow `json:"entries"`
}
