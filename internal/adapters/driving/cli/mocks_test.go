package cli

import (
	"context"

	"github.com/custodia-labs/acknow-cli/internal/core/domain"
)

// fakeAckService serves a fixed parse result.
type fakeAckService struct {
	acks     domain.Acknowledgements
	lastPath string
}

func (f *fakeAckService) Load(_ context.Context, path string) domain.Acknowledgements {
	f.lastPath = path
	return f.acks
}

func (f *fakeAckService) Parse(_ domain.Dict) domain.Acknowledgements {
	return f.acks
}

// fakeSettingsService serves fixed settings and records updates.
type fakeSettingsService struct {
	settings    domain.AppSettings
	err         error
	defaultFile *string
	wrapWidth   *int
}

func (f *fakeSettingsService) Get() (*domain.AppSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	settings := f.settings
	return &settings, nil
}

func (f *fakeSettingsService) SetDefaultFile(path string) error {
	f.defaultFile = &path
	return f.err
}

func (f *fakeSettingsService) SetWrapWidth(width int) error {
	f.wrapWidth = &width
	return f.err
}

func (f *fakeSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// strPtr is a test helper for optional strings.
func strPtr(s string) *string {
	return &s
}

// sampleAcks is a well-formed three-entry parse result.
func sampleAcks() domain.Acknowledgements {
	return domain.Acknowledgements{
		Header: strPtr("Thanks to these projects."),
		Footer: strPtr("Generated with acknow."),
		Entries: []domain.Acknow{
			{Title: "LibraryOne", Text: "License text one.", License: strPtr("MIT")},
			{Title: "LibraryTwo", Text: "License text two."},
			{},
		},
	}
}
