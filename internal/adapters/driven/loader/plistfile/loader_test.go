package plistfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/acknow-cli/internal/core/domain"
	"github.com/custodia-labs/acknow-cli/internal/core/ports/driven"
)

const validPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>StringsTable</key>
	<string>Acknowledgements</string>
	<key>PreferenceSpecifiers</key>
	<array>
		<dict>
			<key>FooterText</key>
			<string>Header text</string>
		</dict>
		<dict>
			<key>Title</key>
			<string>LibraryOne</string>
			<key>FooterText</key>
			<string>License text</string>
			<key>License</key>
			<string>MIT</string>
		</dict>
		<dict>
			<key>FooterText</key>
			<string>Footer text</string>
		</dict>
	</array>
</dict>
</plist>
`

const arrayRootPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<array>
	<string>not a dictionary</string>
</array>
</plist>
`

func writeTempPlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Acknowledgements.plist")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_ValidDocument(t *testing.T) {
	path := writeTempPlist(t, validPlist)

	dict := New().Load(context.Background(), path)

	table, ok := dict.String("StringsTable")
	require.True(t, ok)
	assert.Equal(t, "Acknowledgements", table)

	specifiers, ok := dict.Array(domain.PreferenceSpecifiersKey)
	require.True(t, ok)
	require.Len(t, specifiers, 3)

	second, ok := specifiers[1].AsDict()
	require.True(t, ok)
	title, ok := second.String(domain.TitleKey)
	require.True(t, ok)
	assert.Equal(t, "LibraryOne", title)
	license, ok := second.String(domain.LicenseKey)
	require.True(t, ok)
	assert.Equal(t, "MIT", license)
}

func TestLoad_MissingFile(t *testing.T) {
	dict := New().Load(context.Background(), filepath.Join(t.TempDir(), "absent.plist"))

	assert.Empty(t, dict)
}

func TestLoad_MalformedDocument(t *testing.T) {
	path := writeTempPlist(t, "this is not a plist")

	dict := New().Load(context.Background(), path)

	assert.Empty(t, dict)
}

func TestLoad_NonDictRoot(t *testing.T) {
	path := writeTempPlist(t, arrayRootPlist)

	dict := New().Load(context.Background(), path)

	assert.Empty(t, dict)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeTempPlist(t, "")

	dict := New().Load(context.Background(), path)

	assert.Empty(t, dict)
}

func TestLoader_InterfaceCompliance(t *testing.T) {
	var _ driven.DocumentLoader = (*Loader)(nil)
}
