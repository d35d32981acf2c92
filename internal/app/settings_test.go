package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "menukit.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettings_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menukit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: 0.0.0.0:8000\ntoken: abc\ndata_dir: /srv/menus\n"), 0o644))

	s, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8000", s.Addr)
	assert.Equal(t, "abc", s.Token)
	assert.Equal(t, "/srv/menus", s.DataDir)
}

func TestLoadSettings_BackfillsEmpties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menukit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: abc\naddr: \"\"\n"), 0o644))

	s, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9876", s.Addr)
	assert.Equal(t, "data", s.DataDir)
	assert.Equal(t, "abc", s.Token)
}

func TestLoadSettings_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menukit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - junk: ["), 0o644))

	_, err := LoadSettings(path)

	assert.Error(t, err)
}
