// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecrets(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestLoadNewsAPIKey(t *testing.T) {
	dir := writeSecrets(t, map[string]string{
		NewsAPIKey:  "  0123abcd  \n",
		"other-key": "zzz",
	})
	logger, _ := test.NewNullLogger()

	got, err := Load(dir, logger)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{NewsAPIKey: "0123abcd", "other-key": "zzz"}, got)
}

func TestLoadSkips(t *testing.T) {
	dir := writeSecrets(t, map[string]string{
		NewsAPIKey:        "kept",
		"blank":           "",
		"whitespace-only": " \n\t ",
		".gitkeep":        "",
		".hidden":         "secret",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	logger, _ := test.NewNullLogger()

	got, err := Load(dir, logger)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{NewsAPIKey: "kept"}, got)
}

func TestLoadMissingOrEmptyDirectory(t *testing.T) {
	logger, _ := test.NewNullLogger()

	got, err := Load(filepath.Join(t.TempDir(), "absent"), logger)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Load(t.TempDir(), logger)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadPathIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	logger, _ := test.NewNullLogger()

	_, err := Load(file, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading secrets directory")
}

func TestLoadUnreadableFileIsLogged(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not restrict root")
	}
	dir := writeSecrets(t, map[string]string{NewsAPIKey: "ok"})
	bad := filepath.Join(dir, "locked")
	require.NoError(t, os.WriteFile(bad, []byte("secret"), 0o000))
	t.Cleanup(func() { _ = os.Chmod(bad, 0o600) })

	logger, hook := test.NewNullLogger()
	got, err := Load(dir, logger)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{NewsAPIKey: "ok"}, got)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "locked", entry.Data["secret"])
}

func TestFirst(t *testing.T) {
	assert.Equal(t, "flag", First("flag", "env", "file"))
	assert.Equal(t, "env", First("", "  ", "env", "file"))
	assert.Equal(t, "file", First("", "", " file "))
	assert.Equal(t, "", First("", " "))
	assert.Equal(t, "", First())
}
