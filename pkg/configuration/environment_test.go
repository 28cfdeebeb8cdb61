package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := &Configuration{}
	require.NoError(t, c.load(nil))
	require.Equal(t, 3200, c.ServerPort)
	require.Equal(t, "info", c.LogLevel)
	require.Equal(t, "development", c.GoAppEnvironment)
	require.Equal(t, int64(33554432), c.MaxUploadSize)
	require.Equal(t, ":3200", c.SocketAddress)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GO_APP_ENV", Production)

	c := &Configuration{}
	require.NoError(t, c.load(nil))
	require.Equal(t, 8080, c.ServerPort)
	require.Equal(t, "debug", c.LogLevel)
	require.Equal(t, Production, c.GoAppEnvironment)
	require.Equal(t, ":8080", c.SocketAddress)
}

func TestLoadEnvSkipsMissingFiles(t *testing.T) {
	n, err := LoadEnv([]string{"does-not-exist.env"})
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestLoadEnvReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("MANNING_TEST_VAR=set\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("MANNING_TEST_VAR") })

	n, err := LoadEnv([]string{file})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "set", os.Getenv("MANNING_TEST_VAR"))
}
