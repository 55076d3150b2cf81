package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetAPIURL removes the env var entirely; t.Setenv first so the original
// value is restored after the test.
func unsetAPIURL(t *testing.T) {
	t.Helper()
	t.Setenv("RENTWHEELS_API_URL", "")
	os.Unsetenv("RENTWHEELS_API_URL")
}

// chdir changes the working directory for the duration of the test,
// restoring the original directory afterwards (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
}

// isolateHome points HOME at a temp dir so tests never touch the real user
// config, and runs from a directory without a .env file.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())
	return home
}

func TestLoad_FromEnv(t *testing.T) {
	isolateHome(t)
	t.Setenv("RENTWHEELS_API_URL", "https://api.rentwheels.test/api")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.rentwheels.test/api", cfg.APIURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FromUserConfigFile(t *testing.T) {
	isolateHome(t)
	unsetAPIURL(t)

	require.NoError(t, SetAPIURL("https://api.rentwheels.test/api"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.rentwheels.test/api", cfg.APIURL)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	isolateHome(t)
	require.NoError(t, SetAPIURL("https://file.rentwheels.test/api"))
	t.Setenv("RENTWHEELS_API_URL", "https://env.rentwheels.test/api")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.rentwheels.test/api", cfg.APIURL)
}

func TestLoad_MissingAPIURL(t *testing.T) {
	isolateHome(t)
	unsetAPIURL(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rentwheels init")
}

func TestLoad_FromDotEnv(t *testing.T) {
	isolateHome(t)
	unsetAPIURL(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("RENTWHEELS_API_URL=https://dotenv.rentwheels.test/api\n"), 0644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://dotenv.rentwheels.test/api", cfg.APIURL)
}

func TestSetAPIURL_RejectsGarbage(t *testing.T) {
	isolateHome(t)
	assert.Error(t, SetAPIURL("not a url"))
}

func TestAPIHost(t *testing.T) {
	cfg := &Config{APIURL: "https://api.rentwheels.test:8443/api"}
	assert.Equal(t, "api.rentwheels.test:8443", cfg.APIHost())
}
