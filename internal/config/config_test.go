package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSiteConfigFile(t *testing.T) {
	path := writeConfig(t, "title: Acme\nport: 8080\npage_size: 5\ncontent_dir: ./content\n")

	cfg, err := LoadSiteConfig(path)
	require.NoError(t, err)
	require.Equal(t, "Acme", cfg.Title)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 5, cfg.PageSize)
	require.Equal(t, "./content", cfg.ContentDir)
	require.Equal(t, "public", cfg.OutputDir, "unset keys keep their defaults")
	require.True(t, cfg.UsesDisk())
}

func TestLoadSiteConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, "port: 8080\n")
	t.Setenv("MERNSITE_PORT", "9090")
	t.Setenv("MERNSITE_PAGE_SIZE", "4")

	cfg, err := LoadSiteConfig(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 4, cfg.PageSize)
}

func TestLoadSiteConfigMissingDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadSiteConfig("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.False(t, cfg.UsesDisk())
}

func TestLoadSiteConfigErrors(t *testing.T) {
	_, err := LoadSiteConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	_, err = LoadSiteConfig(writeConfig(t, "page_size: 0\n"))
	require.ErrorContains(t, err, "page_size")

	_, err = LoadSiteConfig(writeConfig(t, "port: 70000\n"))
	require.ErrorContains(t, err, "port")

	_, err = LoadSiteConfig(writeConfig(t, "title: [unterminated\n"))
	require.Error(t, err)
}
