package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mernsite/internal/config"
)

func TestGenCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "public")
	cfgPath := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("title: Test Site\noutput_dir: "+out+"\n"), 0644))

	rootCmd.SetArgs([]string{"--config", cfgPath, "gen"})
	require.NoError(t, rootCmd.Execute())

	require.Equal(t, "Test Site", siteCfg.Title)
	require.FileExists(t, filepath.Join(out, "index.html"))
	require.FileExists(t, filepath.Join(out, "blog", "page", "2", "index.html"))
}

func TestWithLocalDirs(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.Mkdir("content", 0755))
	cfg := withLocalDirs(config.Default())
	require.Equal(t, "content", cfg.ContentDir)
	require.Empty(t, cfg.TemplateDir)

	cfg.TemplateDir = "themes/plain"
	cfgFile = ""
	require.Equal(t, []string{"themes/plain", "content", config.DefaultFile}, watchPaths(cfg))
}
