package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mernsite/internal/config"
	"mernsite/internal/contact"
	"mernsite/internal/server"
	"mernsite/internal/site"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Long: `Serve the site. With --watch, templates, static files, data and posts
are read from ./templates, ./static, ./data and ./content when those
directories exist, and the site reloads in the browser when they change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := siteCfg
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if serveWatch {
			cfg = withLocalDirs(cfg)
		}

		load := func() (*site.Site, error) {
			fresh, err := loadConfig(cmd)
			if err != nil {
				return nil, err
			}
			if serveWatch {
				fresh = withLocalDirs(fresh)
			}
			return site.Load(fresh, site.SourcesFor(fresh))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Println(headingStyle.Render("--- Serving " + cfg.Title + " ---"))
		return server.Run(ctx, load, server.Options{
			Port:       cfg.Port,
			Watch:      serveWatch,
			WatchPaths: watchPaths(cfg),
			Sink:       contact.LogSink{},
		})
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 1313, "Port for the HTTP server.")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload the site when files change.")
}

// withLocalDirs points every unset directory at its conventional name in the
// working directory, if present.
func withLocalDirs(cfg config.SiteConfig) config.SiteConfig {
	set := func(dst *string, name string) {
		if *dst != "" {
			return
		}
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			*dst = name
		}
	}
	set(&cfg.TemplateDir, site.TemplatesDir)
	set(&cfg.StaticDir, site.StaticDir)
	set(&cfg.DataDir, site.DataDir)
	set(&cfg.ContentDir, site.ContentDir)
	return cfg
}

func watchPaths(cfg config.SiteConfig) []string {
	var paths []string
	for _, dir := range []string{cfg.TemplateDir, cfg.StaticDir, cfg.DataDir, cfg.ContentDir} {
		if dir != "" {
			paths = append(paths, dir)
		}
	}
	if cfgFile != "" {
		return append(paths, cfgFile)
	}
	return append(paths, config.DefaultFile)
}
