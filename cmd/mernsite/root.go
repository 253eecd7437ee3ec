package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"mernsite/internal/config"
)

var (
	cfgFile    string
	debugMode  bool
	unsafeHTML bool

	siteCfg config.SiteConfig
)

var rootCmd = &cobra.Command{
	Use:   "mernsite",
	Short: "mernsite - the MERNStack studio website",
	Long: `mernsite serves the MERNStack marketing site (home, about, services,
projects, blog and contact), exports it as static HTML, and scaffolds
an editable copy of its templates, data and posts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./site.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode for verbose output.")
	rootCmd.PersistentFlags().BoolVar(&unsafeHTML, "unsafe", false, "Disable HTML sanitization of blog posts.")

	rootCmd.AddCommand(serveCmd, genCmd, initCmd, newCmd)
}

func initializeConfig(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	siteCfg = cfg
	if siteCfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		fmt.Println(mutedStyle.Render(fmt.Sprintf("Config: %+v", siteCfg)))
	}
	return nil
}

// loadConfig reads the config file and applies flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.SiteConfig, error) {
	cfg, err := config.LoadSiteConfig(cfgFile)
	if err != nil {
		return config.SiteConfig{}, err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debugMode
	}
	if cmd.Flags().Changed("unsafe") {
		cfg.Unsafe = unsafeHTML
	}
	return cfg, nil
}
