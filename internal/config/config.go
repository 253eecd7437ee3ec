package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MERNSITE_PORT=8080.
const EnvPrefix = "MERNSITE"

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "site.yaml"

// SiteConfig holds the configuration from the site.yaml file. Empty directory
// settings mean "use the copy embedded in the binary".
type SiteConfig struct {
	Title       string `mapstructure:"title" yaml:"title"`
	Brand       string `mapstructure:"brand" yaml:"brand"`
	Author      string `mapstructure:"author" yaml:"author"`
	BaseURL     string `mapstructure:"baseurl" yaml:"baseurl"`
	Description string `mapstructure:"description" yaml:"description"`

	Port     int `mapstructure:"port" yaml:"port"`
	PageSize int `mapstructure:"page_size" yaml:"page_size"`

	OutputDir   string `mapstructure:"output_dir" yaml:"output_dir"`
	ContentDir  string `mapstructure:"content_dir" yaml:"content_dir,omitempty"`
	TemplateDir string `mapstructure:"template_dir" yaml:"template_dir,omitempty"`
	StaticDir   string `mapstructure:"static_dir" yaml:"static_dir,omitempty"`
	DataDir     string `mapstructure:"data_dir" yaml:"data_dir,omitempty"`

	Unsafe bool `mapstructure:"unsafe" yaml:"unsafe,omitempty"`
	Debug  bool `mapstructure:"debug" yaml:"debug,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() SiteConfig {
	return SiteConfig{
		Title:       "MERNStack",
		Brand:       "MERN",
		Author:      "MERNStack",
		Description: "Building powerful web apps with MongoDB, Express, React, and Node.js.",
		Port:        1313,
		PageSize:    3,
		OutputDir:   "public",
	}
}

// UsesDisk reports whether any asset directory is read from disk rather than
// from the embedded copy.
func (c SiteConfig) UsesDisk() bool {
	return c.ContentDir != "" || c.TemplateDir != "" || c.StaticDir != "" || c.DataDir != ""
}

// LoadSiteConfig reads path (or ./site.yaml when path is empty) on top of the
// defaults, then applies MERNSITE_* environment overrides. A missing default
// file is not an error; a missing explicit file is.
func LoadSiteConfig(path string) (SiteConfig, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yaml"))
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return SiteConfig{}, fmt.Errorf("could not read config file: %w", err)
		}
	}

	var cfg SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("could not parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d SiteConfig) {
	v.SetDefault("title", d.Title)
	v.SetDefault("brand", d.Brand)
	v.SetDefault("author", d.Author)
	v.SetDefault("baseurl", d.BaseURL)
	v.SetDefault("description", d.Description)
	v.SetDefault("port", d.Port)
	v.SetDefault("page_size", d.PageSize)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("content_dir", d.ContentDir)
	v.SetDefault("template_dir", d.TemplateDir)
	v.SetDefault("static_dir", d.StaticDir)
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("unsafe", d.Unsafe)
	v.SetDefault("debug", d.Debug)
}

func (c SiteConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	return nil
}
