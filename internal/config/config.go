package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"protodeck/internal/project"
)

// Config holds the project-level settings for a protodeck run.
type Config struct {
	// Root is the prototypes directory that gets scanned.
	Root string `mapstructure:"root"`
	// SiteTitle is the heading of the rendered gallery page.
	SiteTitle string `mapstructure:"siteTitle"`
	// GalleryName is the project name the gallery itself is deployed under.
	GalleryName string `mapstructure:"galleryName"`
	// Domain is the hosting domain suffix deployments end up on.
	Domain string `mapstructure:"domain"`
	// DeployBin is the hosting CLI invoked per deployment.
	DeployBin string `mapstructure:"deployBin"`
	// DeployTimeout bounds a single invocation of the hosting CLI.
	DeployTimeout time.Duration `mapstructure:"deployTimeout"`
	// BuildDir is where the rendered gallery page is written.
	BuildDir string `mapstructure:"buildDir"`
}

// Load reads protodeck.yaml from the project root (or cfgFile when given),
// layered under PROTODECK_* environment variables. A missing config file is
// fine; defaults apply. A .env at the project root is loaded first so the
// hosting CLI sees its token.
func Load(cfgFile string) (*Config, error) {
	root := project.RootOrCwd()

	// Missing .env is the normal case; ignore it.
	_ = godotenv.Load(filepath.Join(root, ".env"))

	v := viper.New()
	v.SetDefault("root", "prototypes")
	v.SetDefault("siteTitle", "Prototype Gallery")
	v.SetDefault("galleryName", "gallery")
	v.SetDefault("domain", "surge.sh")
	v.SetDefault("deployBin", "surge")
	v.SetDefault("deployTimeout", 2*time.Minute)
	v.SetDefault("buildDir", filepath.Join(project.StateDir, project.SiteDir))

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(root)
		v.SetConfigName("protodeck")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PROTODECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// An explicit --config file must exist; the default one may not.
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound || cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(root, cfg.Root)
	}
	if !filepath.IsAbs(cfg.BuildDir) {
		cfg.BuildDir = filepath.Join(root, cfg.BuildDir)
	}

	return &cfg, nil
}

// CachePath returns the location of the deployment cache file.
func (c *Config) CachePath() string {
	return project.StatePath(project.CacheFile)
}
