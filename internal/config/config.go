package config

import (
	"fmt"
	"os"
	"time"

	"github.com/brogergvhs/komikat/internal/builder"
	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseURL    string `yaml:"base_url"`
	ListingURL string `yaml:"listing_url"`
	Listen     string `yaml:"listen"`

	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	Retries           int     `yaml:"retries"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	CloudflareBypass  bool    `yaml:"cloudflare_bypass"`

	// SkipListing turns off the secondary listing page. A negative
	// RequestsPerSecond turns off the rate limiter.
	SkipListing bool `yaml:"skip_listing"`

	// CacheErrors lets a failed build occupy the snapshot slot until restart.
	CacheErrors bool `yaml:"cache_errors"`
	Debug       bool `yaml:"debug"`

	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	UserAgent  string `yaml:"user_agent"`

	FilterID      string               `yaml:"filter_id"`
	DescriptionID string               `yaml:"description_id"`
	Sections      []builder.SectionDef `yaml:"sections"`
}

// Options carries command-line overrides. Zero values leave the file
// value untouched.
type Options struct {
	IgnoreConfig bool
	Debug        bool
	BaseURL      string
	ListingURL   string
	Listen       string
	Timeout      int
	CacheErrors  bool
	Cookie       string
	CookieFile   string
	UserAgent    string
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:           builder.DefaultBaseURL,
		ListingURL:        builder.DefaultListingURL,
		Listen:            ":8080",
		TimeoutSeconds:    15,
		Retries:           3,
		RequestsPerSecond: 2,
		FilterID:          builder.DefaultFilterID,
		DescriptionID:     builder.DefaultDescriptionID,
		Sections:          builder.DefaultSections(),
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Listing is the secondary listing page URL, or "" when skip_listing is set.
func (c *Config) Listing() string {
	if c.SkipListing {
		return ""
	}

	return c.ListingURL
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.ListingURL != "" {
		c.ListingURL = o.ListingURL
	}
	if o.Listen != "" {
		c.Listen = o.Listen
	}
	if o.Timeout != 0 {
		c.TimeoutSeconds = o.Timeout
	}
	if o.CacheErrors {
		c.CacheErrors = true
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
}

// normalizeDefaults fills zero values left by a partial YAML file.
func normalizeDefaults(c *Config) {
	def := DefaultConfig()

	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.ListingURL == "" {
		c.ListingURL = def.ListingURL
	}
	if c.Listen == "" {
		c.Listen = def.Listen
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
	if c.Retries <= 0 {
		c.Retries = def.Retries
	}
	if c.RequestsPerSecond == 0 {
		c.RequestsPerSecond = def.RequestsPerSecond
	}
	if c.FilterID == "" {
		c.FilterID = def.FilterID
	}
	if c.DescriptionID == "" {
		c.DescriptionID = def.DescriptionID
	}
	if len(c.Sections) == 0 {
		c.Sections = def.Sections
	}
}

func (c *Config) Print() {
	fmt.Printf(" -base_url: %s\n", c.BaseURL)
	if c.ListingURL != "" {
		fmt.Printf(" -listing_url: %s\n", c.ListingURL)
	}
	fmt.Printf(" -listen: %s\n", c.Listen)
	fmt.Printf(" -timeout_seconds: %d\n", c.TimeoutSeconds)
	fmt.Printf(" -retries: %d\n", c.Retries)
	if c.RequestsPerSecond > 0 {
		fmt.Printf(" -requests_per_second: %g\n", c.RequestsPerSecond)
	}
	if c.SkipListing {
		fmt.Printf(" -skip_listing: %t\n", c.SkipListing)
	}
	if c.CloudflareBypass {
		fmt.Printf(" -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
	if c.CacheErrors {
		fmt.Printf(" -cache_errors: %t\n", c.CacheErrors)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	fmt.Printf(" -sections: %d\n", len(c.Sections))
	for _, s := range c.Sections {
		fmt.Printf("    %s (#%s, markers %v)\n", s.Label, s.ID, s.Markers)
	}
}
