package internal

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Site   SiteConfig        `yaml:"site"`
	Paths  PathsConfig       `yaml:"paths"`
	GitHub GitHubConfig      `yaml:"github"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Site.Validate(); err != nil {
		return err
	}
	if err := c.Paths.Validate(); err != nil {
		return err
	}
	return c.GitHub.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds preview server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the preview server listen address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SiteConfig holds the site identity used across generated pages.
type SiteConfig struct {
	BaseURL string `yaml:"base_url"`
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`

	// SourceRepo is the owner/name pair of the site's own source repository,
	// queried for the contributor leaderboard.
	SourceRepo string `yaml:"source_repo"`

	// Categories maps tag labels to display names for homepage sections.
	Categories map[string]string `yaml:"categories"`
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required),
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.SourceRepo, validation.Required),
	); err != nil {
		return err
	}
	if strings.Count(c.SourceRepo, "/") != 1 {
		return fmt.Errorf("site: source_repo must be an owner/name pair, got %q", c.SourceRepo)
	}
	return nil
}

// SourceRepoParts splits SourceRepo into owner and repository name.
func (c *SiteConfig) SourceRepoParts() (owner, repo string) {
	owner, repo, _ = strings.Cut(c.SourceRepo, "/")
	return owner, repo
}

// PathsConfig holds the input and output directories of the build.
type PathsConfig struct {
	Content   string `yaml:"content"`
	Templates string `yaml:"templates"`
	Assets    string `yaml:"assets"`
	Output    string `yaml:"output"`
}

// Validate validates the paths configuration.
func (c *PathsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Content, validation.Required),
		validation.Field(&c.Templates, validation.Required),
		validation.Field(&c.Output, validation.Required),
	)
}

// GitHubConfig holds hosting-API client configuration.
//
// Token is optional; absent means unauthenticated (rate-limited) calls.
// CachePath is optional; empty disables the on-disk response cache.
type GitHubConfig struct {
	APIURL         string `yaml:"api_url"`
	Token          string `yaml:"token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	CachePath      string `yaml:"cache_path"`
	CacheTTLHours  int    `yaml:"cache_ttl_hours"`
}

// Validate validates the GitHub configuration.
func (c *GitHubConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.APIURL, validation.Required),
		validation.Field(&c.TimeoutSeconds, validation.Required, validation.Min(1)),
		validation.Field(&c.CacheTTLHours, validation.Min(0)),
	)
}

// Timeout returns the per-call HTTP timeout.
func (c *GitHubConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheTTL returns how long cached API responses stay fresh.
func (c *GitHubConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Site: SiteConfig{
			BaseURL:    "https://allweneed.pages.dev",
			Title:      "All We Need",
			Tagline:    "The best free developer tools, curated. No ads. Open source.",
			SourceRepo: "sablekunal/all-we-need",
			Categories: map[string]string{
				"ai":              "AI & Models",
				"utilities":       "Utilities & Tools",
				"media-tools":     "Media Downloaders",
				"developer-tools": "Developer Productivity",
				"security":        "Security & Privacy",
				"education":       "Learning & Resources",
			},
		},
		Paths: PathsConfig{
			Content:   "./projects",
			Templates: "./templates",
			Assets:    "./assets",
			Output:    "./docs",
		},
		GitHub: GitHubConfig{
			APIURL:         "https://api.github.com",
			TimeoutSeconds: 15,
			CacheTTLHours:  6,
		},
	}
}
