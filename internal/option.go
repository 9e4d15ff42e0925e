package internal

import (
	"github.com/sablekunal/all-we-need/internal/github"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config    *Config
	doer      github.HTTPDoer
	buildDate string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithHTTPDoer overrides the HTTP client used for hosting-API calls.
func WithHTTPDoer(doer github.HTTPDoer) Option {
	return func(a *application) {
		a.doer = doer
	}
}

// WithBuildDate pins the build date stamped into the sitemap.
func WithBuildDate(date string) Option {
	return func(a *application) {
		a.buildDate = date
	}
}
