package launcher

import (
	"fmt"

	"github.com/erraggy/casekit/caseerrors"
)

// Option is a function that configures a launcher query.
type Option func(*processConfig) error

// processConfig holds configuration for a launcher query.
type processConfig struct {
	// Input (must be set)
	query *string

	// Presentation
	iconDir        string
	multilineTitle string
}

// WithQuery specifies the raw query. The empty query is valid and yields the
// default results for an empty subject.
func WithQuery(query string) Option {
	return func(cfg *processConfig) error {
		cfg.query = &query
		return nil
	}
}

// WithIconDir specifies the directory icon paths are built from.
func WithIconDir(dir string) Option {
	return func(cfg *processConfig) error {
		if dir == "" {
			return &caseerrors.ConfigError{Option: "icon-dir", Value: dir, Message: "cannot be empty"}
		}
		cfg.iconDir = dir
		return nil
	}
}

// WithMultilineTitle specifies the title shown for values containing line breaks.
func WithMultilineTitle(title string) Option {
	return func(cfg *processConfig) error {
		if title == "" {
			return &caseerrors.ConfigError{Option: "multiline-title", Value: title, Message: "cannot be empty"}
		}
		cfg.multilineTitle = title
		return nil
	}
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts ...Option) (*processConfig, error) {
	cfg := &processConfig{
		iconDir:        DefaultIconDir,
		multilineTitle: DefaultMultilineTitle,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.query == nil {
		return nil, &caseerrors.ConfigError{Option: "query", Message: "must specify a query (use WithQuery)"}
	}
	return cfg, nil
}

// ProcessWithOptions runs a query using functional options.
//
// Example:
//
//	resp, err := launcher.ProcessWithOptions(
//	    launcher.WithQuery("Hello World /cS"),
//	    launcher.WithIconDir("./assets"),
//	)
func ProcessWithOptions(opts ...Option) (*Response, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("launcher: invalid options: %w", err)
	}

	p := &Processor{
		IconDir:        cfg.iconDir,
		MultilineTitle: cfg.multilineTitle,
	}
	return p.Process(*cfg.query), nil
}
