package types

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds data-source selection and presentation defaults.
type Config struct {
	Source       string   `json:"source" yaml:"source"`
	DataDir      string   `json:"data_dir" yaml:"data_dir"`
	BaseURL      string   `json:"base_url" yaml:"base_url"`
	Datasets     []string `json:"datasets" yaml:"datasets"`
	ProductsFile string   `json:"products_file" yaml:"products_file"`
	Order        string   `json:"order" yaml:"order"`
	Format       string   `json:"format" yaml:"format"`
}

// Supported source names.
const (
	SourceDir  = "dir"
	SourceHTTP = "http"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
)

// Config validation errors.
var (
	ErrSourceEmpty    = errors.New("source must not be empty")
	ErrSourceUnknown  = errors.New("unknown source")
	ErrBaseURLMissing = errors.New("base_url is required for the http source")
	ErrFormatUnknown  = errors.New("unknown output format")
	ErrOrderUnknown   = errors.New("unknown order")
)

// knownSources lists the sources that Validate accepts.
var knownSources = map[string]bool{
	SourceDir:  true,
	SourceHTTP: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Source == "" {
		return ErrSourceEmpty
	}
	if !knownSources[c.Source] {
		return fmt.Errorf("%w: %q", ErrSourceUnknown, c.Source)
	}
	if c.Source == SourceHTTP && strings.TrimSpace(c.BaseURL) == "" {
		return ErrBaseURLMissing
	}
	if _, err := ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := ParseOrder(c.Order); err != nil {
		return err
	}
	return nil
}

// ParseFormat validates an output format. The empty string selects FormatText.
func ParseFormat(s string) (string, error) {
	switch strings.TrimSpace(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %s, %s, %s)", ErrFormatUnknown, s, FormatText, FormatHTML, FormatJSON)
	}
}
