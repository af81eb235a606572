package report

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/walteh/duotone/pkg/rewrite"
	"github.com/walteh/duotone/pkg/text"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Report is the machine-readable summary of one rewrite
type Report struct {
	Path    string              `json:"path" yaml:"path"`
	DryRun  bool                `json:"dry_run" yaml:"dry_run"`
	Written bool                `json:"written" yaml:"written"`
	Total   int                 `json:"total" yaml:"total"`
	Changes []text.ChangeRecord `json:"changes" yaml:"changes"`
}

// FromResult builds a report from a rewrite result
func FromResult(r *rewrite.Result, dryRun bool) Report {
	changes := r.Changes
	if changes == nil {
		changes = []text.ChangeRecord{}
	}
	return Report{
		Path:    r.Path,
		DryRun:  dryRun,
		Written: r.Written,
		Total:   r.Total(),
		Changes: changes,
	}
}

// Formatter renders a report
type Formatter interface {
	Format(r Report) ([]byte, error)
}

// YAMLFormatter renders reports as YAML
type YAMLFormatter struct{}

// Format implements Formatter
func (YAMLFormatter) Format(r Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, errors.Errorf("encoding yaml report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Errorf("closing yaml encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// JSONFormatter renders reports as indented JSON
type JSONFormatter struct{}

// Format implements Formatter
func (JSONFormatter) Format(r Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errors.Errorf("encoding json report: %w", err)
	}
	return append(data, '\n'), nil
}

// NewFormatter returns the formatter for a format name ("yaml" or "json")
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return YAMLFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	default:
		return nil, errors.Errorf("unsupported report format %q", format)
	}
}
