// Package report defines the run artifact written after each analysis and
// its JSON Schema validation.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/ad-generator/internal/identity"
	"github.com/jonathan/ad-generator/internal/imagen"
)

// Report captures everything extracted and generated for one site. It is
// written once per run and never merged across sites.
type Report struct {
	URL            string                   `json:"url"`
	Description    string                   `json:"description,omitempty"`
	Identity       *identity.VisualIdentity `json:"visual_identity"`
	BusinessAxes   []string                 `json:"business_axes,omitempty"`
	AdPrompts      []string                 `json:"ad_prompts,omitempty"`
	GeneratedFiles []imagen.GeneratedAsset  `json:"generated_files,omitempty"`
	CreatedAt      string                   `json:"created_at"`
}

// New creates a report stamped with the current UTC time.
func New(url string, vi *identity.VisualIdentity) *Report {
	return &Report{
		URL:       url,
		Identity:  vi,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Write validates the report against its schema and writes it as indented
// JSON.
func (r *Report) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := Validate(data); err != nil {
		return fmt.Errorf("report does not match schema: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
