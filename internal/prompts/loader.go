// Package prompts embeds the LLM prompt templates used by the analysis and
// ad generation steps. Templates live in JSON files keyed by prompt name and
// carry {{.Key}} placeholders resolved at call time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var files embed.FS

// File identifies one embedded prompt template file.
type File string

// Embedded prompt files.
const (
	// Analysis holds the business description and activity axis prompts.
	Analysis File = "analysis.json"
	// AdCopy holds the per-axis advertising image prompts.
	AdCopy File = "adcopy.json"
)

var (
	parsedMu sync.RWMutex
	parsed   = make(map[File]map[string]string)
)

// Get returns the template stored under key in the given file.
func Get(file File, key string) (string, error) {
	templates, err := load(file)
	if err != nil {
		return "", err
	}

	template, exists := templates[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in %s", key, file)
	}
	return template, nil
}

// MustGet returns the template or panics. The embedded files ship with the
// binary, so a missing key is a programming error.
func MustGet(file File, key string) string {
	template, err := Get(file, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Key}} placeholders with values from data.
// Placeholders without a matching key are left intact.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}

// load parses a prompt file once and caches the result.
func load(file File) (map[string]string, error) {
	parsedMu.RLock()
	templates, exists := parsed[file]
	parsedMu.RUnlock()
	if exists {
		return templates, nil
	}

	data, err := files.ReadFile(string(file))
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", file, err)
	}
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", file, err)
	}

	parsedMu.Lock()
	parsed[file] = templates
	parsedMu.Unlock()
	return templates, nil
}
