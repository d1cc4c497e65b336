// Package config provides configuration loading and validation for the CLI.
// Configuration comes from the environment (loaded via godotenv in main), an
// optional JSON file, and CLI flags; the merged result is passed explicitly
// into each service-calling component.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ad-generator/internal/llm"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file or the environment. All fields are optional; missing values use
// defaults or must be provided via CLI flags.
type Config struct {
	// Target and outputs
	URL           string `json:"url,omitempty" validate:"omitempty,url"`
	Output        string `json:"output,omitempty"`
	LogoDir       string `json:"logo_dir,omitempty"`
	MaxHeroImages int    `json:"max_hero_images,omitempty" validate:"gte=0,lte=10"`

	// Text completion service
	LLMProvider     string `json:"llm_provider,omitempty" validate:"omitempty,oneof=azure openai gemini"`
	GPTDeployment   string `json:"gpt_deployment,omitempty"`
	AzureAPIKey     string `json:"azure_api_key,omitempty"`
	AzureEndpoint   string `json:"azure_endpoint,omitempty" validate:"omitempty,url"`
	AzureAPIVersion string `json:"azure_api_version,omitempty"`
	OpenAIAPIKey    string `json:"openai_api_key,omitempty"`
	GeminiAPIKey    string `json:"gemini_api_key,omitempty"`

	// Image generation service
	ImageModel string `json:"image_model,omitempty"`

	// HTML-to-Markdown conversion service
	MarkdownEndpoint string `json:"markdown_endpoint,omitempty" validate:"omitempty,url"`
	MarkdownToken    string `json:"markdown_token,omitempty"`

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA sites
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Callers are expected
// to have loaded any .env file beforehand.
func FromEnv() Config {
	return Config{
		LLMProvider:      os.Getenv("LLM_PROVIDER"),
		GPTDeployment:    os.Getenv("AZURE_OPENAI_GPT_DEPLOYMENT"),
		AzureAPIKey:      os.Getenv("AZURE_OPENAI_API_KEY"),
		AzureEndpoint:    os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureAPIVersion:  os.Getenv("AZURE_OPENAI_API_VERSION"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		ImageModel:       os.Getenv("IMAGE_MODEL"),
		MarkdownEndpoint: os.Getenv("HTML_TO_MARKDOWN_API_URL"),
		MarkdownToken:    os.Getenv("HTML_TO_MARKDOWN_API_TOKEN"),
	}
}

// Validate checks that the configuration has valid values. Missing service
// credentials are the only fatal startup condition; everything else
// degrades at run time.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	switch c.LLMProvider {
	case "", "azure":
		if c.AzureAPIKey == "" || c.AzureEndpoint == "" {
			return fmt.Errorf("config error: AZURE_OPENAI_API_KEY and AZURE_OPENAI_ENDPOINT must be set")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("config error: OPENAI_API_KEY must be set")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("config error: GEMINI_API_KEY must be set")
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply env values as defaults under a config
// file, and config file values as defaults under CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.LogoDir == "" {
		result.LogoDir = defaults.LogoDir
	}
	if result.LLMProvider == "" {
		result.LLMProvider = defaults.LLMProvider
	}
	if result.GPTDeployment == "" {
		result.GPTDeployment = defaults.GPTDeployment
	}
	if result.AzureAPIKey == "" {
		result.AzureAPIKey = defaults.AzureAPIKey
	}
	if result.AzureEndpoint == "" {
		result.AzureEndpoint = defaults.AzureEndpoint
	}
	if result.AzureAPIVersion == "" {
		result.AzureAPIVersion = defaults.AzureAPIVersion
	}
	if result.OpenAIAPIKey == "" {
		result.OpenAIAPIKey = defaults.OpenAIAPIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.ImageModel == "" {
		result.ImageModel = defaults.ImageModel
	}
	if result.MarkdownEndpoint == "" {
		result.MarkdownEndpoint = defaults.MarkdownEndpoint
	}
	if result.MarkdownToken == "" {
		result.MarkdownToken = defaults.MarkdownToken
	}
	if result.MaxHeroImages == 0 {
		result.MaxHeroImages = defaults.MaxHeroImages
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLMConfig translates the merged configuration into a completion client
// config for the selected provider.
func (c *Config) LLMConfig() *llm.Config {
	switch c.LLMProvider {
	case "openai":
		return &llm.Config{
			Provider: llm.ProviderOpenAI,
			Model:    c.GPTDeployment,
			APIKey:   c.OpenAIAPIKey,
		}
	case "gemini":
		return &llm.Config{
			Provider: llm.ProviderGemini,
			Model:    c.GPTDeployment,
			APIKey:   c.GeminiAPIKey,
		}
	default:
		return &llm.Config{
			Provider:   llm.ProviderAzureOpenAI,
			Model:      c.GPTDeployment,
			APIKey:     c.AzureAPIKey,
			Endpoint:   c.AzureEndpoint,
			APIVersion: c.AzureAPIVersion,
		}
	}
}

// ImageAPIKey returns the key used for the image generation service. Image
// generation always goes through the public OpenAI API, as Azure image
// deployments are not supported here.
func (c *Config) ImageAPIKey() string {
	return c.OpenAIAPIKey
}
