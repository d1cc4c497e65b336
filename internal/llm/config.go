// Package llm provides the text completion client abstraction and its
// provider implementations. Components receive an explicitly constructed
// client; there is no hidden global state.
package llm

// Provider represents a text completion provider.
type Provider string

// Supported providers.
const (
	// ProviderAzureOpenAI talks to an Azure OpenAI deployment.
	ProviderAzureOpenAI Provider = "azure"
	// ProviderOpenAI talks to the public OpenAI API.
	ProviderOpenAI Provider = "openai"
	// ProviderGemini talks to Google Gemini.
	ProviderGemini Provider = "gemini"
)

// DefaultAzureAPIVersion is used when no API version is configured.
const DefaultAzureAPIVersion = "2024-02-15-preview"

// DefaultModel is the fallback deployment/model name.
const DefaultModel = "gpt4o"

// Config holds everything needed to construct a completion client.
type Config struct {
	Provider   Provider
	Model      string // model name, or deployment id for Azure
	APIKey     string
	Endpoint   string // Azure endpoint, unused elsewhere
	APIVersion string // Azure API version, unused elsewhere
}

// ModelOrDefault returns the configured model name or the default.
func (c *Config) ModelOrDefault() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel
}
