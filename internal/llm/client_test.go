package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelOrDefault(t *testing.T) {
	cfg := &Config{Model: "gpt4o-mini"}
	assert.Equal(t, "gpt4o-mini", cfg.ModelOrDefault())

	cfg = &Config{}
	assert.Equal(t, DefaultModel, cfg.ModelOrDefault())
}

func TestNewClient_NilConfig(t *testing.T) {
	_, err := NewClient(context.Background(), nil)
	require.Error(t, err)
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Provider: "watson", APIKey: "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watson")
}

func TestNewClient_Azure(t *testing.T) {
	client, err := NewClient(context.Background(), &Config{
		Provider: ProviderAzureOpenAI,
		APIKey:   "test-key",
		Endpoint: "https://example.openai.azure.com",
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	_ = client.Close()
}

func TestNewOpenAIClient_MissingKey(t *testing.T) {
	_, err := NewOpenAIClient(&Config{Provider: ProviderOpenAI})
	require.Error(t, err)
}

func TestNewOpenAIClient_AzureRequiresEndpoint(t *testing.T) {
	_, err := NewOpenAIClient(&Config{Provider: ProviderAzureOpenAI, APIKey: "k"})
	require.Error(t, err)
}

func TestNewClient_PublicOpenAI(t *testing.T) {
	client, err := NewClient(context.Background(), &Config{
		Provider: ProviderOpenAI,
		APIKey:   "test-key",
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	_ = client.Close()
}
