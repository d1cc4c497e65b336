package analysis

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ad-generator/internal/identity"
)

func TestBuildAdPrompts_OnePromptPerAxis(t *testing.T) {
	client := &fakeClient{responses: []string{"prompt one", "prompt two"}}
	vi := &identity.VisualIdentity{
		Logo:    identity.Logo{LocalPath: "logos/logo_acme.png"},
		Palette: []string{"#1a73e8", "#ffffff", "#333333", "#ff0000"},
	}

	adPrompts := BuildAdPrompts(context.Background(), client, []string{"Widgets", "Consulting"}, vi)
	require.Len(t, adPrompts, 2)
	assert.Equal(t, "prompt one", adPrompts[0])
	assert.Equal(t, "prompt two", adPrompts[1])

	// Only the first three palette colors are named.
	require.Len(t, client.requests, 2)
	assert.Contains(t, client.requests[0].UserPrompt, "#1a73e8, #ffffff, #333333")
	assert.NotContains(t, client.requests[0].UserPrompt, "#ff0000")
	assert.Contains(t, client.requests[0].UserPrompt, "Widgets")
	assert.Contains(t, client.requests[1].UserPrompt, "Consulting")
}

func TestBuildAdPrompts_FallbackOnClientError(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("service down")}

	adPrompts := BuildAdPrompts(context.Background(), client, []string{"Widgets"}, nil)
	require.Len(t, adPrompts, 1)
	assert.Contains(t, adPrompts[0], "Widgets")
}

func TestBuildAdPrompts_NilIdentity(t *testing.T) {
	client := &fakeClient{responses: []string{"a prompt"}}

	adPrompts := BuildAdPrompts(context.Background(), client, []string{"Widgets"}, nil)
	require.Len(t, adPrompts, 1)
	require.Len(t, client.requests, 1)
	assert.Contains(t, client.requests[0].UserPrompt, "not available")
}

func TestBuildAdPrompts_NoAxes(t *testing.T) {
	client := &fakeClient{responses: []string{"unused"}}

	adPrompts := BuildAdPrompts(context.Background(), client, nil, nil)
	assert.Empty(t, adPrompts)
	assert.Empty(t, client.requests)
}
