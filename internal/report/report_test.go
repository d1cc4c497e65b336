package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ad-generator/internal/identity"
	"github.com/jonathan/ad-generator/internal/imagen"
)

func sampleIdentity() *identity.VisualIdentity {
	return &identity.VisualIdentity{
		Logo: identity.Logo{
			Info: &identity.LogoInfo{
				Kind:     identity.KindImage,
				Src:      "https://example.com/logo.png",
				Alt:      "Example",
				Width:    120,
				Height:   40,
				Score:    90,
				Strategy: identity.StrategyAttribute,
			},
			LocalPath: "logos/logo_example.png",
		},
		HeroImages: []string{"https://example.com/hero.jpg"},
		Palette:    []string{"#1a73e8", "#ffffff"},
	}
}

func TestReport_WriteAndReload(t *testing.T) {
	rep := New("https://example.com", sampleIdentity())
	rep.Description = "Example sells examples."
	rep.BusinessAxes = []string{"Examples", "Samples"}
	rep.AdPrompts = []string{"a prompt", "another prompt"}
	rep.GeneratedFiles = []imagen.GeneratedAsset{
		{FilePath: "images/image_20240101_000000_abcd1234.png", SourcePrompt: "a prompt"},
	}

	path := filepath.Join(t.TempDir(), "nested", "report.json")
	require.NoError(t, rep.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var reloaded Report
	require.NoError(t, json.Unmarshal(data, &reloaded))
	assert.Equal(t, rep.URL, reloaded.URL)
	assert.Equal(t, rep.Description, reloaded.Description)
	assert.Equal(t, rep.BusinessAxes, reloaded.BusinessAxes)
	require.NotNil(t, reloaded.Identity)
	assert.Equal(t, rep.Identity.Palette, reloaded.Identity.Palette)
	assert.NotEmpty(t, reloaded.CreatedAt)
}

func TestReport_WriteWithoutLogo(t *testing.T) {
	// A degraded identity has no logo and a nil hero image slice; it must
	// still pass schema validation rather than abort the run.
	vi := &identity.VisualIdentity{Palette: identity.DefaultPalette()}
	rep := New("https://example.com", vi)

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, rep.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"hero_images": null`)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	err := Validate([]byte(`{"description": "no url"}`))
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.NotEmpty(t, valErr.Errors)
}

func TestValidate_BadPaletteEntry(t *testing.T) {
	rep := New("https://example.com", &identity.VisualIdentity{
		Palette: []string{"not-a-color"},
	})
	data, err := json.Marshal(rep)
	require.NoError(t, err)

	err = Validate(data)
	require.Error(t, err)
}

func TestValidate_BadStrategy(t *testing.T) {
	report := map[string]any{
		"url": "https://example.com",
		"visual_identity": map[string]any{
			"logo": map[string]any{
				"info": map[string]any{
					"kind":     "image",
					"src":      "https://example.com/logo.png",
					"score":    10,
					"strategy": "guesswork",
				},
			},
		},
		"created_at": "2024-01-01T00:00:00Z",
	}
	data, err := json.Marshal(report)
	require.NoError(t, err)

	require.Error(t, Validate(data))
}

func TestValidate_TooManyHeroImages(t *testing.T) {
	heroes := make([]string, 6)
	for i := range heroes {
		heroes[i] = "https://example.com/hero.jpg"
	}
	rep := New("https://example.com", &identity.VisualIdentity{HeroImages: heroes})
	data, err := json.Marshal(rep)
	require.NoError(t, err)

	require.Error(t, Validate(data))
}
