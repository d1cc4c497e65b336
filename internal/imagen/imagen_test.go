package imagen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClient_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIClient("", "gpt-image-1")
	require.Error(t, err)
}

func TestNewOpenAIClient_DefaultModel(t *testing.T) {
	client, err := NewOpenAIClient("sk-test", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, client.model)
}

func TestNewAssetPaths(t *testing.T) {
	paths := NewAssetPaths("out")

	assert.Equal(t, "out", filepath.Dir(paths.Raw))
	assert.Equal(t, "out", filepath.Dir(paths.Final))

	rawName := filepath.Base(paths.Raw)
	finalName := filepath.Base(paths.Final)
	assert.True(t, strings.HasPrefix(rawName, "image_"))
	assert.True(t, strings.HasSuffix(rawName, "_raw.png"))
	assert.True(t, strings.HasSuffix(finalName, ".png"))

	// Same stem apart from the _raw marker
	assert.Equal(t, strings.TrimSuffix(finalName, ".png"), strings.TrimSuffix(rawName, "_raw.png"))
}

func TestNewAssetPaths_Unique(t *testing.T) {
	a := NewAssetPaths("out")
	b := NewAssetPaths("out")
	assert.NotEqual(t, a.Raw, b.Raw)
}

func TestSaveRaw_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	paths := NewAssetPaths(dir)
	payload := []byte("image bytes")

	require.NoError(t, SaveRaw(paths, payload))

	data, err := os.ReadFile(paths.Raw)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}
