// Package imagen provides the image generation service client and local
// persistence of generated assets.
package imagen

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the image generation model used when none is configured.
const DefaultModel = "gpt-image-1"

// Generation parameters, fixed per run.
const (
	imageSize    = "1024x1024"
	imageQuality = "high"
)

// GeneratedAsset records one successfully generated image. Written once,
// never mutated.
type GeneratedAsset struct {
	FilePath     string `json:"file_path"`
	SourcePrompt string `json:"source_prompt"`
}

// Client generates raster images from prompts.
type Client interface {
	// Generate produces raw PNG bytes for a prompt. Single attempt, no retry.
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// OpenAIClient implements Client against the OpenAI images endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates an image generation client.
func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Generate requests one image and decodes the base64 payload.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:   c.model,
		Prompt:  prompt,
		N:       1,
		Size:    imageSize,
		Quality: imageQuality,
	})
	if err != nil {
		return nil, &GenerationError{Message: "image request failed", Cause: err}
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, &GenerationError{Message: "response contains no image data"}
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, &GenerationError{Message: "failed to decode image payload", Cause: err}
	}
	return data, nil
}

// AssetPaths holds the raw and final filenames for one generated image.
// The raw file is the service output; the final file is the composited one.
type AssetPaths struct {
	Raw   string
	Final string
}

// NewAssetPaths derives collision-free output paths from a timestamp and a
// random suffix.
func NewAssetPaths(outputDir string) AssetPaths {
	timestamp := time.Now().Format("20060102_150405")
	suffix := uuid.NewString()[:8]
	base := filepath.Join(outputDir, fmt.Sprintf("image_%s_%s", timestamp, suffix))
	return AssetPaths{
		Raw:   base + "_raw.png",
		Final: base + ".png",
	}
}

// SaveRaw writes the raw generated bytes, creating the output directory as
// needed.
func SaveRaw(paths AssetPaths, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(paths.Raw), 0755); err != nil {
		return &GenerationError{Message: "failed to create output directory", Cause: err}
	}
	if err := os.WriteFile(paths.Raw, data, 0644); err != nil {
		return &GenerationError{Message: "failed to write raw image", Cause: err}
	}
	return nil
}

// GenerationError represents a failure to generate or persist an image.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("image generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("image generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
