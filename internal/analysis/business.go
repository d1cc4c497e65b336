package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/ad-generator/internal/llm"
	"github.com/jonathan/ad-generator/internal/prompts"
)

// Input budgets, in characters, to keep requests under the token limits.
const (
	maxDescriptionInput = 8000
	maxAxesInput        = 10000
)

// AxisCount is the number of business activity axes to identify.
const AxisCount = 4

// minContentLength is the least amount of extracted text worth analyzing.
const minContentLength = 100

// GenerateDescription produces a three-sentence business description from
// site content.
func GenerateDescription(ctx context.Context, client llm.Client, content string) (string, error) {
	if len(content) < minContentLength {
		return "", fmt.Errorf("insufficient site content for description (%d chars)", len(content))
	}

	user := prompts.Format(prompts.MustGet(prompts.Analysis, "description_user"), map[string]string{
		"Content": truncate(content, maxDescriptionInput),
	})

	description, err := client.Complete(ctx, llm.Request{
		SystemPrompt: prompts.MustGet(prompts.Analysis, "description_system"),
		UserPrompt:   user,
		MaxTokens:    200,
		Temperature:  0.3,
	})
	if err != nil {
		return "", fmt.Errorf("description generation failed: %w", err)
	}
	return strings.TrimSpace(description), nil
}

// IdentifyBusinessAxes extracts the company's main activity axes from site
// content, at most AxisCount of them.
func IdentifyBusinessAxes(ctx context.Context, client llm.Client, content string) ([]string, error) {
	if len(content) < minContentLength {
		return nil, fmt.Errorf("insufficient site content for axis analysis (%d chars)", len(content))
	}

	user := prompts.Format(prompts.MustGet(prompts.Analysis, "axes_user"), map[string]string{
		"Content": truncate(content, maxAxesInput),
	})

	response, err := client.Complete(ctx, llm.Request{
		SystemPrompt: prompts.MustGet(prompts.Analysis, "axes_system"),
		UserPrompt:   user,
		MaxTokens:    300,
		Temperature:  0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("axis analysis failed: %w", err)
	}

	var axes []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		axes = append(axes, line)
		if len(axes) == AxisCount {
			break
		}
	}
	if len(axes) == 0 {
		return nil, fmt.Errorf("axis analysis returned no axes")
	}
	return axes, nil
}
