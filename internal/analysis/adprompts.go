package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/ad-generator/internal/identity"
	"github.com/jonathan/ad-generator/internal/llm"
	"github.com/jonathan/ad-generator/internal/prompts"
)

// maxPaletteInPrompt limits how many palette colors are named in a prompt.
const maxPaletteInPrompt = 3

// BuildAdPrompts generates one advertising-image prompt per business axis,
// weaving in the extracted visual identity. A failing axis never aborts the
// batch: it falls back to a deterministic templated prompt instead.
func BuildAdPrompts(ctx context.Context, client llm.Client, axes []string, vi *identity.VisualIdentity) []string {
	logoNote := "Company logo not available"
	colors := "color palette not available"
	imagesNote := "No main images extracted"
	if vi != nil {
		if vi.Logo.LocalPath != "" {
			logoNote = "Company logo present in the top-left corner"
		}
		if len(vi.Palette) > 0 {
			limit := min(len(vi.Palette), maxPaletteInPrompt)
			colors = strings.Join(vi.Palette[:limit], ", ")
		}
		if len(vi.HeroImages) > 0 {
			imagesNote = fmt.Sprintf("%d main images extracted from the site", len(vi.HeroImages))
		}
	}

	system := prompts.MustGet(prompts.AdCopy, "ad_prompt_system")
	userTemplate := prompts.MustGet(prompts.AdCopy, "ad_prompt_user")
	fallbackTemplate := prompts.MustGet(prompts.AdCopy, "ad_prompt_fallback")

	adPrompts := make([]string, 0, len(axes))
	for _, axis := range axes {
		data := map[string]string{
			"Axis":       axis,
			"LogoNote":   logoNote,
			"Colors":     colors,
			"ImagesNote": imagesNote,
		}

		prompt, err := client.Complete(ctx, llm.Request{
			SystemPrompt: system,
			UserPrompt:   prompts.Format(userTemplate, data),
			MaxTokens:    300,
			Temperature:  0.7,
		})
		if err != nil {
			log.Printf("Warning: prompt generation failed for axis %q, using fallback: %v", axis, err)
			prompt = prompts.Format(fallbackTemplate, data)
		}
		adPrompts = append(adPrompts, strings.TrimSpace(prompt))
	}

	return adPrompts
}
