// Package pipeline provides the high-level orchestration for the ad
// generation process: identity extraction, business analysis, prompt
// generation, image generation and compositing.
//
// Execution is strictly sequential. Each step degrades independently on
// failure; only missing configuration aborts a run, and that is caught
// before the pipeline starts.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/ad-generator/internal/analysis"
	"github.com/jonathan/ad-generator/internal/compose"
	"github.com/jonathan/ad-generator/internal/dom"
	"github.com/jonathan/ad-generator/internal/fetch"
	"github.com/jonathan/ad-generator/internal/identity"
	"github.com/jonathan/ad-generator/internal/imagen"
	"github.com/jonathan/ad-generator/internal/llm"
	"github.com/jonathan/ad-generator/internal/markdown"
	"github.com/jonathan/ad-generator/internal/report"
)

// DefaultOutputDir is where generated images land when no directory is
// configured.
const DefaultOutputDir = "images"

// Options holds configuration and collaborators for one pipeline run.
// External services are injected so tests can fake them.
type Options struct {
	URL           string
	OutputDir     string
	LogoDir       string
	MaxHeroImages int
	UseBrowser    bool
	Verbose       bool

	LLM      llm.Client
	Images   imagen.Client
	Markdown markdown.Converter

	// Confirm gates the paid image generation step. A nil Confirm proceeds
	// without asking.
	Confirm func(imageCount int) bool
}

// ExtractIdentity fetches the site once and runs the three extractors over
// the same parsed document, then downloads the winning logo. Transport
// failures degrade to an identity with default palette and no logo.
func ExtractIdentity(ctx context.Context, url, logoDir string, maxHeroImages int, verbose bool) *identity.VisualIdentity {
	result, err := fetch.Page(ctx, url, nil)
	if err != nil {
		log.Printf("Warning: failed to fetch %s: %v", url, err)
		return degradedIdentity()
	}

	doc, err := dom.Parse(result.HTML)
	if err != nil {
		log.Printf("Warning: failed to parse %s: %v", url, err)
		return degradedIdentity()
	}

	vi := identity.Extract(doc, url, maxHeroImages)

	if vi.Logo.Info != nil {
		localPath, err := identity.DownloadLogo(ctx, vi.Logo.Info, logoDir)
		if err != nil {
			log.Printf("Warning: %v", err)
		} else {
			vi.Logo.LocalPath = localPath
			if verbose && localPath != "" {
				log.Printf("[VERBOSE] Logo saved: %s", localPath)
			}
		}
	}

	return vi
}

// degradedIdentity is the identity used when the page cannot be fetched or
// parsed: no logo, no hero images, the default palette. All fields stay
// valid for the run report.
func degradedIdentity() *identity.VisualIdentity {
	return &identity.VisualIdentity{
		HeroImages: []string{},
		Palette:    identity.DefaultPalette(),
	}
}

// Run executes the full pipeline for one URL and returns the run report.
func Run(ctx context.Context, opts Options) (*report.Report, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("site URL is required")
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}

	// Step 1: visual identity extraction
	fmt.Printf("Step 1/5: Extracting visual identity from %s...\n", opts.URL)
	vi := ExtractIdentity(ctx, opts.URL, opts.LogoDir, opts.MaxHeroImages, opts.Verbose)
	rep := report.New(opts.URL, vi)

	// Step 2: site content
	fmt.Printf("Step 2/5: Extracting site content...\n")
	content, err := analysis.ExtractSiteContent(ctx, opts.URL, analysis.ContentOptions{
		Converter:  opts.Markdown,
		UseBrowser: opts.UseBrowser,
		Verbose:    opts.Verbose,
	})
	if err != nil {
		log.Printf("Warning: content extraction failed: %v", err)
	}

	// Step 3: business description and activity axes
	fmt.Printf("Step 3/5: Analyzing business activity...\n")
	description, err := analysis.GenerateDescription(ctx, opts.LLM, content)
	if err != nil {
		log.Printf("Warning: %v", err)
		description = "Description not available"
	}
	rep.Description = description

	axes, err := analysis.IdentifyBusinessAxes(ctx, opts.LLM, content)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	rep.BusinessAxes = axes

	// Step 4: ad prompts, one per axis
	fmt.Printf("Step 4/5: Generating ad prompts...\n")
	adPrompts := analysis.BuildAdPrompts(ctx, opts.LLM, axes, vi)
	rep.AdPrompts = adPrompts

	// Step 5: image generation and compositing
	if len(adPrompts) == 0 {
		fmt.Printf("Step 5/5: No prompts available, skipping image generation\n")
		return rep, nil
	}
	if opts.Confirm != nil && !opts.Confirm(len(adPrompts)) {
		fmt.Printf("Step 5/5: Image generation skipped\n")
		return rep, nil
	}

	fmt.Printf("Step 5/5: Generating %d images...\n", len(adPrompts))
	rep.GeneratedFiles = generateImages(ctx, opts, adPrompts, vi.Logo.LocalPath)

	return rep, nil
}

// generateImages produces one image per prompt, overlaying the logo when
// available. A failing prompt is skipped; a failing composite falls back to
// the raw generated image.
func generateImages(ctx context.Context, opts Options, adPrompts []string, logoPath string) []imagen.GeneratedAsset {
	var assets []imagen.GeneratedAsset

	for i, prompt := range adPrompts {
		fmt.Printf("  Generating image %d/%d...\n", i+1, len(adPrompts))

		data, err := opts.Images.Generate(ctx, prompt)
		if err != nil {
			log.Printf("Warning: %v", err)
			continue
		}

		paths := imagen.NewAssetPaths(opts.OutputDir)
		if err := imagen.SaveRaw(paths, data); err != nil {
			log.Printf("Warning: %v", err)
			continue
		}

		finalPath := paths.Final
		if logoPath != "" {
			if err := compose.Overlay(paths.Raw, logoPath, paths.Final); err != nil {
				log.Printf("Warning: compositing failed, emitting raw image: %v", err)
				finalPath = paths.Raw
			}
		} else {
			if err := os.Rename(paths.Raw, paths.Final); err != nil {
				finalPath = paths.Raw
			}
		}

		assets = append(assets, imagen.GeneratedAsset{
			FilePath:     finalPath,
			SourcePrompt: prompt,
		})
	}

	return assets
}
