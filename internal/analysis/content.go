// Package analysis turns a site's textual content into business insights:
// a short company description, the main business activity axes, and one
// advertising-image prompt per axis.
package analysis

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/ad-generator/internal/fetch"
	"github.com/jonathan/ad-generator/internal/markdown"
)

// ContentOptions configures site content extraction.
type ContentOptions struct {
	// Converter is the primary markdown extraction path; may be nil.
	Converter markdown.Converter
	// UseBrowser renders the page in a headless browser when plain HTTP
	// yields too little text.
	UseBrowser bool
	Verbose    bool
}

// ExtractSiteContent returns the textual content of a URL. It tries the
// markdown conversion service first and falls back to fetching the page and
// stripping its HTML.
func ExtractSiteContent(ctx context.Context, url string, opts ContentOptions) (string, error) {
	if opts.Converter != nil {
		content, err := opts.Converter.Convert(ctx, url)
		if err == nil {
			if opts.Verbose {
				log.Printf("[VERBOSE] Extracted %d chars via markdown service", len(content))
			}
			return content, nil
		}
		if opts.Verbose {
			log.Printf("[VERBOSE] Markdown service failed, falling back to HTML stripping: %v", err)
		}
	}

	result, err := fetch.Page(ctx, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	html := result.HTML
	if opts.UseBrowser {
		if stripped, serr := fetch.StripText(html); serr == nil && fetch.ShouldUseBrowser(stripped) {
			if rendered, berr := fetch.WithBrowser(ctx, url, fetch.DefaultTimeout*3, opts.Verbose); berr == nil {
				html = rendered
			}
		}
	}

	text, err := fetch.StripText(html)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", url, err)
	}
	return text, nil
}

// truncate limits content length to stay within the model's input budget.
func truncate(content string, limit int) string {
	if len(content) <= limit {
		return content
	}
	return content[:limit]
}
