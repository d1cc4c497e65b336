// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ad-generator/internal/identity"
	"github.com/jonathan/ad-generator/internal/imagen"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintVisualIdentity outputs a human-readable summary of the extracted
// visual identity.
func (p *Printer) PrintVisualIdentity(vi *identity.VisualIdentity) {
	if vi == nil {
		return
	}

	var sb strings.Builder

	if vi.Logo.Info != nil {
		sb.WriteString(fmt.Sprintf("Logo:     %s\n", vi.Logo.Info.Src))
		sb.WriteString(fmt.Sprintf("          kind=%s score=%d strategy=%s\n",
			vi.Logo.Info.Kind, vi.Logo.Info.Score, vi.Logo.Info.Strategy))
		if vi.Logo.LocalPath != "" {
			sb.WriteString(fmt.Sprintf("          saved to %s\n", vi.Logo.LocalPath))
		}
	} else {
		sb.WriteString("Logo:     not found\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Palette:  %s\n", strings.Join(vi.Palette, ", ")))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Hero images: %d\n", len(vi.HeroImages)))
	count := min(len(vi.HeroImages), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", vi.HeroImages[i]))
	}

	p.printBox("VISUAL IDENTITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBusinessAxes outputs the identified business activity axes.
func (p *Printer) PrintBusinessAxes(axes []string) {
	if len(axes) == 0 {
		return
	}

	var sb strings.Builder
	for i, axis := range axes {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, axis))
	}

	p.printBox("BUSINESS ACTIVITY AXES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAdPrompts outputs the generated advertising prompts, truncated for
// readability.
func (p *Printer) PrintAdPrompts(adPrompts []string) {
	if len(adPrompts) == 0 {
		return
	}

	var sb strings.Builder
	for i, prompt := range adPrompts {
		if len(prompt) > 50 {
			prompt = prompt[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, prompt))
		if i < len(adPrompts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("AD IMAGE PROMPTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGeneratedAssets outputs the files produced by image generation.
func (p *Printer) PrintGeneratedAssets(assets []imagen.GeneratedAsset) {
	if len(assets) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d images:\n\n", len(assets)))
	for _, asset := range assets {
		sb.WriteString(fmt.Sprintf("• %s\n", asset.FilePath))
	}

	p.printBox("GENERATED IMAGES", strings.TrimSuffix(sb.String(), "\n"))
}
