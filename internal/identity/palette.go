package identity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxPaletteSize caps the number of colors kept in a palette.
const MaxPaletteSize = 5

// Secondary and default passes kick in below these counts.
const (
	minColorsBeforeBackgroundPass = 3
	minColorsBeforeDefaults       = 2
)

// DefaultPalette is used when a site exposes almost no color information.
func DefaultPalette() []string {
	return []string{"#1a73e8", "#ffffff", "#333333"}
}

var (
	// hexColorPattern matches 3- or 6-digit hex literals. The word boundary
	// rejects 4-, 5-, 7- and 8-digit runs instead of matching their prefix.
	hexColorPattern = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
	rgbColorPattern = regexp.MustCompile(`rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)`)
)

// colorSet deduplicates colors while keeping insertion order, so truncation
// to MaxPaletteSize is deterministic across runs on the same input.
type colorSet struct {
	colors []string
	seen   map[string]bool
}

func newColorSet() *colorSet {
	return &colorSet{seen: make(map[string]bool)}
}

func (cs *colorSet) add(color string) {
	if color == "" || cs.seen[color] {
		return
	}
	cs.seen[color] = true
	cs.colors = append(cs.colors, color)
}

func (cs *colorSet) size() int {
	return len(cs.colors)
}

// ExtractPalette scans style blocks and inline style attributes for color
// literals and returns at most MaxPaletteSize canonical hex colors. When the
// page exposes too few colors it falls back to a background-focused pass and
// finally to the defaults, so the palette is never empty.
func ExtractPalette(doc *goquery.Document) []string {
	colors := newColorSet()

	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		scanColors(colors, s.Text())
	})
	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		if style, exists := s.Attr("style"); exists {
			scanColors(colors, style)
		}
	})

	// Secondary pass: background declarations on the structural elements.
	if colors.size() < minColorsBeforeBackgroundPass {
		doc.Find("header, footer, nav, main, body").Each(func(_ int, s *goquery.Selection) {
			style, exists := s.Attr("style")
			if !exists || !strings.Contains(style, "background") {
				return
			}
			for _, match := range hexColorPattern.FindAllString(style, -1) {
				colors.add(NormalizeHex(match))
			}
		})
	}

	if colors.size() < minColorsBeforeDefaults {
		for _, color := range DefaultPalette() {
			colors.add(color)
		}
	}

	if len(colors.colors) > MaxPaletteSize {
		return colors.colors[:MaxPaletteSize]
	}
	return colors.colors
}

// scanColors extracts hex and rgb() literals from CSS text.
func scanColors(colors *colorSet, css string) {
	for _, match := range hexColorPattern.FindAllString(css, -1) {
		colors.add(NormalizeHex(match))
	}
	for _, match := range rgbColorPattern.FindAllStringSubmatch(css, -1) {
		if hex, ok := rgbToHex(match[1], match[2], match[3]); ok {
			colors.add(hex)
		}
	}
}

// NormalizeHex canonicalizes a hex literal to lowercase #rrggbb form,
// expanding the 3-digit short form. Normalizing an already canonical value
// returns it unchanged.
func NormalizeHex(raw string) string {
	hex := strings.ToLower(strings.TrimPrefix(raw, "#"))
	if len(hex) == 3 {
		hex = fmt.Sprintf("%c%c%c%c%c%c", hex[0], hex[0], hex[1], hex[1], hex[2], hex[2])
	}
	return "#" + hex
}

// rgbToHex converts decimal rgb() components to canonical hex form,
// rejecting out-of-range components.
func rgbToHex(rs, gs, bs string) (string, bool) {
	r, err1 := strconv.Atoi(rs)
	g, err2 := strconv.Atoi(gs)
	b, err3 := strconv.Atoi(bs)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	if r > 255 || g > 255 || b > 255 {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), true
}
