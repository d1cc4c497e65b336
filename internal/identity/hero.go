package identity

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/ad-generator/internal/dom"
)

// DefaultMaxHeroImages is the default cap on selected hero images.
const DefaultMaxHeroImages = 5

// Minimum declared size for an image to qualify as a hero image. Either
// exceeding threshold is enough.
const (
	heroMinWidth  = 300
	heroMinHeight = 200
)

// logoLikeSource marks image URLs that are logos or icons, never hero images.
var logoLikeSource = regexp.MustCompile(`(?i)logo|icon|favicon`)

// ExtractHeroImages returns up to maxImages absolute image URLs suitable as
// hero images, in document order with no re-ranking. Images inside
// navigation or footer chrome are skipped via an ancestor predicate rather
// than by pruning the document, and logo-like sources are always excluded.
// Images without usable declared dimensions are assumed large enough: the
// bias is toward inclusion.
func ExtractHeroImages(doc *goquery.Document, originURL string, maxImages int) []string {
	if maxImages <= 0 {
		maxImages = DefaultMaxHeroImages
	}

	chrome := dom.ChromeRegion()
	images := make([]string, 0, maxImages)

	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if src == "" {
			return true
		}
		if logoLikeSource.MatchString(src) {
			return true
		}
		if dom.Inside(s, chrome) {
			return true
		}
		if !heroSized(s) {
			return true
		}

		images = append(images, ResolveURL(originURL, src))
		return len(images) < maxImages
	})

	return images
}

// heroSized applies the size filter. Only an image with both dimensions
// declared, parseable and under the thresholds is rejected.
func heroSized(s *goquery.Selection) bool {
	rawWidth, hasWidth := s.Attr("width")
	rawHeight, hasHeight := s.Attr("height")
	if !hasWidth || !hasHeight {
		return true
	}

	width, errW := strconv.Atoi(strings.TrimSpace(rawWidth))
	height, errH := strconv.Atoi(strings.TrimSpace(rawHeight))
	if errW != nil || errH != nil {
		// Declared but unparseable: include anyway.
		return true
	}
	return width > heroMinWidth || height > heroMinHeight
}
