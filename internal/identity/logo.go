package identity

import (
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/ad-generator/internal/dom"
)

// Base scores per strategy. Explicit class/id marking dominates attribute
// pattern matches, which dominate positional placement; the favicon is a
// last-resort placeholder.
const (
	scoreExplicitSelf      = 100
	scoreExplicitContained = 90
	scoreAttrSrc           = 50
	scoreAttrClassID       = 45
	scoreAttrAlt           = 40
	scoreHeaderTag         = 35
	scoreNavTag            = 30
	scoreHeaderName        = 25
	scoreFavicon           = 5

	bonusLinksHome = 20
)

// Post-generation adjustments applied to every non-favicon candidate.
const (
	bonusDomainMatch  = 15
	penaltyBanner     = -30
	penaltyProduct    = -25
	penaltySlider     = -20
	bonusTypicalSize  = 15
	penaltyOversize   = -25
	penaltyUndersize  = -15
	bonusAspectRatio  = 10
	penaltyWideAspect = -15
)

// Typical logo dimension envelope and banner cutoffs, in CSS pixels.
const (
	typicalMinSide   = 30
	typicalMaxWidth  = 300
	typicalMaxHeight = 150
	oversizeWidth    = 500
	oversizeHeight   = 300
	undersizeSide    = 20
)

// Aspect ratio (width/height) bounds.
const (
	aspectMin     = 0.8
	aspectMax     = 4.0
	aspectTooWide = 6.0
)

// logoPatterns are the lexical markers searched for in image attributes.
var logoPatterns = []string{"logo", "brand", "header-image", "site-logo", "main-logo", "site-icon"}

// ExtractLogo enumerates logo candidates from the document using four
// independent strategies, scores each, and returns the winner with its source
// resolved against originURL. Duplicate candidates across strategies coexist;
// the stable sort resolves them, so equal scores fall back to discovery
// order. Returns nil when the document yields no candidates at all.
func ExtractLogo(doc *goquery.Document, originURL string) *LogoInfo {
	candidates := collectCandidates(doc, originURL)
	if len(candidates) == 0 {
		return nil
	}

	label := DomainLabel(originURL)
	for i := range candidates {
		if candidates[i].Strategy == StrategyFavicon {
			continue
		}
		adjustScore(&candidates[i], label)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	best := candidates[0]
	return &LogoInfo{
		Kind:     best.Kind,
		Src:      ResolveURL(originURL, best.Src),
		Alt:      best.Alt,
		Width:    best.Width,
		Height:   best.Height,
		Score:    best.Score,
		Strategy: best.Strategy,
	}
}

// collectCandidates runs the four generation strategies in discovery order.
func collectCandidates(doc *goquery.Document, originURL string) []LogoCandidate {
	var candidates []LogoCandidate
	candidates = append(candidates, explicitCandidates(doc)...)
	candidates = append(candidates, attributeCandidates(doc)...)
	candidates = append(candidates, positionalCandidates(doc, originURL)...)
	candidates = append(candidates, faviconCandidate(doc)...)
	return candidates
}

// explicitCandidates finds elements explicitly marked as logos through their
// class or id. A marked image scores higher than a marked container whose
// logo image has to be found inside it.
func explicitCandidates(doc *goquery.Document) []LogoCandidate {
	var candidates []LogoCandidate
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		if !dom.AttrAnyContains(s, []string{"class", "id"}, []string{"logo"}) {
			return
		}
		if dom.TagName(s) == "img" {
			if c, ok := imageCandidate(s, StrategyExplicit, scoreExplicitSelf); ok {
				candidates = append(candidates, c)
			}
			return
		}
		nested := s.Find("img").First()
		if nested.Length() == 0 {
			return
		}
		if c, ok := imageCandidate(nested, StrategyExplicit, scoreExplicitContained); ok {
			candidates = append(candidates, c)
		}
	})
	return candidates
}

// attributeCandidates matches every image whose src, alt, class or id
// contains a logo pattern. The score depends on which attribute matched:
// src beats class/id beats alt.
func attributeCandidates(doc *goquery.Document) []LogoCandidate {
	var candidates []LogoCandidate
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		var score int
		switch {
		case attrMatchesAnyPattern(s, "src"):
			score = scoreAttrSrc
		case attrMatchesAnyPattern(s, "class") || attrMatchesAnyPattern(s, "id"):
			score = scoreAttrClassID
		case attrMatchesAnyPattern(s, "alt"):
			score = scoreAttrAlt
		default:
			return
		}
		if c, ok := imageCandidate(s, StrategyAttribute, score); ok {
			candidates = append(candidates, c)
		}
	})
	return candidates
}

func attrMatchesAnyPattern(s *goquery.Selection, name string) bool {
	for _, pattern := range logoPatterns {
		if dom.AttrContains(s, name, pattern) {
			return true
		}
	}
	return false
}

// positionalCandidates scores images that sit inside header-like or
// navigation-like containers, with a bonus when the image's nearest ancestor
// anchor links back to the home page.
func positionalCandidates(doc *goquery.Document, originURL string) []LogoCandidate {
	header := dom.HeaderRegion()
	var candidates []LogoCandidate
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		score, ok := positionalScore(s, header)
		if !ok {
			return
		}
		if anchorsHome(s, originURL) {
			score += bonusLinksHome
		}
		if c, cok := imageCandidate(s, StrategyPositional, score); cok {
			candidates = append(candidates, c)
		}
	})
	return candidates
}

// positionalScore walks the ancestor chain looking for a header-like
// container. Semantic tags rank above class/id naming.
func positionalScore(s *goquery.Selection, header dom.Region) (int, bool) {
	score := 0
	found := dom.HasAncestor(s, func(cur *goquery.Selection) bool {
		if !header(cur) {
			return false
		}
		switch dom.TagName(cur) {
		case "header":
			score = scoreHeaderTag
		case "nav":
			score = scoreNavTag
		default:
			score = scoreHeaderName
		}
		return true
	})
	return score, found
}

// anchorsHome reports whether the image's nearest ancestor anchor points at
// the site root: "/", "#", the page's own URL, or an index.html path.
func anchorsHome(s *goquery.Selection, originURL string) bool {
	anchor := s.Closest("a")
	if anchor.Length() == 0 {
		return false
	}
	href, exists := anchor.Attr("href")
	if !exists {
		return false
	}
	href = strings.TrimSpace(href)
	switch href {
	case "/", "#", originURL, strings.TrimSuffix(originURL, "/"):
		return true
	}
	return strings.HasSuffix(href, "index.html")
}

// faviconCandidate adds the icon link as a last-resort candidate. It is
// exempt from scoring adjustments and keeps its fixed low score.
func faviconCandidate(doc *goquery.Document) []LogoCandidate {
	link := doc.Find(`link[rel*="icon"], link[rel="apple-touch-icon"]`).First()
	if link.Length() == 0 {
		return nil
	}
	href, exists := link.Attr("href")
	if !exists || href == "" {
		return nil
	}
	return []LogoCandidate{{
		Strategy: StrategyFavicon,
		Kind:     KindIcon,
		Src:      href,
		Alt:      "Site Icon",
		IconLike: true,
		Score:    scoreFavicon,
	}}
}

// imageCandidate builds a candidate from an img element. Images without a
// src cannot be downloaded and are not candidates.
func imageCandidate(s *goquery.Selection, strategy Strategy, baseScore int) (LogoCandidate, bool) {
	src, _ := s.Attr("src")
	if src == "" {
		return LogoCandidate{}, false
	}
	alt, _ := s.Attr("alt")
	return LogoCandidate{
		Strategy: strategy,
		Kind:     KindImage,
		Src:      src,
		Alt:      alt,
		Width:    declaredDimension(s, "width"),
		Height:   declaredDimension(s, "height"),
		IconLike: strings.Contains(strings.ToLower(src), "icon"),
		Score:    baseScore,
	}, true
}

// declaredDimension parses a declared integer dimension attribute, returning
// 0 when absent or unparseable.
func declaredDimension(s *goquery.Selection, name string) int {
	raw, exists := s.Attr(name)
	if !exists {
		return 0
	}
	value, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(raw, "px")))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// adjustScore applies the post-generation adjustments: domain-name affinity,
// marketing-image penalties, dimension envelope and aspect ratio. Each
// contribution is independent and additive.
func adjustScore(c *LogoCandidate, domainLabel string) {
	src := strings.ToLower(c.Src)
	alt := strings.ToLower(c.Alt)

	if domainLabel != "" && (strings.Contains(src, domainLabel) || strings.Contains(alt, domainLabel)) {
		c.Score += bonusDomainMatch
	}

	for _, penalty := range []struct {
		marker string
		delta  int
	}{
		{"banner", penaltyBanner},
		{"product", penaltyProduct},
		{"slider", penaltySlider},
	} {
		if strings.Contains(src, penalty.marker) || strings.Contains(alt, penalty.marker) {
			c.Score += penalty.delta
		}
	}

	if c.Width > 0 && c.Height > 0 &&
		c.Width >= typicalMinSide && c.Width <= typicalMaxWidth &&
		c.Height >= typicalMinSide && c.Height <= typicalMaxHeight {
		c.Score += bonusTypicalSize
	}
	if c.Width > oversizeWidth || c.Height > oversizeHeight {
		c.Score += penaltyOversize
	}
	if !c.IconLike &&
		((c.Width > 0 && c.Width < undersizeSide) || (c.Height > 0 && c.Height < undersizeSide)) {
		c.Score += penaltyUndersize
	}

	if c.Width > 0 && c.Height > 0 {
		ratio := float64(c.Width) / float64(c.Height)
		if ratio >= aspectMin && ratio <= aspectMax {
			c.Score += bonusAspectRatio
		} else if ratio > aspectTooWide {
			c.Score += penaltyWideAspect
		}
	}
}
