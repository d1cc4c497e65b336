package dom

import "github.com/PuerkitoBio/goquery"

// Region is a predicate describing a part of the document. Extractors use
// regions to skip elements during traversal instead of pruning the tree, so
// several extractors can walk the same parsed document safely.
type Region func(*goquery.Selection) bool

// ChromeRegion matches navigation and footer chrome: nav and footer tags, and
// containers whose class token or id equals footer, nav or navbar. Exact
// token matching keeps names like "navy-blue" out of the exclusion zone.
func ChromeRegion() Region {
	names := []string{"footer", "navbar", "nav"}
	return func(s *goquery.Selection) bool {
		switch TagName(s) {
		case "nav", "footer":
			return true
		}
		for _, name := range names {
			if HasToken(s, name) {
				return true
			}
		}
		return false
	}
}

// HeaderRegion matches header-like and navigation-like containers: header and
// nav tags, and containers whose class or id names header, navbar, nav or top.
func HeaderRegion() Region {
	attrs := []string{"class", "id"}
	names := []string{"header", "navbar", "nav", "top"}
	return func(s *goquery.Selection) bool {
		switch TagName(s) {
		case "header", "nav":
			return true
		}
		return AttrAnyContains(s, attrs, names)
	}
}

// Inside reports whether the selection sits inside the region, checking the
// element itself and every ancestor.
func Inside(s *goquery.Selection, region Region) bool {
	return HasAncestor(s, func(cur *goquery.Selection) bool { return region(cur) })
}
