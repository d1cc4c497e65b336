// Package dom provides a queryable index over parsed HTML documents.
// It centralizes the goquery parsing and traversal helpers shared by the
// visual identity extractors.
package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parse builds a queryable document from raw HTML.
func Parse(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, &ParseError{Message: "failed to parse HTML", Cause: err}
	}
	return doc, nil
}

// AttrContains reports whether the named attribute of the selection's first
// element contains substr, case-insensitively.
func AttrContains(s *goquery.Selection, name, substr string) bool {
	val, exists := s.Attr(name)
	if !exists {
		return false
	}
	return strings.Contains(strings.ToLower(val), strings.ToLower(substr))
}

// AttrAnyContains reports whether any of the named attributes contains any of
// the given substrings, case-insensitively.
func AttrAnyContains(s *goquery.Selection, names []string, substrs []string) bool {
	for _, name := range names {
		for _, substr := range substrs {
			if AttrContains(s, name, substr) {
				return true
			}
		}
	}
	return false
}

// HasToken reports whether word appears as a whole class token or as the
// element's exact id, case-insensitively. Unlike AttrContains this does not
// match substrings, so "navy-blue" is not a "nav".
func HasToken(s *goquery.Selection, word string) bool {
	if id, exists := s.Attr("id"); exists && strings.EqualFold(strings.TrimSpace(id), word) {
		return true
	}
	class, exists := s.Attr("class")
	if !exists {
		return false
	}
	for _, token := range strings.Fields(class) {
		if strings.EqualFold(token, word) {
			return true
		}
	}
	return false
}

// HasAncestor walks the parent chain (including the element itself) and
// reports whether any element satisfies pred.
func HasAncestor(s *goquery.Selection, pred func(*goquery.Selection) bool) bool {
	for cur := s; cur.Length() > 0; cur = cur.Parent() {
		if pred(cur) {
			return true
		}
	}
	return false
}

// TagName returns the lowercase tag name of the selection's first element,
// or an empty string for an empty selection.
func TagName(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	return strings.ToLower(goquery.NodeName(s))
}
