package identity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ad-generator/internal/dom"
)

func TestExtractHeroImages_DocumentOrder(t *testing.T) {
	html := `
		<html><body>
			<img src="/one.jpg" width="800" height="400">
			<img src="/two.jpg" width="400" height="300">
		</body></html>
	`
	doc, err := dom.Parse(html)
	require.NoError(t, err)

	images := ExtractHeroImages(doc, "https://example.com", 5)
	assert.Equal(t, []string{
		"https://example.com/one.jpg",
		"https://example.com/two.jpg",
	}, images)
}

func TestExtractHeroImages_ExcludesLogoLikeSources(t *testing.T) {
	html := `
		<html><body>
			<img src="/site-LOGO.png" width="800" height="400">
			<img src="/favicon-large.png" width="800" height="400">
			<img src="/icons/star.png" width="800" height="400">
			<img src="/photo.jpg" width="800" height="400">
		</body></html>
	`
	doc, err := dom.Parse(html)
	require.NoError(t, err)

	images := ExtractHeroImages(doc, "https://example.com", 5)
	assert.Equal(t, []string{"https://example.com/photo.jpg"}, images)
}

func TestExtractHeroImages_SkipsNavigationAndFooter(t *testing.T) {
	html := `
		<html><body>
			<nav><img src="/nav-photo.jpg" width="800" height="400"></nav>
			<main><img src="/hero.jpg" width="800" height="400"></main>
			<footer><img src="/footer-photo.jpg" width="800" height="400"></footer>
			<div class="navbar"><img src="/bar.jpg" width="800" height="400"></div>
		</body></html>
	`
	doc, err := dom.Parse(html)
	require.NoError(t, err)

	images := ExtractHeroImages(doc, "https://example.com", 5)
	assert.Equal(t, []string{"https://example.com/hero.jpg"}, images)
}

func TestExtractHeroImages_NavLikeClassNameIsNotChrome(t *testing.T) {
	html := `
		<html><body>
			<div class="navy-blue"><img src="/sea.jpg" width="800" height="400"></div>
			<div class="nav"><img src="/menu.jpg" width="800" height="400"></div>
		</body></html>
	`
	doc, err := dom.Parse(html)
	require.NoError(t, err)

	images := ExtractHeroImages(doc, "https://example.com", 5)
	assert.Equal(t, []string{"https://example.com/sea.jpg"}, images)
}

func TestExtractHeroImages_SizeFilter(t *testing.T) {
	html := `
		<html><body>
			<img src="/small.jpg" width="200" height="150">
			<img src="/wide.jpg" width="400" height="100">
			<img src="/tall.jpg" width="100" height="300">
			<img src="/no-dims.jpg">
			<img src="/bad-dims.jpg" width="100%" height="auto">
		</body></html>
	`
	doc, err := dom.Parse(html)
	require.NoError(t, err)

	images := ExtractHeroImages(doc, "https://example.com", 5)
	// Only small.jpg has both dimensions declared, parseable and under the
	// thresholds; everything else is included.
	assert.Equal(t, []string{
		"https://example.com/wide.jpg",
		"https://example.com/tall.jpg",
		"https://example.com/no-dims.jpg",
		"https://example.com/bad-dims.jpg",
	}, images)
}

func TestExtractHeroImages_RespectsCap(t *testing.T) {
	var html string
	for i := 0; i < 8; i++ {
		html += fmt.Sprintf(`<img src="/photo%d.jpg" width="800" height="400">`, i)
	}
	doc, err := dom.Parse("<html><body>" + html + "</body></html>")
	require.NoError(t, err)

	images := ExtractHeroImages(doc, "https://example.com", 3)
	assert.Len(t, images, 3)
	assert.Equal(t, "https://example.com/photo0.jpg", images[0])
}

func TestExtractHeroImages_ZeroMaxUsesDefault(t *testing.T) {
	var html string
	for i := 0; i < 8; i++ {
		html += fmt.Sprintf(`<img src="/photo%d.jpg" width="800" height="400">`, i)
	}
	doc, err := dom.Parse("<html><body>" + html + "</body></html>")
	require.NoError(t, err)

	images := ExtractHeroImages(doc, "https://example.com", 0)
	assert.Len(t, images, DefaultMaxHeroImages)
}
