package dom

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BuildsDocument(t *testing.T) {
	doc, err := Parse(`<html><body><p id="x">hello</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "hello", doc.Find("#x").Text())
}

func TestParse_MalformedHTMLStillParses(t *testing.T) {
	// html.Parse repairs broken markup rather than failing.
	doc, err := Parse(`<div><p>unclosed`)
	require.NoError(t, err)
	assert.Equal(t, "unclosed", doc.Find("p").Text())
}

func TestAttrContains_CaseInsensitive(t *testing.T) {
	doc, err := Parse(`<html><body><img class="Site-LOGO" src="/a.png"></body></html>`)
	require.NoError(t, err)

	img := doc.Find("img").First()
	assert.True(t, AttrContains(img, "class", "logo"))
	assert.True(t, AttrContains(img, "class", "SITE"))
	assert.False(t, AttrContains(img, "class", "banner"))
	assert.False(t, AttrContains(img, "alt", "logo"))
}

func TestAttrAnyContains(t *testing.T) {
	doc, err := Parse(`<html><body><div id="main-navbar">x</div></body></html>`)
	require.NoError(t, err)

	div := doc.Find("div").First()
	assert.True(t, AttrAnyContains(div, []string{"class", "id"}, []string{"footer", "navbar"}))
	assert.False(t, AttrAnyContains(div, []string{"class"}, []string{"navbar"}))
}

func TestHasAncestor(t *testing.T) {
	doc, err := Parse(`<html><body><header><div><img src="/a.png"></div></header></body></html>`)
	require.NoError(t, err)

	img := doc.Find("img").First()
	assert.True(t, HasAncestor(img, func(s *goquery.Selection) bool { return TagName(s) == "header" }))
	assert.False(t, HasAncestor(img, func(s *goquery.Selection) bool { return TagName(s) == "footer" }))
	// The element itself is part of the chain
	assert.True(t, HasAncestor(img, func(s *goquery.Selection) bool { return TagName(s) == "img" }))
}

func TestTagName(t *testing.T) {
	doc, err := Parse(`<html><body><NAV>x</NAV></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "nav", TagName(doc.Find("nav").First()))
	assert.Equal(t, "", TagName(doc.Find("article")))
}

func TestHasToken(t *testing.T) {
	doc, err := Parse(`
		<html><body>
			<div class="footer sticky">a</div>
			<div class="navy-blue">b</div>
			<div id="NAV">c</div>
		</body></html>
	`)
	require.NoError(t, err)

	divs := doc.Find("div")
	assert.True(t, HasToken(divs.Eq(0), "footer"))
	assert.False(t, HasToken(divs.Eq(1), "nav"))
	assert.True(t, HasToken(divs.Eq(2), "nav"))
}

func TestChromeRegion(t *testing.T) {
	doc, err := Parse(`
		<html><body>
			<nav><img src="/a.png"></nav>
			<div class="footer dark"><img src="/b.png"></div>
			<main><img src="/c.png"></main>
			<div class="navy-blue"><img src="/d.png"></div>
		</body></html>
	`)
	require.NoError(t, err)

	chrome := ChromeRegion()
	images := doc.Find("img")
	assert.True(t, Inside(images.Eq(0), chrome))
	assert.True(t, Inside(images.Eq(1), chrome))
	assert.False(t, Inside(images.Eq(2), chrome))
	// Token match only: "navy-blue" is not navigation chrome
	assert.False(t, Inside(images.Eq(3), chrome))
}

func TestHeaderRegion(t *testing.T) {
	doc, err := Parse(`
		<html><body>
			<header><img src="/a.png"></header>
			<div id="top-bar"><img src="/b.png"></div>
			<footer><img src="/c.png"></footer>
		</body></html>
	`)
	require.NoError(t, err)

	header := HeaderRegion()
	images := doc.Find("img")
	assert.True(t, Inside(images.Eq(0), header))
	assert.True(t, Inside(images.Eq(1), header))
	assert.False(t, Inside(images.Eq(2), header))
}
