package identity

import "github.com/PuerkitoBio/goquery"

// Extract runs the three extractors over one parsed document and assembles
// the visual identity. Each extractor works independently; a site with no
// detectable logo still yields hero images and a palette. The logo is not
// downloaded here - see DownloadLogo.
func Extract(doc *goquery.Document, originURL string, maxHeroImages int) *VisualIdentity {
	return &VisualIdentity{
		Logo:       Logo{Info: ExtractLogo(doc, originURL)},
		HeroImages: ExtractHeroImages(doc, originURL, maxHeroImages),
		Palette:    ExtractPalette(doc),
	}
}
