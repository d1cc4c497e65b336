package identity

import (
	"net/url"
	"strings"
)

// ResolveURL joins a possibly relative reference against the site origin.
// Absolute URLs and data: URIs pass through unchanged; unparseable references
// are returned as-is.
func ResolveURL(origin, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "data:") {
		return ref
	}

	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if refURL.IsAbs() {
		return ref
	}

	base, err := url.Parse(origin)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return ref
	}
	return base.ResolveReference(refURL).String()
}

// DomainLabel returns the second-level domain label of a URL, lowercased.
// For "https://www.acme.com/x" it returns "acme". Hosts without a dot return
// the host itself; an unparseable URL returns an empty string.
func DomainLabel(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return ""
	}
	parts := strings.Split(host, ".")
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return host
}
