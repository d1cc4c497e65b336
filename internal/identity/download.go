package identity

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jonathan/ad-generator/internal/fetch"
)

// DefaultLogoDir is the default storage area for downloaded logos.
const DefaultLogoDir = "logos"

// DownloadLogo fetches the winning logo's bytes and persists them under
// outputDir as logo_<domain-label>.<ext>. Each domain label owns exactly one
// logo slot: a later download for the same label overwrites silently. A nil
// info is not an error; it returns an empty path.
func DownloadLogo(ctx context.Context, info *LogoInfo, outputDir string) (string, error) {
	if info == nil || info.Src == "" {
		return "", nil
	}
	if outputDir == "" {
		outputDir = DefaultLogoDir
	}

	data, err := fetch.Bytes(ctx, info.Src, nil)
	if err != nil {
		return "", &DownloadError{URL: info.Src, Message: "failed to download logo", Cause: err}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", &DownloadError{URL: info.Src, Message: "failed to create logo directory", Cause: err}
	}

	label := DomainLabel(info.Src)
	if label == "" {
		label = "site"
	}
	filename := filepath.Join(outputDir, fmt.Sprintf("logo_%s%s", label, extensionFor(info.Src)))

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", &DownloadError{URL: info.Src, Message: "failed to write logo file", Cause: err}
	}

	return filename, nil
}

// extensionFor derives a file extension from the URL suffix. Anything beyond
// png/jpg/svg defaults to .png even when the bytes are another format; the
// slot name matters more than strict accuracy here.
func extensionFor(rawURL string) string {
	suffix := strings.ToLower(rawURL)
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Path != "" {
		suffix = strings.ToLower(path.Ext(parsed.Path))
	}

	switch {
	case strings.HasSuffix(suffix, ".jpg"), strings.HasSuffix(suffix, ".jpeg"):
		return ".jpg"
	case strings.HasSuffix(suffix, ".svg"):
		return ".svg"
	default:
		return ".png"
	}
}
