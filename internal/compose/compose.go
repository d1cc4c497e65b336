// Package compose overlays a downloaded logo onto generated advertising
// images, preserving aspect ratio and alpha transparency.
package compose

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Logo placement: fixed top-left offset, logo width capped at a fraction of
// the base image width.
const (
	logoOffsetX = 20
	logoOffsetY = 20

	// logoWidthDivisor caps the logo at 1/5 (20%) of the base width.
	logoWidthDivisor = 5
)

// Overlay pastes the logo onto the base image and writes the result as PNG
// to outPath. The logo is scaled down when wider than 20% of the base width;
// its alpha channel acts as the paste mask, so opaque formats paste opaque.
func Overlay(basePath, logoPath, outPath string) error {
	base, err := decodeImage(basePath)
	if err != nil {
		return &CompositeError{Path: basePath, Message: "failed to decode base image", Cause: err}
	}
	logo, err := decodeImage(logoPath)
	if err != nil {
		return &CompositeError{Path: logoPath, Message: "failed to decode logo", Cause: err}
	}

	maxLogoWidth := base.Bounds().Dx() / logoWidthDivisor
	if maxLogoWidth > 0 && logo.Bounds().Dx() > maxLogoWidth {
		logo = scaleToWidth(logo, maxLogoWidth)
	}

	canvas := image.NewRGBA(base.Bounds())
	draw.Draw(canvas, base.Bounds(), base, base.Bounds().Min, draw.Src)

	target := image.Rect(
		canvas.Bounds().Min.X+logoOffsetX,
		canvas.Bounds().Min.Y+logoOffsetY,
		canvas.Bounds().Min.X+logoOffsetX+logo.Bounds().Dx(),
		canvas.Bounds().Min.Y+logoOffsetY+logo.Bounds().Dy(),
	)
	draw.Draw(canvas, target, logo, logo.Bounds().Min, draw.Over)

	out, err := os.Create(outPath)
	if err != nil {
		return &CompositeError{Path: outPath, Message: "failed to create output file", Cause: err}
	}
	defer func() { _ = out.Close() }()

	if err := png.Encode(out, canvas); err != nil {
		return &CompositeError{Path: outPath, Message: "failed to encode output image", Cause: err}
	}
	return nil
}

// decodeImage opens and decodes an image in any registered format
// (png, jpeg, gif, webp).
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	return img, err
}

// scaleToWidth resizes an image to the given width, preserving aspect ratio.
func scaleToWidth(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	height := int(float64(width) * float64(bounds.Dy()) / float64(bounds.Dx()))
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

// CompositeError represents a failure during logo compositing.
type CompositeError struct {
	Path    string
	Message string
	Cause   error
}

func (e *CompositeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("composite error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("composite error for %s: %s", e.Path, e.Message)
}

func (e *CompositeError) Unwrap() error {
	return e.Cause
}
