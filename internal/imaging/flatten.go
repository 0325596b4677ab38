// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imaging decodes image files and normalizes transparency. PDF pages
// are opaque, so an image whose alpha channel is not uniformly 255 is
// flattened onto a white background before it is embedded; the caller is
// told so it can warn that color will be altered.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode opens and decodes the image at path. The supported formats are the
// registered decoders: PNG, JPEG, GIF, TIFF, WebP, and BMP.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// NeedsFlatten reports whether img carries an alpha channel that is not
// uniformly opaque. Images without an alpha channel, and alpha-capable
// images whose every pixel is fully opaque, do not need flattening.
// Every decoded type that can carry alpha (NRGBA, RGBA, their 64-bit
// forms, paletted images, and the NYCbCrA images lossy WebP decodes to)
// reports through Opaque; alpha-free types like Gray and YCbCr report
// opaque trivially.
func NeedsFlatten(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return false
}

// Flatten composites img over a white background, dropping the alpha
// channel. The result is fully opaque.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}

// Normalize prepares the image at path for PDF embedding. If the image has
// no transparency the original path is returned unchanged. Otherwise the
// flattened pixels are written as a PNG under tmpDir and that path is
// returned with flattened set; the caller owns tmpDir and its cleanup.
func Normalize(path, tmpDir string) (resolved string, flattened bool, err error) {
	img, err := Decode(path)
	if err != nil {
		return "", false, err
	}

	if !NeedsFlatten(img) {
		return path, false, nil
	}

	f, err := os.CreateTemp(tmpDir, "flat-*-"+filepath.Base(path)+".png")
	if err != nil {
		return "", false, fmt.Errorf("creating temp image: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, Flatten(img)); err != nil {
		return "", false, fmt.Errorf("encoding flattened %s: %w", path, err)
	}
	return f.Name(), true, nil
}
