// Package fonts provides the caption font used on labels.
//
// Captions are set in Go Mono, a monospace font distributed with
// golang.org/x/image. Shipping the font inside the binary keeps PDF output
// identical across machines, independent of installed system fonts.
package fonts

import (
	"encoding/base64"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the family name used to register and reference the font.
const FontFamily = "Go Mono"

// FallbackFontFamily is the CSS font-family list used in SVG output.
const FallbackFontFamily = `'Go Mono', 'JetBrains Mono', monospace`

// MonoTTF returns the TrueType font data.
func MonoTTF() []byte {
	return gomono.TTF
}

// Cache for the base64-encoded font (computed once on first access).
var (
	ttfBase64     string
	ttfBase64Once sync.Once
)

// MonoTTFBase64 returns the TrueType font data as a base64 string,
// suitable for a data: URL in an SVG @font-face rule.
// The result is cached after first computation.
func MonoTTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(gomono.TTF)
	})
	return ttfBase64
}

var (
	monoFont     *opentype.Font
	monoFontErr  error
	monoFontOnce sync.Once
)

// MonoFace returns a rasterizing face of the font where size is the em
// height in pixels.
func MonoFace(size float64) (font.Face, error) {
	monoFontOnce.Do(func() {
		monoFont, monoFontErr = opentype.Parse(gomono.TTF)
	})
	if monoFontErr != nil {
		return nil, monoFontErr
	}
	return opentype.NewFace(monoFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
