// Package label renders a code as a square, printable label.
//
// A label is a QR symbol that fills the whole square (including a
// four-module quiet zone) with the code printed as a caption in a small
// framed box over the symbol's center. Symbols are encoded at the highest
// error-correction level so the caption box never prevents a scan.
//
// Rendering produces a [Drawing]: a list of filled rectangles for the dark
// modules and a [Caption], all in dots (1/300 inch) relative to the label's
// top-left corner. Drawings are output-agnostic; the sink package turns
// them into SVG or PDF.
//
// Two QR backends implement [Encoder]:
//   - [SkipEncoder] uses github.com/skip2/go-qrcode (default)
//   - [RSCEncoder] uses rsc.io/qr
//
// Both produce a version 1 (21×21) symbol for the five-character codes
// produced by codegen; they may pick different mask patterns.
package label
