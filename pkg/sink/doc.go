// Package sink turns a computed [layout.Layout] into output artifacts.
//
// # Overview
//
// A "sink" consumes the pages planned by the layout package together with
// the rendered labels and produces bytes:
//
//   - SVG: one standalone document per page, for inspection
//   - PNG: one raster preview per page
//   - PDF: a single LETTER document with one page per layout page
//   - Codes: the plain-text code list, one code per line
//
// # SVG Output
//
// [RenderSVG] defines each label once in <defs> and places it with <use>
// elements, so a page with many copies of the same code stays small. The
// caption font is embedded as a data: URL.
//
//	svg, err := sink.RenderSVG(l, l.Pages[0], labels, sink.WithSVGTitle("Garage"))
//
// # PDF Output
//
// [RenderPDF] draws directly with github.com/signintech/gopdf; no external
// converter is needed. Layout dots are scaled to PDF points (72/300).
//
//	pdf, err := sink.RenderPDF(l, labels,
//	    sink.WithTitle("Garage QR Labels"),
//	    sink.WithCodes(codes),
//	)
//
// # PNG Output
//
// [RenderPNG] rasterizes a page at one pixel per dot with the caption set
// in Go Mono, then downsamples it with github.com/disintegration/imaging to
// the preview resolution (100 ppi by default).
//
//	png, err := sink.RenderPNG(l, l.Pages[0], labels, sink.WithPNGResolution(150))
package sink
