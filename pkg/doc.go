// Package pkg provides the core libraries for qrlabels, a generator for
// printable sheets of QR-code labels.
//
// # Overview
//
// qrlabels turns a count of short unique codes into LETTER-sized pages of
// square labels, each carrying a QR symbol and a human-readable caption.
// The pkg directory is organized by pipeline stage:
//
//  1. [codegen] - Unique code generation over a 35-character alphabet
//  2. [label] - Label rendering (QR symbol plus caption box)
//  3. [layout] - Page geometry and tiling of labels onto pages
//  4. [sink] - Output formats (PDF, SVG, PNG, codes list)
//  5. [io] - Artifact naming, writing and code import
//
// # Architecture
//
// The typical data flow:
//
//	count, seed
//	     ↓
//	[codegen] package (unique codes)
//	     ↓
//	[label] package (one rendered label per code)
//	     ↓
//	[layout] package (grid + pages)
//	     ↓
//	[sink] + [io] packages (PDF, SVG, PNG, codes.txt)
//
// [pipeline] wires the stages together and is what the CLI calls.
//
// # Quick Start
//
//	opts := pipeline.Options{Count: 10, Repeat: 2, Scale: 1.5}
//	res, err := pipeline.NewRunner(nil).Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Artifacts.PDF)
//
// Or drive the stages by hand:
//
//	codes, _ := codegen.New().Generate(10)
//	labels, _ := label.RenderAll(codes, 1.5, label.SkipEncoder{})
//	l, _ := layout.Plan(codes, layout.NewGeometry(1.5, false), layout.Options{Repeat: 2})
//	pdf, _ := sink.RenderPDF(l, labels)
//
// # Supporting Packages
//
// [config] - TOML defaults loaded from the user's config directory.
//
// [errors] - Coded errors shared by every package.
//
// [fonts] - Embedded caption font.
//
// [observability] - Pipeline hooks for timing and tracing.
//
// [buildinfo] - Version information injected at build time.
//
// [codegen]: https://pkg.go.dev/github.com/matzehuels/qrlabels/pkg/codegen
// [label]: https://pkg.go.dev/github.com/matzehuels/qrlabels/pkg/label
// [layout]: https://pkg.go.dev/github.com/matzehuels/qrlabels/pkg/layout
// [sink]: https://pkg.go.dev/github.com/matzehuels/qrlabels/pkg/sink
// [io]: https://pkg.go.dev/github.com/matzehuels/qrlabels/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/qrlabels/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/qrlabels/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/qrlabels/pkg/errors
// [fonts]: https://pkg.go.dev/github.com/matzehuels/qrlabels/pkg/fonts
// [observability]: https://pkg.go.dev/github.com/matzehuels/qrlabels/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/qrlabels/pkg/buildinfo
package pkg
