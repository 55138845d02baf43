package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/qrlabels/pkg/codegen"
	qrio "github.com/matzehuels/qrlabels/pkg/io"
	"github.com/matzehuels/qrlabels/pkg/label"
	"github.com/matzehuels/qrlabels/pkg/layout"
	"github.com/matzehuels/qrlabels/pkg/observability"
)

// GenerateCodes draws opts.Count unique codes, or reads them from
// opts.CodesFile when set.
func GenerateCodes(ctx context.Context, opts Options) (codes []string, err error) {
	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, opts.Count)
	start := time.Now()
	defer func() { hooks.OnGenerateComplete(ctx, len(codes), time.Since(start), err) }()

	if opts.CodesFile != "" {
		return qrio.ImportCodes(opts.CodesFile)
	}

	var genOpts []codegen.Option
	if opts.Seed != 0 {
		genOpts = append(genOpts, codegen.WithSeed(opts.Seed))
	}
	return codegen.New(genOpts...).Generate(opts.Count)
}

// RenderLabels encodes every code as a label drawing.
func RenderLabels(ctx context.Context, codes []string, opts Options) (set *label.Set, err error) {
	enc, err := label.EncoderByName(opts.Encoder)
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, enc.Name(), len(codes))
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, enc.Name(), time.Since(start), err) }()

	return label.RenderAll(codes, opts.Scale, enc)
}

// PlanLayout tiles codes onto pages.
func PlanLayout(ctx context.Context, codes []string, opts Options) (l layout.Layout, err error) {
	grid, lopts := opts.Geometry().Grid(), opts.LayoutOptions()
	if err := layout.ValidatePlacements(len(codes), grid, lopts); err != nil {
		return layout.Layout{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(codes)*layout.CopiesPerCode(grid, lopts))
	start := time.Now()
	defer func() { hooks.OnLayoutComplete(ctx, len(l.Pages), time.Since(start), err) }()

	return layout.Plan(codes, opts.Geometry(), opts.LayoutOptions())
}

// Export writes the run's artifacts to opts.Output.
func Export(ctx context.Context, l layout.Layout, labels *label.Set, codes []string, opts Options) (arts qrio.Artifacts, err error) {
	formats := opts.Formats()
	hooks := observability.Pipeline()
	hooks.OnExportStart(ctx, formats)
	start := time.Now()
	defer func() { hooks.OnExportComplete(ctx, formats, time.Since(start), err) }()

	exp := &qrio.Exporter{
		Dir:       opts.Output,
		Base:      opts.BaseName(),
		Title:     qrio.DocumentTitle(opts.Name),
		SaveSVGs:  opts.SaveSVGs,
		SavePNGs:  opts.SavePNGs,
		SaveCodes: opts.SaveCodes,
	}
	return exp.Export(l, labels, codes)
}
