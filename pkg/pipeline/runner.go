package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qrlabels/pkg/errors"
	qrio "github.com/matzehuels/qrlabels/pkg/io"
	"github.com/matzehuels/qrlabels/pkg/layout"
)

// Runner executes label runs.
//
// The Runner holds no run state; the same Runner can execute any number of
// runs with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner logging to logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete generate → render → layout → export pipeline.
//
// Options are validated and the output directory is probed before any code
// is generated. The context is checked between stages; a cancelled run
// leaves the artifacts of completed stages only.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := qrio.CheckWritable(opts.Output); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Generate
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	codes, err := GenerateCodes(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Codes = codes
	result.Stats.Codes = len(codes)
	result.Stats.GenerateTime = time.Since(start)

	source := "generated"
	if opts.CodesFile != "" {
		source = "imported"
	}
	opts.Logger.Info(source+" codes",
		"count", len(codes),
		"duration", result.Stats.GenerateTime)
	opts.Logger.Debug("codes", "list", codes)

	// An imported list sets the count only now; check the run size before
	// rendering anything.
	if err := layout.ValidatePlacements(len(codes), opts.Geometry().Grid(), opts.LayoutOptions()); err != nil {
		return nil, err
	}

	// Stage 2: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	labels, err := RenderLabels(ctx, codes, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(start)

	opts.Logger.Info("rendered labels",
		"labels", labels.Len(),
		"size", fmt.Sprintf("%.2fin", opts.Scale),
		"encoder", opts.Encoder,
		"duration", result.Stats.RenderTime)

	// Stage 3: Layout
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	l, err := PlanLayout(ctx, codes, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.Placements = l.Placements()
	result.Stats.Pages = len(l.Pages)
	result.Stats.LayoutTime = time.Since(start)

	opts.Logger.Info("computed layout",
		"grid", l.Grid.String(),
		"placements", result.Stats.Placements,
		"pages", result.Stats.Pages,
		"duration", result.Stats.LayoutTime)

	// Stage 4: Export
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	arts, err := Export(ctx, l, labels, codes, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = arts
	result.Stats.ExportTime = time.Since(start)

	opts.Logger.Info("exported artifacts",
		"formats", opts.Formats(),
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Plan computes the page grid and page count of a run without generating,
// rendering or writing anything. When opts.CodesFile is set the file is
// read to learn the code count.
func (r *Runner) Plan(opts Options) (*Preview, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	count := opts.Count
	if opts.CodesFile != "" {
		codes, err := qrio.ImportCodes(opts.CodesFile)
		if err != nil {
			return nil, err
		}
		count = len(codes)
	}

	geom := opts.Geometry()
	grid := geom.Grid()
	lopts := opts.LayoutOptions()
	pages, err := layout.PageCount(count, grid, lopts)
	if err != nil {
		return nil, err
	}
	if pages == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "no pages planned for %d codes", count)
	}

	copies := layout.CopiesPerCode(grid, lopts)
	return &Preview{
		Geometry:   geom,
		Grid:       grid,
		Count:      count,
		Copies:     copies,
		Placements: count * copies,
		Pages:      pages,
	}, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
