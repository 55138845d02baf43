package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qrlabels/pkg/config"
	"github.com/matzehuels/qrlabels/pkg/errors"
	"github.com/matzehuels/qrlabels/pkg/label"
	"github.com/matzehuels/qrlabels/pkg/pipeline"
)

// Flag names.
const (
	flagCount     = "count"
	flagRepeat    = "repeat"
	flagScale     = "scale"
	flagGrouped   = "grouped"
	flagFill      = "fill"
	flagCutLines  = "include-cut-lines"
	flagFrom      = "from"
	flagOutput    = "output"
	flagName      = "name"
	flagSaveSVGs  = "save-svgs"
	flagSavePNGs  = "save-pngs"
	flagSaveCodes = "save-codes"
	flagSeed      = "seed"
	flagEncoder   = "encoder"
)

// runFlags holds the raw flag values of a run. Only flags the user
// actually set are applied; see resolveOptions.
type runFlags struct {
	count    int
	repeat   int
	scale    float64
	grouped  bool
	fill     bool
	cutLines bool
	from     string

	output    string
	name      string
	saveSVGs  bool
	savePNGs  bool
	saveCodes bool
	seed      uint64
	encoder   string
}

// addLayoutFlags registers the flags that shape the page layout.
func addLayoutFlags(cmd *cobra.Command, f *runFlags) {
	fl := cmd.Flags()
	fl.IntVarP(&f.count, flagCount, "c", pipeline.DefaultCount, "number of unique codes")
	fl.IntVarP(&f.repeat, flagRepeat, "r", pipeline.DefaultRepeat, "copies of each code")
	fl.Float64VarP(&f.scale, flagScale, "s", pipeline.DefaultScale, "label edge length in inches")
	fl.BoolVar(&f.grouped, flagGrouped, false, "start each code on a new row")
	fl.BoolVar(&f.fill, flagFill, false, "pad each code's last row with extra copies (turns on --grouped)")
	fl.BoolVar(&f.cutLines, flagCutLines, false, "draw dotted cut lines between labels")
	fl.StringVar(&f.from, flagFrom, "", "reprint codes from a saved code list instead of generating")
}

// addExportFlags registers the flags that control generation and output.
func addExportFlags(cmd *cobra.Command, f *runFlags) {
	fl := cmd.Flags()
	fl.StringVarP(&f.output, flagOutput, "o", pipeline.DefaultOutput, "output directory")
	fl.StringVarP(&f.name, flagName, "n", "", "base name for output files")
	fl.BoolVar(&f.saveSVGs, flagSaveSVGs, false, "also write one SVG per page")
	fl.BoolVar(&f.savePNGs, flagSavePNGs, false, "also write one PNG preview per page")
	fl.BoolVar(&f.saveCodes, flagSaveCodes, false, "also write the generated codes to a text file")
	fl.Uint64Var(&f.seed, flagSeed, 0, "seed for reproducible codes (0 = random)")
	fl.StringVar(&f.encoder, flagEncoder, pipeline.DefaultEncoder, fmt.Sprintf("QR encoder %v", label.EncoderNames()))

	_ = cmd.RegisterFlagCompletionFunc(flagEncoder, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return label.EncoderNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

// resolveOptions builds the run options. Sources apply in order of
// increasing precedence: built-in defaults, the config file, SPEC, and
// flags set on the command line. SPEC conflicts with an explicit --count,
// --repeat or --scale; --from conflicts with SPEC and --count.
func (c *CLI) resolveOptions(cmd *cobra.Command, args []string, f *runFlags) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	if err := c.loadConfig(&opts); err != nil {
		return opts, err
	}

	changed := cmd.Flags().Changed

	if len(args) == 1 {
		sp, err := parseSpec(args[0])
		if err != nil {
			return opts, err
		}
		for _, name := range []string{flagCount, flagRepeat, flagScale} {
			if changed(name) {
				return opts, errors.New(errors.ErrCodeConflict,
					"spec %q conflicts with --%s: use one or the other", args[0], name)
			}
		}
		opts.Count = sp.count
		if sp.hasRepeat() {
			opts.Repeat = sp.repeat
		}
		if sp.hasScale() {
			opts.Scale = sp.scale
		}
	}

	if changed(flagFrom) {
		if len(args) == 1 {
			return opts, errors.New(errors.ErrCodeConflict, "--from conflicts with spec %q", args[0])
		}
		if changed(flagCount) {
			return opts, errors.New(errors.ErrCodeConflict, "--from conflicts with --count: the code list sets the count")
		}
		opts.CodesFile = f.from
		opts.Count = 0
	}

	if changed(flagCount) {
		opts.Count = f.count
	}
	if changed(flagRepeat) {
		opts.Repeat = f.repeat
	}
	if changed(flagScale) {
		opts.Scale = f.scale
	}
	if changed(flagGrouped) {
		opts.Grouped = f.grouped
	}
	if changed(flagFill) {
		opts.Fill = f.fill
	}
	if changed(flagCutLines) {
		opts.CutLines = f.cutLines
	}
	if changed(flagOutput) {
		opts.Output = f.output
	}
	if changed(flagName) {
		opts.Name = f.name
	}
	if changed(flagSaveSVGs) {
		opts.SaveSVGs = f.saveSVGs
	}
	if changed(flagSavePNGs) {
		opts.SavePNGs = f.savePNGs
	}
	if changed(flagSaveCodes) {
		opts.SaveCodes = f.saveCodes
	}
	if changed(flagSeed) {
		opts.Seed = f.seed
	}
	if changed(flagEncoder) {
		opts.Encoder = f.encoder
	}

	opts.Logger = c.Logger
	return opts, nil
}

// loadConfig applies the --config file, or the default config file if one
// exists.
func (c *CLI) loadConfig(opts *pipeline.Options) error {
	if c.configPath != "" {
		if err := config.Load(c.configPath, opts); err != nil {
			return err
		}
		c.Logger.Debug("loaded config", "path", c.configPath)
		return nil
	}
	path, err := config.LoadDefault(opts)
	if err != nil {
		return err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	return nil
}

// runGenerate executes a full run and reports the written files.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spinner := newSpinner(ctx, os.Stderr, "Rendering labels...")
	spinner.Start()

	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Label generation failed")
		return err
	}
	spinner.Stop()

	prog.done(fmt.Sprintf("Placed %s on %s", plural(result.Stats.Placements, "label"), plural(result.Stats.Pages, "page")))

	printSuccess("Label sheet ready")
	printFile(result.Artifacts.PDF)
	for _, path := range result.Artifacts.SVGs {
		printFile(path)
	}
	for _, path := range result.Artifacts.PNGs {
		printFile(path)
	}
	if result.Artifacts.Codes != "" {
		printFile(result.Artifacts.Codes)
	}
	printSummary(result.Stats.Codes, result.Stats.Placements, result.Stats.Pages)

	if result.Artifacts.Codes != "" {
		printNewline()
		printNextStep("Reprint these codes", appName+" --from "+result.Artifacts.Codes)
	}
	return nil
}
