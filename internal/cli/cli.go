package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrlabels/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "qrlabels"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag; empty selects the default location.
	configPath string
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself generates a label sheet.
func (c *CLI) RootCommand() *cobra.Command {
	var flags runFlags

	root := &cobra.Command{
		Use:   appName + " [SPEC]",
		Short: "qrlabels prints sheets of unique QR code labels",
		Long: `qrlabels generates unique short codes, renders each as a captioned QR
label and tiles the labels onto printable LETTER pages.

SPEC is a shorthand for count[xrepeat][@scale]: "5x3@1.5" prints 5 unique
codes, 3 copies each, on 1.5 inch labels. It cannot be combined with
--count, --repeat or --scale.

--grouped starts every code on a new row. --fill pads each code's last
row with extra copies so no row mixes codes; it always turns on
--grouped.`,
		Example: `  qrlabels 20
  qrlabels 5x3@1.5 --name garage --include-cut-lines
  qrlabels --count 10 --repeat 4 --fill --save-codes
  qrlabels --from garage-qr-codes_codes.txt --scale 2`,
		Version:       buildinfo.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd, args, &flags)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/qrlabels/config.toml)")
	addLayoutFlags(root, &flags)
	addExportFlags(root, &flags)

	root.AddCommand(c.gridCommand())
	root.AddCommand(c.completionCommand())

	return root
}
