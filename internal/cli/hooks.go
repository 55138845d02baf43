package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qrlabels/pkg/observability"
)

// TraceStages registers pipeline hooks that log every stage at debug level.
// main installs them when --verbose is set.
func (c *CLI) TraceStages() {
	observability.SetPipelineHooks(&logHooks{logger: c.Logger})
}

// logHooks reports pipeline stage events to a logger.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnGenerateStart(_ context.Context, count int) {
	h.logger.Debug("Stage started", "stage", "generate", "codes", count)
}

func (h *logHooks) OnGenerateComplete(_ context.Context, count int, d time.Duration, err error) {
	h.done("generate", d, err, "codes", count)
}

func (h *logHooks) OnRenderStart(_ context.Context, encoder string, labels int) {
	h.logger.Debug("Stage started", "stage", "render", "encoder", encoder, "labels", labels)
}

func (h *logHooks) OnRenderComplete(_ context.Context, encoder string, d time.Duration, err error) {
	h.done("render", d, err, "encoder", encoder)
}

func (h *logHooks) OnLayoutStart(_ context.Context, placements int) {
	h.logger.Debug("Stage started", "stage", "layout", "placements", placements)
}

func (h *logHooks) OnLayoutComplete(_ context.Context, pages int, d time.Duration, err error) {
	h.done("layout", d, err, "pages", pages)
}

func (h *logHooks) OnExportStart(_ context.Context, formats []string) {
	h.logger.Debug("Stage started", "stage", "export", "formats", formats)
}

func (h *logHooks) OnExportComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("export", d, err, "formats", formats)
}

func (h *logHooks) done(stage string, d time.Duration, err error, kv ...any) {
	kv = append([]any{"stage", stage, "elapsed", d.Round(time.Millisecond)}, kv...)
	if err != nil {
		h.logger.Debug("Stage failed", append(kv, "error", err)...)
		return
	}
	h.logger.Debug("Stage finished", kv...)
}
