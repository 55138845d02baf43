package io

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matzehuels/qrlabels/pkg/buildinfo"
	"github.com/matzehuels/qrlabels/pkg/errors"
	"github.com/matzehuels/qrlabels/pkg/label"
	"github.com/matzehuels/qrlabels/pkg/layout"
	"github.com/matzehuels/qrlabels/pkg/sink"
)

// Subdirectories of the output directory holding per-page artifacts.
const (
	SVGDir = "svgs"
	PNGDir = "pngs"
)

// BaseName returns the base filename for a run's artifacts: "<name>-qr-codes"
// when a name is given, otherwise "qr-codes-<scale>in".
func BaseName(name string, scale float64) string {
	if name = strings.TrimSpace(name); name != "" {
		return name + "-qr-codes"
	}
	return fmt.Sprintf("qr-codes-%.2fin", scale)
}

// DocumentTitle returns the PDF title for a run name, e.g. "Garage QR Labels".
func DocumentTitle(name string) string {
	if name = strings.TrimSpace(name); name == "" {
		return "QR Labels"
	}
	return cases.Title(language.English).String(name) + " QR Labels"
}

// Artifacts lists the files written by an export.
type Artifacts struct {
	PDF   string
	SVGs  []string
	PNGs  []string
	Codes string // empty unless the code list was saved
}

// Exporter writes a run's artifacts.
type Exporter struct {
	Dir       string // output directory
	Base      string // base filename, see BaseName
	Title     string // PDF title, see DocumentTitle
	SaveSVGs  bool
	SavePNGs  bool
	SaveCodes bool

	// PNGResolution is the preview resolution in pixels per inch;
	// 0 selects sink.DefaultPNGResolution.
	PNGResolution int
}

// Export writes the code list, the page SVGs and the page PNGs (each if
// requested) and then the combined PDF.
func (e *Exporter) Export(l layout.Layout, labels *label.Set, codes []string) (Artifacts, error) {
	var out Artifacts
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return out, errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", e.Dir)
	}

	if e.SaveCodes {
		path := filepath.Join(e.Dir, e.Base+"_codes.txt")
		if err := writeFile(path, sink.RenderCodes(codes)); err != nil {
			return out, err
		}
		out.Codes = path
	}

	if e.SaveSVGs {
		paths, err := e.exportPages(l, SVGDir, "svg", func(page layout.Page) ([]byte, error) {
			title := fmt.Sprintf("%s, page %d", e.Title, page.Number+1)
			return sink.RenderSVG(l, page, labels, sink.WithSVGTitle(title))
		})
		if err != nil {
			return out, err
		}
		out.SVGs = paths
	}

	if e.SavePNGs {
		var opts []sink.PNGOption
		if e.PNGResolution != 0 {
			opts = append(opts, sink.WithPNGResolution(e.PNGResolution))
		}
		paths, err := e.exportPages(l, PNGDir, "png", func(page layout.Page) ([]byte, error) {
			return sink.RenderPNG(l, page, labels, opts...)
		})
		if err != nil {
			return out, err
		}
		out.PNGs = paths
	}

	pdf, err := sink.RenderPDF(l, labels,
		sink.WithTitle(e.Title),
		sink.WithCodes(codes),
		sink.WithProducer(buildinfo.Producer()),
	)
	if err != nil {
		return out, err
	}
	path := filepath.Join(e.Dir, e.Base+".pdf")
	if err := writeFile(path, pdf); err != nil {
		return out, err
	}
	out.PDF = path

	return out, nil
}

// exportPages writes one file per page into subdir, named by PageName,
// after removing the files of earlier runs.
func (e *Exporter) exportPages(l layout.Layout, subdir, ext string, render func(layout.Page) ([]byte, error)) ([]string, error) {
	dir := filepath.Join(e.Dir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create %s", dir)
	}
	if err := removeStalePages(dir, e.Base, ext); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(l.Pages))
	for _, page := range l.Pages {
		data, err := render(page)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, PageName(e.Base, page.Number, ext))
		if err := writeFile(path, data); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// PageName returns the filename of the 0-based page n, e.g.
// "garage-qr-codes_p0.svg".
func PageName(base string, n int, ext string) string {
	return fmt.Sprintf("%s_p%d.%s", base, n, ext)
}

// removeStalePages deletes "<base>_p<N>.<ext>" files left in dir by
// earlier runs.
func removeStalePages(dir, base, ext string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read %s", dir)
	}
	prefix, suffix := base+"_p", "."+ext
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		if !isDigits(name[len(prefix) : len(name)-len(suffix)]) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "remove %s", name)
		}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

// CheckWritable creates dir if needed and verifies a file can be written
// in it.
func CheckWritable(dir string) error {
	if err := errors.ValidateOutputDir(dir); err != nil {
		return err
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return errors.New(errors.ErrCodeIO, "output path %s is not a directory", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", dir)
	}
	f, err := os.CreateTemp(dir, ".qrlabels-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "output directory %s is not writable", dir)
	}
	name := f.Name()
	f.Close()
	if err := os.Remove(name); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "clean up %s", name)
	}
	return nil
}
