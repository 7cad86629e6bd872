package icons

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"go.uber.org/multierr"
)

// Export writes every rendered icon in set to dir, one file per icon named
// after its resource. Blank icons are skipped. It returns the written
// paths in name order; a failure on one file does not stop the others.
func (f *Factory) Export(dir string, set map[string]fyne.Resource) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		written []string
		errs    error
	)
	for _, name := range names {
		res := set[name]
		if res == nil || IsBlank(res) {
			f.log.Warnf("skipping blank icon %s", name)
			continue
		}

		path := filepath.Join(dir, res.Name())
		if err := os.WriteFile(path, res.Content(), 0644); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("write %s: %w", name, err))
			continue
		}
		written = append(written, path)
	}

	return written, errs
}

// ExportDocuments writes the SVG source of every icon at size to dir as
// <name>.svg.
func (f *Factory) ExportDocuments(dir string, size int) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	var (
		written []string
		errs    error
	)
	for _, name := range Names() {
		doc, _ := Document(name, size)
		path := filepath.Join(dir, name+".svg")
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("write %s: %w", name, err))
			continue
		}
		written = append(written, path)
	}

	return written, errs
}

// ExportOptions describes one export run.
type ExportOptions struct {
	Dir        string
	Size       int
	Background color.Color // nil keeps the transparent background
	SVG        bool        // write SVG sources instead of PNGs
}

// ExportSet renders and writes the whole toolbar set as described by opts.
func (f *Factory) ExportSet(opts ExportOptions) ([]string, error) {
	start := time.Now()

	var (
		written []string
		err     error
	)
	if opts.SVG {
		written, err = f.ExportDocuments(opts.Dir, opts.Size)
	} else {
		written, err = f.Export(opts.Dir, f.Build(opts.Size, opts.Background))
	}

	f.log.LogExport(opts.Dir, len(written), time.Since(start), err)
	return written, err
}
