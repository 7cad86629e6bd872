// Package icons renders the toolbar pictographs into Fyne icon resources.
package icons

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"toolbar-icons/pkg/logger"
)

// DefaultSize is the edge length used when a caller asks for size <= 0.
const DefaultSize = 24

// BlankIcon is returned for every icon that could not be rasterized.
// It is a valid, empty SVG resource that draws nothing.
var BlankIcon fyne.Resource = fyne.NewStaticResource("blank.svg",
	[]byte(`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"/>`))

// IsBlank reports whether res is the degraded placeholder.
func IsBlank(res fyne.Resource) bool {
	return res == BlankIcon
}

// Rasterizer draws an SVG document onto dst, scaling the document's
// viewBox to the bounds of dst.
type Rasterizer interface {
	Rasterize(svg string, dst *image.RGBA) error
}

// oksvgRasterizer is the anti-aliased oksvg/rasterx renderer.
type oksvgRasterizer struct{}

func (oksvgRasterizer) Rasterize(svg string, dst *image.RGBA) error {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return fmt.Errorf("parse svg: %w", err)
	}

	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return nil
}

const probeDocument = `<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4" viewBox="0 0 4 4" stroke="black"><path d="M0 0L4 4"/></svg>`

var (
	defaultRasterizer Rasterizer
	detectOnce        sync.Once
)

// DefaultRasterizer returns the process-wide renderer, or nil when
// rasterization does not work in this environment. The check runs once.
func DefaultRasterizer() Rasterizer {
	detectOnce.Do(func() {
		var r Rasterizer = oksvgRasterizer{}
		if err := safeRasterize(r, probeDocument, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
			logger.GetInstance().Warnf("svg rendering unavailable, icons will be blank: %v", err)
			return
		}
		defaultRasterizer = r
	})
	return defaultRasterizer
}

func safeRasterize(r Rasterizer, svg string, dst *image.RGBA) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("renderer panic: %v", p)
		}
	}()
	return r.Rasterize(svg, dst)
}

var errNoRenderer = errors.New("no svg renderer available")

// Option configures a Factory.
type Option func(*Factory)

// WithRasterizer replaces the renderer. A nil Rasterizer makes every icon blank.
func WithRasterizer(r Rasterizer) Option {
	return func(f *Factory) {
		f.rasterizer = r
	}
}

// WithLogger sets the logger used to report degraded icons.
func WithLogger(l *logger.Logger) Option {
	return func(f *Factory) {
		if l == nil {
			l = logger.New()
		}
		f.log = l
	}
}

// Factory rasterizes SVG documents into icon resources. It keeps no
// rendered output between calls.
type Factory struct {
	rasterizer Rasterizer
	log        *logger.Logger
}

// NewFactory returns a factory using the default renderer unless overridden.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		rasterizer: DefaultRasterizer(),
		log:        logger.GetInstance(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Render rasterizes svg onto a size×size bitmap filled with background
// (transparent when nil) and wraps it as a PNG resource called name.
// Failures never surface: the result is BlankIcon instead.
func (f *Factory) Render(name, svg string, size int, background color.Color) fyne.Resource {
	if size <= 0 {
		size = DefaultSize
	}

	data, err := f.renderPNG(svg, size, background)
	f.log.LogRender(name, size, err)
	if err != nil {
		return BlankIcon
	}

	return fyne.NewStaticResource(fmt.Sprintf("%s-%d.png", name, size), data)
}

func (f *Factory) renderPNG(svg string, size int, background color.Color) ([]byte, error) {
	if f.rasterizer == nil {
		return nil, errNoRenderer
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}

	if err := safeRasterize(f.rasterizer, svg, img); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
