package icons

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
)

// Toolbar icon names.
const (
	Pan         = "pan"
	ZoomIn      = "zoom_in"
	ZoomOut     = "zoom_out"
	ShowAll     = "show_all"
	RotateLeft  = "rotate_left"
	RotateRight = "rotate_right"
	ResetView   = "reset_view"
	Edit        = "edit"
	Erase       = "erase"
	Undo        = "undo"
)

// Stroke drawings in a 24×24 user space. Each entry is the body of an
// <svg> element that already carries the shared stroke style.
var drawings = []struct {
	name string
	body string
}{
	{Pan, `<path d="M7 12V6.5a1.8 1.8 0 0 1 3.6 0V12"/>` +
		`<path d="M10.6 12V5.5a1.8 1.8 0 0 1 3.6 0V12"/>` +
		`<path d="M14.2 12V7.5a1.8 1.8 0 0 1 3.6 0V14"/>` +
		`<path d="M6.5 12.5c-1.4-1-3.5-.1-3.5 1.7V16c0 3.3 2.7 6 6 6h5.8c2.6 0 4.2-1.8 4.2-4.2V14"/>`},
	{ZoomIn, `<circle cx="11" cy="11" r="6"/>` +
		`<path d="M20 20l-3.5-3.5"/>` +
		`<path d="M11 8.8v4.4"/>` +
		`<path d="M8.8 11h4.4"/>`},
	{ZoomOut, `<circle cx="11" cy="11" r="6"/>` +
		`<path d="M20 20l-3.5-3.5"/>` +
		`<path d="M8.8 11h4.4"/>`},
	{ShowAll, `<path d="M8 3H3v5"/>` +
		`<path d="M16 3h5v5"/>` +
		`<path d="M21 16v5h-5"/>` +
		`<path d="M3 16v5h5"/>` +
		`<path d="M12 9v6"/>` +
		`<path d="M9 12h6"/>`},
	// counter-clockwise
	{RotateLeft, `<path d="M8.2 6.2a8 8 0 1 1-2.2 5.8"/>` +
		`<path d="M6 4v4h4"/>`},
	{RotateRight, `<path d="M15.8 6.2a8 8 0 1 0 2.2 5.8"/>` +
		`<path d="M18 4v4h-4"/>`},
	{ResetView, `<path d="M21 12a9 9 0 1 1-2.6-6.4"/>` +
		`<path d="M21 3v6h-6"/>`},
	{Edit, `<path d="M12 20h9"/>` +
		`<path d="M16.5 3.5a2.1 2.1 0 0 1 3 3L7 19l-4 1 1-4L16.5 3.5z"/>`},
	{Erase, `<path d="M4 7h16"/>` +
		`<path d="M6 7l1 14h10l1-14"/>` +
		`<path d="M9 7V4h6v3"/>`},
	{Undo, `<path d="M9 14l-4-4 4-4"/>` +
		`<path d="M5 10h8a6 6 0 1 1 0 12h-2"/>`},
}

// header opens a document whose output size follows size while the
// viewBox stays 24×24, so strokes keep their proportions at any scale.
func header(size int) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" `+
		`viewBox="0 0 24 24" fill="none" stroke="black" stroke-width="1.4" `+
		`stroke-linecap="round" stroke-linejoin="round">`, size, size)
}

// Names returns the icon names in toolbar order.
func Names() []string {
	names := make([]string, len(drawings))
	for i, d := range drawings {
		names[i] = d.name
	}
	return names
}

// Document returns the complete SVG document for name at size.
func Document(name string, size int) (string, bool) {
	if size <= 0 {
		size = DefaultSize
	}
	for _, d := range drawings {
		if d.name == name {
			return header(size) + d.body + "</svg>", true
		}
	}
	return "", false
}

// Documents returns every SVG document at size, keyed by icon name.
func Documents(size int) map[string]string {
	docs := make(map[string]string, len(drawings))
	for _, d := range drawings {
		docs[d.name], _ = Document(d.name, size)
	}
	return docs
}

// ToolbarIcons renders the full toolbar set at size on a transparent
// background using the default renderer. size <= 0 means DefaultSize.
func ToolbarIcons(size int) map[string]fyne.Resource {
	return NewFactory().ToolbarIcons(size)
}

// ToolbarIcons renders the full toolbar set at size on a transparent background.
func (f *Factory) ToolbarIcons(size int) map[string]fyne.Resource {
	return f.Build(size, nil)
}

// Build renders the full toolbar set at size over background. Every call
// re-renders all icons; entries that fail are BlankIcon.
func (f *Factory) Build(size int, background color.Color) map[string]fyne.Resource {
	if size <= 0 {
		size = DefaultSize
	}

	set := make(map[string]fyne.Resource, len(drawings))
	for name, doc := range Documents(size) {
		set[name] = f.Render(name, doc, size, background)
	}
	return set
}
