// Package ui provides the icon preview window using Fyne.
package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"toolbar-icons/internal/config"
	"toolbar-icons/internal/icons"
	"toolbar-icons/pkg/logger"
)

// Preview sizes offered in the toolbar selector.
var previewSizes = []string{"16", "24", "32", "48", "64", "96"}

// MainWindow represents the icon preview window.
type MainWindow struct {
	app       fyne.App
	window    fyne.Window
	configMgr *config.ConfigManager
	factory   *icons.Factory
	notifier  *NotificationManager
	log       *logger.Logger

	size    int
	iconSet map[string]fyne.Resource

	// UI components
	toolbar    *widget.Toolbar
	gallery    *fyne.Container
	sizeSelect *widget.Select
	statusBar  *widget.Label
}

// NewMainWindow creates and initializes the main application window.
func NewMainWindow(configMgr *config.ConfigManager, factory *icons.Factory) *MainWindow {
	return newMainWindow(app.New(), configMgr, factory)
}

func newMainWindow(a fyne.App, configMgr *config.ConfigManager, factory *icons.Factory) *MainWindow {
	cfg := configMgr.Get()

	mw := &MainWindow{
		app:       a,
		configMgr: configMgr,
		factory:   factory,
		notifier:  NewNotificationManager(),
		log:       logger.GetInstance(),
	}
	mw.notifier.SetEnabled(cfg.EnableNotifications)

	mw.window = mw.app.NewWindow("Toolbar Icons")
	mw.window.SetIcon(AppIcon(factory))
	mw.window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	mw.buildUI(cfg.IconSize)

	return mw
}

// buildUI constructs the user interface.
func (mw *MainWindow) buildUI(size int) {
	mw.toolbar = widget.NewToolbar()
	mw.gallery = container.NewGridWrap(fyne.NewSize(96, 96))
	mw.statusBar = widget.NewLabel("Ready")

	mw.sizeSelect = widget.NewSelect(previewSizes, nil)
	mw.setIconSize(size)
	mw.sizeSelect.OnChanged = func(s string) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return
		}
		mw.setIconSize(n)
	}

	top := container.NewBorder(nil, nil, nil,
		container.NewHBox(widget.NewLabel("Size:"), mw.sizeSelect),
		mw.toolbar,
	)

	content := container.NewBorder(
		top,                               // top
		mw.statusBar,                      // bottom
		nil,                               // left
		nil,                               // right
		container.NewVScroll(mw.gallery), // center
	)

	mw.window.SetContent(content)
	mw.createMenu()
}

// setIconSize re-renders the whole set at size and refreshes the views.
func (mw *MainWindow) setIconSize(size int) {
	if size <= 0 {
		size = icons.DefaultSize
	}
	mw.size = size
	mw.iconSet = mw.factory.ToolbarIcons(size)

	mw.toolbar.Items = mw.toolbarItems()
	mw.toolbar.Refresh()

	mw.refreshGallery()

	label := strconv.Itoa(size)
	if mw.sizeSelect.Selected != label {
		mw.sizeSelect.Selected = label
		mw.sizeSelect.Refresh()
	}
	mw.statusBar.SetText(fmt.Sprintf("Rendered %d icons at %dx%d", len(mw.iconSet), size, size))
}

// toolbarItems lays the icons out in groups: pan | zoom | rotate | edit.
func (mw *MainWindow) toolbarItems() []widget.ToolbarItem {
	groups := [][]string{
		{icons.Pan},
		{icons.ZoomIn, icons.ZoomOut, icons.ShowAll},
		{icons.RotateLeft, icons.RotateRight, icons.ResetView},
		{icons.Edit, icons.Erase, icons.Undo},
	}

	var items []widget.ToolbarItem
	for i, group := range groups {
		if i > 0 {
			items = append(items, widget.NewToolbarSeparator())
		}
		for _, name := range group {
			name := name
			items = append(items, widget.NewToolbarAction(mw.iconSet[name], func() {
				mw.onAction(name)
			}))
		}
	}
	return items
}

// refreshGallery shows every icon at its rendered pixel size with its name.
func (mw *MainWindow) refreshGallery() {
	edge := float32(mw.size)
	if edge < 64 {
		edge = 64
	}
	mw.gallery.Layout = layout.NewGridWrapLayout(fyne.NewSize(edge+32, edge+40))

	mw.gallery.Objects = nil
	for _, name := range icons.Names() {
		img := canvas.NewImageFromResource(mw.iconSet[name])
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(float32(mw.size), float32(mw.size)))

		cell := container.NewBorder(nil, widget.NewLabel(name), nil, nil, container.NewCenter(img))
		mw.gallery.Add(cell)
	}
	mw.gallery.Refresh()
}

// createMenu creates the application menu.
func (mw *MainWindow) createMenu() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export PNG...", func() { mw.onExport(false) }),
		fyne.NewMenuItem("Export SVG...", func() { mw.onExport(true) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Settings...", mw.onSettings),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

// onAction handles a toolbar icon click.
func (mw *MainWindow) onAction(name string) {
	mw.log.Infof("toolbar action %s", name)
	mw.statusBar.SetText("Action: " + name)
}

// onExport asks for a folder and exports the current set into it.
func (mw *MainWindow) onExport(svg bool) {
	dlg := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		if uri == nil {
			return
		}
		if _, err := mw.exportTo(uri.Path(), svg); err != nil {
			dialog.ShowError(err, mw.window)
		}
	}, mw.window)
	dlg.Show()
}

// exportTo writes the set at the current preview size into dir.
func (mw *MainWindow) exportTo(dir string, svg bool) ([]string, error) {
	bg, err := icons.ParseColor(mw.configMgr.Get().Background)
	if err != nil {
		return nil, err
	}

	written, err := mw.factory.ExportSet(icons.ExportOptions{
		Dir:        dir,
		Size:       mw.size,
		Background: bg,
		SVG:        svg,
	})
	if err != nil {
		mw.statusBar.SetText("Export failed")
		mw.notifier.NotifyExportFailed(dir, err)
		return written, err
	}

	mw.statusBar.SetText(fmt.Sprintf("Exported %d files to %s", len(written), dir))
	mw.notifier.NotifyExportComplete(dir, len(written))
	return written, nil
}

// onSettings opens the settings dialog.
func (mw *MainWindow) onSettings() {
	NewSettingsDialog(mw.window, mw.configMgr, mw.applyConfig).Show()
}

// applyConfig picks up saved settings.
func (mw *MainWindow) applyConfig() {
	cfg := mw.configMgr.Get()
	mw.notifier.SetEnabled(cfg.EnableNotifications)
	mw.window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	mw.setIconSize(cfg.IconSize)
}

// onAbout shows the about dialog.
func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Toolbar Icons",
		"Toolbar Icons\nVersion 1.0.0\n\nStroke icons for pan, zoom, rotate and edit toolbars.",
		mw.window)
}

// Run shows the window and blocks until it is closed.
func (mw *MainWindow) Run() {
	mw.window.ShowAndRun()
}

// Cleanup stores the preview size for the next start.
func (mw *MainWindow) Cleanup() {
	cfg := mw.configMgr.Get()
	if cfg.IconSize == mw.size {
		return
	}
	cfg.IconSize = mw.size
	if err := mw.configMgr.Set(&cfg); err != nil {
		mw.log.Warnf("Failed to save preview size: %v", err)
	}
}
