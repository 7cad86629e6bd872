package ui

import (
	"image/color"

	"fyne.io/fyne/v2"

	"toolbar-icons/internal/icons"
)

const appIconSize = 64

// AppIcon renders the window icon from the show_all drawing on white.
func AppIcon(factory *icons.Factory) fyne.Resource {
	doc, _ := icons.Document(icons.ShowAll, appIconSize)
	return factory.Render("app-icon", doc, appIconSize, color.White)
}
