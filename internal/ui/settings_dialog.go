package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"toolbar-icons/internal/config"
	"toolbar-icons/internal/icons"
)

// SettingsDialog handles application settings.
type SettingsDialog struct {
	window    fyne.Window
	configMgr *config.ConfigManager
	onSave    func()

	// UI components
	iconSize            *widget.Entry
	background          *widget.Entry
	exportDir           *widget.Entry
	logLevelSelect      *widget.Select
	windowWidth         *widget.Entry
	windowHeight        *widget.Entry
	enableNotifications *widget.Check
}

// NewSettingsDialog creates a new settings dialog.
func NewSettingsDialog(parent fyne.Window, configMgr *config.ConfigManager, onSave func()) *SettingsDialog {
	return &SettingsDialog{
		window:    parent,
		configMgr: configMgr,
		onSave:    onSave,
	}
}

// Show displays the settings dialog.
func (sd *SettingsDialog) Show() {
	form := sd.buildForm()

	scroll := container.NewVScroll(form)
	scroll.SetMinSize(fyne.NewSize(400, 320))

	dlg := dialog.NewCustomConfirm("Paramètres", "Enregistrer", "Annuler", scroll,
		func(confirmed bool) {
			if confirmed {
				if err := sd.saveSettings(); err != nil {
					dialog.ShowError(err, sd.window)
					return
				}
				dialog.ShowInformation("Paramètres", "Paramètres enregistrés.", sd.window)
			}
		}, sd.window)

	dlg.Resize(fyne.NewSize(500, 420))
	dlg.Show()
}

// buildForm creates the widgets from the current configuration.
func (sd *SettingsDialog) buildForm() fyne.CanvasObject {
	cfg := sd.configMgr.Get()

	sd.iconSize = widget.NewEntry()
	sd.iconSize.SetText(strconv.Itoa(cfg.IconSize))

	sd.background = widget.NewEntry()
	sd.background.SetPlaceHolder("transparent, white, #rrggbb")
	sd.background.SetText(cfg.Background)

	sd.exportDir = widget.NewEntry()
	sd.exportDir.SetText(cfg.ExportDir)

	browseDirBtn := widget.NewButton("Parcourir...", func() {
		dlg := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			sd.exportDir.SetText(uri.Path())
		}, sd.window)
		dlg.Show()
	})
	dirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDir)

	sd.logLevelSelect = widget.NewSelect([]string{"debug", "info", "warn", "error"}, nil)
	sd.logLevelSelect.SetSelected(cfg.LogLevel)

	sd.windowWidth = widget.NewEntry()
	sd.windowWidth.SetText(strconv.Itoa(cfg.WindowWidth))

	sd.windowHeight = widget.NewEntry()
	sd.windowHeight.SetText(strconv.Itoa(cfg.WindowHeight))

	windowSizeRow := container.NewHBox(
		sd.windowWidth,
		widget.NewLabel("x"),
		sd.windowHeight,
	)

	sd.enableNotifications = widget.NewCheck("", nil)
	sd.enableNotifications.SetChecked(cfg.EnableNotifications)

	return container.NewVBox(
		widget.NewLabel("Icônes"),
		widget.NewSeparator(),
		container.NewGridWithColumns(2,
			widget.NewLabel("Taille (px) :"),
			sd.iconSize,
		),
		container.NewGridWithColumns(2,
			widget.NewLabel("Fond à l'export :"),
			sd.background,
		),
		container.NewGridWithColumns(2,
			widget.NewLabel("Répertoire d'export :"),
			dirRow,
		),

		widget.NewLabel(""),
		widget.NewLabel("Apparence"),
		widget.NewSeparator(),
		container.NewGridWithColumns(2,
			widget.NewLabel("Taille de fenêtre :"),
			windowSizeRow,
		),
		container.NewGridWithColumns(2,
			widget.NewLabel("Notifications bureau :"),
			sd.enableNotifications,
		),

		widget.NewLabel(""),
		widget.NewLabel("Journalisation"),
		widget.NewSeparator(),
		container.NewGridWithColumns(2,
			widget.NewLabel("Niveau de log :"),
			sd.logLevelSelect,
		),
	)
}

// saveSettings validates the form and stores it.
func (sd *SettingsDialog) saveSettings() error {
	cfg := sd.configMgr.Get()

	iconSize, err := strconv.Atoi(sd.iconSize.Text)
	if err != nil {
		return &settingsError{"La taille d'icône doit être un nombre"}
	}

	windowWidth, err := strconv.Atoi(sd.windowWidth.Text)
	if err != nil {
		return &settingsError{"La largeur de fenêtre doit être un nombre"}
	}

	windowHeight, err := strconv.Atoi(sd.windowHeight.Text)
	if err != nil {
		return &settingsError{"La hauteur de fenêtre doit être un nombre"}
	}

	if _, err := icons.ParseColor(sd.background.Text); err != nil {
		return &settingsError{"Couleur de fond invalide : " + sd.background.Text}
	}

	cfg.IconSize = iconSize
	cfg.Background = sd.background.Text
	cfg.ExportDir = sd.exportDir.Text
	cfg.LogLevel = sd.logLevelSelect.Selected
	cfg.WindowWidth = windowWidth
	cfg.WindowHeight = windowHeight
	cfg.EnableNotifications = sd.enableNotifications.Checked

	if err := sd.configMgr.Set(&cfg); err != nil {
		return err
	}

	if sd.onSave != nil {
		sd.onSave()
	}
	return nil
}

type settingsError struct {
	message string
}

func (e *settingsError) Error() string {
	return e.message
}
