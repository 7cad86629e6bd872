package ui

import (
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// NotificationManager handles desktop notifications.
type NotificationManager struct {
	enabled bool
}

// NewNotificationManager creates a new notification manager.
func NewNotificationManager() *NotificationManager {
	return &NotificationManager{
		enabled: true,
	}
}

// SetEnabled enables or disables notifications.
func (nm *NotificationManager) SetEnabled(enabled bool) {
	nm.enabled = enabled
}

// Enabled reports whether notifications are sent.
func (nm *NotificationManager) Enabled() bool {
	return nm.enabled
}

// Notify sends a desktop notification.
func (nm *NotificationManager) Notify(title, message string) {
	if !nm.enabled {
		return
	}

	go nm.sendNotification(title, message)
}

// NotifyExportComplete sends a notification for a finished export.
func (nm *NotificationManager) NotifyExportComplete(dir string, files int) {
	nm.Notify("Export terminé", strconv.Itoa(files)+" icônes écrites dans "+dir)
}

// NotifyExportFailed sends a notification for a failed export.
func (nm *NotificationManager) NotifyExportFailed(dir string, err error) {
	nm.Notify("Échec de l'export", dir+" : "+err.Error())
}

// sendNotification sends the actual notification based on OS.
func (nm *NotificationManager) sendNotification(title, message string) {
	switch runtime.GOOS {
	case "linux":
		nm.sendLinuxNotification(title, message)
	case "darwin":
		nm.sendMacNotification(title, message)
	case "windows":
		nm.sendWindowsNotification(title, message)
	}
}

// sendLinuxNotification sends a notification on Linux using notify-send.
func (nm *NotificationManager) sendLinuxNotification(title, message string) {
	exec.Command("notify-send", "-a", "Toolbar Icons", title, message).Run()
}

// sendMacNotification sends a notification on macOS.
func (nm *NotificationManager) sendMacNotification(title, message string) {
	// Escape double quotes to prevent command injection
	title = escapeAppleScript(title)
	message = escapeAppleScript(message)
	script := `display notification "` + message + `" with title "` + title + `"`
	exec.Command("osascript", "-e", script).Run()
}

// escapeAppleScript escapes special characters for AppleScript strings.
func escapeAppleScript(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// sendWindowsNotification sends a notification on Windows.
func (nm *NotificationManager) sendWindowsNotification(title, message string) {
	script := "[reflection.assembly]::loadwithpartialname('System.Windows.Forms') | Out-Null; " +
		"$n = New-Object System.Windows.Forms.NotifyIcon; $n.Icon = [System.Drawing.SystemIcons]::Information; " +
		"$n.Visible = $true; $n.ShowBalloonTip(5000, '" + escapePowerShell(title) + "', '" + escapePowerShell(message) + "', 'Info')"
	exec.Command("powershell", "-NoProfile", "-Command", script).Run()
}

// escapePowerShell doubles single quotes for a single-quoted PowerShell string.
func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
