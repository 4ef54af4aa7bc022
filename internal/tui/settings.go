// internal/tui/settings.go
//
// The settings screen. Every toggle writes straight through to the
// preferences file, so choices survive restarts; the handful of controls
// with nothing behind them go through the shared placeholder handler.

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/curo-24/delivery-ui/internal/config"
)

type settingsRow struct {
	section string
	key     string
	label   string
}

var settingsRows = []settingsRow{
	{"Notifications", "newOrders", "New order alerts"},
	{"Notifications", "orderUpdates", "Order status updates"},
	{"Notifications", "earnings", "Earnings updates"},
	{"Notifications", "promotions", "Promotions"},
	{"Notifications", "systemAlerts", "System alerts"},
	{"Preferences", "language", "Language"},
	{"Preferences", "theme", "Theme"},
	{"Preferences", "soundEnabled", "Sound"},
	{"Preferences", "vibrationEnabled", "Vibration"},
	{"Preferences", "autoAcceptOrders", "Auto-accept orders"},
	{"Preferences", "workingHours", "Working hours"},
	{"Privacy", "shareLocation", "Share location"},
	{"Privacy", "showOnlineStatus", "Show online status"},
	{"Privacy", "allowRatings", "Allow customer ratings"},
	{"Privacy", "sharePerformance", "Share performance data"},
}

type settingsState struct {
	cursor int
}

func newSettingsState() settingsState {
	return settingsState{}
}

func (a *App) updateSettings(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return nil
	case "down", "j":
		if a.settings.cursor < len(settingsRows)-1 {
			a.settings.cursor++
		}
		return nil
	case "enter", " ":
		return a.toggleSetting(settingsRows[a.settings.cursor])
	case "r":
		return a.notImplemented("Cache reset")
	case "x":
		return a.notImplemented("Account deletion")
	case "?":
		return a.notImplemented("Help center")
	case "esc":
		return a.routeTo(screenDashboard)
	}
	return nil
}

// toggleSetting flips (or cycles) one preference and persists the file.
// A write failure is logged and surfaced, but the panel keeps running.
func (a *App) toggleSetting(row settingsRow) tea.Cmd {
	prefs := a.cfg.Preferences()
	var detail string

	switch row.key {
	case "newOrders":
		prefs.Notifications.NewOrders = !prefs.Notifications.NewOrders
		detail = toggleDetail(row.key+" notifications", prefs.Notifications.NewOrders)
	case "orderUpdates":
		prefs.Notifications.OrderUpdates = !prefs.Notifications.OrderUpdates
		detail = toggleDetail(row.key+" notifications", prefs.Notifications.OrderUpdates)
	case "earnings":
		prefs.Notifications.Earnings = !prefs.Notifications.Earnings
		detail = toggleDetail(row.key+" notifications", prefs.Notifications.Earnings)
	case "promotions":
		prefs.Notifications.Promotions = !prefs.Notifications.Promotions
		detail = toggleDetail(row.key+" notifications", prefs.Notifications.Promotions)
	case "systemAlerts":
		prefs.Notifications.SystemAlerts = !prefs.Notifications.SystemAlerts
		detail = toggleDetail(row.key+" notifications", prefs.Notifications.SystemAlerts)
	case "language":
		prefs.App.Language = nextLanguage(prefs.App.Language)
		detail = fmt.Sprintf("language set to %s", prefs.App.Language)
	case "theme":
		if prefs.App.Theme == "dark" {
			prefs.App.Theme = "light"
		} else {
			prefs.App.Theme = "dark"
		}
		detail = fmt.Sprintf("theme set to %s", prefs.App.Theme)
	case "soundEnabled":
		prefs.App.SoundEnabled = !prefs.App.SoundEnabled
		detail = toggleDetail("sound", prefs.App.SoundEnabled)
	case "vibrationEnabled":
		prefs.App.VibrationEnabled = !prefs.App.VibrationEnabled
		detail = toggleDetail("vibration", prefs.App.VibrationEnabled)
	case "autoAcceptOrders":
		prefs.App.AutoAcceptOrders = !prefs.App.AutoAcceptOrders
		detail = toggleDetail("auto-accept", prefs.App.AutoAcceptOrders)
	case "workingHours":
		return a.notImplemented("Working hours editor")
	case "shareLocation":
		prefs.Privacy.ShareLocation = !prefs.Privacy.ShareLocation
		detail = toggleDetail(row.key, prefs.Privacy.ShareLocation)
	case "showOnlineStatus":
		prefs.Privacy.ShowOnlineStatus = !prefs.Privacy.ShowOnlineStatus
		detail = toggleDetail(row.key, prefs.Privacy.ShowOnlineStatus)
	case "allowRatings":
		prefs.Privacy.AllowRatings = !prefs.Privacy.AllowRatings
		detail = toggleDetail(row.key, prefs.Privacy.AllowRatings)
	case "sharePerformance":
		prefs.Privacy.SharePerformance = !prefs.Privacy.SharePerformance
		detail = toggleDetail(row.key, prefs.Privacy.SharePerformance)
	default:
		return nil
	}

	if err := a.cfg.SavePreferences(prefs); err != nil {
		a.logWarn("Preferences save failed: %v", err)
		return a.notify("Settings Not Saved", "Could not write the preferences file", false)
	}
	title := "Preference Updated"
	switch row.section {
	case "Notifications":
		title = "Notification Settings Updated"
	case "Privacy":
		title = "Privacy Settings Updated"
	}
	a.logInfo("Settings · %s", detail)
	return a.notify(title, detail, false)
}

func toggleDetail(name string, enabled bool) string {
	if enabled {
		return name + " enabled"
	}
	return name + " disabled"
}

func nextLanguage(current string) string {
	for i, lang := range config.SupportedLanguages {
		if lang == current {
			return config.SupportedLanguages[(i+1)%len(config.SupportedLanguages)]
		}
	}
	return config.SupportedLanguages[0]
}

func (a *App) viewSettings() string {
	prefs := a.cfg.Preferences()
	values := map[string]string{
		"newOrders":        onOff(prefs.Notifications.NewOrders),
		"orderUpdates":     onOff(prefs.Notifications.OrderUpdates),
		"earnings":         onOff(prefs.Notifications.Earnings),
		"promotions":       onOff(prefs.Notifications.Promotions),
		"systemAlerts":     onOff(prefs.Notifications.SystemAlerts),
		"language":         prefs.App.Language,
		"theme":            prefs.App.Theme,
		"soundEnabled":     onOff(prefs.App.SoundEnabled),
		"vibrationEnabled": onOff(prefs.App.VibrationEnabled),
		"autoAcceptOrders": onOff(prefs.App.AutoAcceptOrders),
		"workingHours":     prefs.App.WorkingHours.Start + "–" + prefs.App.WorkingHours.End,
		"shareLocation":    onOff(prefs.Privacy.ShareLocation),
		"showOnlineStatus": onOff(prefs.Privacy.ShowOnlineStatus),
		"allowRatings":     onOff(prefs.Privacy.AllowRatings),
		"sharePerformance": onOff(prefs.Privacy.SharePerformance),
	}

	var b strings.Builder
	lastSection := ""
	for i, row := range settingsRows {
		if row.section != lastSection {
			if lastSection != "" {
				b.WriteString("\n")
			}
			b.WriteString(sectionTitleStyle.Render(row.section) + "\n")
			lastSection = row.section
		}
		marker := "  "
		if i == a.settings.cursor {
			marker = highlightStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%-24s %s\n", marker, row.label, values[row.key]))
	}

	b.WriteString("\n" + hintStyle.Render("↑/↓ select    enter toggle    r reset cache    x delete account    ? help"))
	return panelStyle.Render(b.String())
}

func onOff(v bool) string {
	if v {
		return badgeOnlineStyle.Render("on")
	}
	return badgeOffStyle.Render("off")
}
