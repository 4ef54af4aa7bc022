// internal/config/config.go
//
// This package handles the .courier directory structure and the panel
// preferences file. Every courier host gets a .courier/ folder holding the
// persisted session record, logs, and config.yaml.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// PanelDir is the name of the directory the panel creates under its base.
const PanelDir = ".courier"

const defaultPreferencesYAML = `# courier panel preferences
version: 1

notifications:
  new_orders: true
  order_updates: true
  earnings: true
  promotions: false
  system_alerts: true

preferences:
  language: English
  theme: dark
  sound_enabled: true
  vibration_enabled: true
  auto_accept_orders: false
  working_hours:
    start: "09:00"
    end: "18:00"

privacy:
  share_location: true
  show_online_status: true
  allow_ratings: true
  share_performance: false
`

var workingHoursPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// SupportedLanguages are the languages the settings screen offers.
var SupportedLanguages = []string{"English", "Hindi", "Spanish", "French", "German"}

// NotificationPrefs controls which events raise a toast.
type NotificationPrefs struct {
	NewOrders    bool `yaml:"new_orders"`
	OrderUpdates bool `yaml:"order_updates"`
	Earnings     bool `yaml:"earnings"`
	Promotions   bool `yaml:"promotions"`
	SystemAlerts bool `yaml:"system_alerts"`
}

// WorkingHours is the courier's daily availability window.
type WorkingHours struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// AppPrefs holds general panel preferences.
type AppPrefs struct {
	Language         string       `yaml:"language"`
	Theme            string       `yaml:"theme"`
	SoundEnabled     bool         `yaml:"sound_enabled"`
	VibrationEnabled bool         `yaml:"vibration_enabled"`
	AutoAcceptOrders bool         `yaml:"auto_accept_orders"`
	WorkingHours     WorkingHours `yaml:"working_hours"`
}

// PrivacyPrefs controls what the courier shares with the platform.
type PrivacyPrefs struct {
	ShareLocation    bool `yaml:"share_location"`
	ShowOnlineStatus bool `yaml:"show_online_status"`
	AllowRatings     bool `yaml:"allow_ratings"`
	SharePerformance bool `yaml:"share_performance"`
}

// Preferences models .courier/config.yaml.
type Preferences struct {
	Version       int               `yaml:"version"`
	Notifications NotificationPrefs `yaml:"notifications"`
	App           AppPrefs          `yaml:"preferences"`
	Privacy       PrivacyPrefs      `yaml:"privacy"`
}

// Dir holds the runtime configuration for the panel.
type Dir struct {
	// Base is the directory the panel was pointed at (home dir by default).
	Base string

	// PanelPath is Base/.courier
	PanelPath string

	prefs Preferences
}

// InitPanelDir creates the .courier directory structure under base and
// writes the default preferences file when none exists. Called before the
// TUI launches.
//
// Structure created:
// .courier/
// ├── state/    <- persisted session record
// └── logs/     <- journey log
func InitPanelDir(base string) error {
	panelDir := filepath.Join(base, PanelDir)
	dirs := []string{
		filepath.Join(panelDir, "state"),
		filepath.Join(panelDir, "logs"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return ensurePreferencesFile(filepath.Join(panelDir, "config.yaml"))
}

// New creates a Dir rooted at base and loads the preferences file.
func New(base string) (*Dir, error) {
	d := &Dir{
		Base:      base,
		PanelPath: filepath.Join(base, PanelDir),
		prefs:     defaultPreferences(),
	}
	if err := d.loadPreferences(); err != nil {
		return nil, err
	}
	return d, nil
}

// StateDir returns the path to the state directory.
func (d *Dir) StateDir() string {
	return filepath.Join(d.PanelPath, "state")
}

// LogsDir returns the path to the logs directory.
func (d *Dir) LogsDir() string {
	return filepath.Join(d.PanelPath, "logs")
}

// PreferencesPath returns the on-disk location of the preferences file.
func (d *Dir) PreferencesPath() string {
	return filepath.Join(d.PanelPath, "config.yaml")
}

// Preferences returns a copy of the loaded preferences.
func (d *Dir) Preferences() Preferences {
	return d.prefs
}

// SavePreferences validates, stores, and persists the given preferences.
func (d *Dir) SavePreferences(p Preferences) error {
	p.applyDefaults()
	p.normalize()
	if err := p.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	d.prefs = p
	data, err := yaml.Marshal(&p)
	if err != nil {
		return fmt.Errorf("config: encode preferences: %w", err)
	}
	if err := os.MkdirAll(d.PanelPath, 0o755); err != nil {
		return fmt.Errorf("config: ensure panel dir: %w", err)
	}
	if err := os.WriteFile(d.PreferencesPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", d.PreferencesPath(), err)
	}
	return nil
}

func (d *Dir) loadPreferences() error {
	path := d.PreferencesPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed Preferences
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	d.prefs = parsed
	return nil
}

func ensurePreferencesFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultPreferencesYAML), 0o644)
}

func defaultPreferences() Preferences {
	return Preferences{
		Version: 1,
		Notifications: NotificationPrefs{
			NewOrders:    true,
			OrderUpdates: true,
			Earnings:     true,
			Promotions:   false,
			SystemAlerts: true,
		},
		App: AppPrefs{
			Language:         "English",
			Theme:            "dark",
			SoundEnabled:     true,
			VibrationEnabled: true,
			AutoAcceptOrders: false,
			WorkingHours:     WorkingHours{Start: "09:00", End: "18:00"},
		},
		Privacy: PrivacyPrefs{
			ShareLocation:    true,
			ShowOnlineStatus: true,
			AllowRatings:     true,
			SharePerformance: false,
		},
	}
}

func (p *Preferences) applyDefaults() {
	if p.Version == 0 {
		p.Version = 1
	}
	if strings.TrimSpace(p.App.Language) == "" {
		p.App.Language = "English"
	}
	if strings.TrimSpace(p.App.Theme) == "" {
		p.App.Theme = "dark"
	}
	if strings.TrimSpace(p.App.WorkingHours.Start) == "" {
		p.App.WorkingHours.Start = "09:00"
	}
	if strings.TrimSpace(p.App.WorkingHours.End) == "" {
		p.App.WorkingHours.End = "18:00"
	}
}

func (p *Preferences) normalize() {
	p.App.Language = strings.TrimSpace(p.App.Language)
	p.App.Theme = strings.ToLower(strings.TrimSpace(p.App.Theme))
	p.App.WorkingHours.Start = strings.TrimSpace(p.App.WorkingHours.Start)
	p.App.WorkingHours.End = strings.TrimSpace(p.App.WorkingHours.End)
}

func (p *Preferences) validate() error {
	if p.Version < 1 {
		return fmt.Errorf("preferences version must be >= 1")
	}
	if !contains(SupportedLanguages, p.App.Language) {
		return fmt.Errorf("unsupported language %q", p.App.Language)
	}
	if p.App.Theme != "dark" && p.App.Theme != "light" {
		return fmt.Errorf("theme must be dark or light, got %q", p.App.Theme)
	}
	if !workingHoursPattern.MatchString(p.App.WorkingHours.Start) {
		return fmt.Errorf("working_hours.start %q is not HH:MM", p.App.WorkingHours.Start)
	}
	if !workingHoursPattern.MatchString(p.App.WorkingHours.End) {
		return fmt.Errorf("working_hours.end %q is not HH:MM", p.App.WorkingHours.End)
	}
	return nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
