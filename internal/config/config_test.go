package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitPanelDirCreatesStructure(t *testing.T) {
	base := t.TempDir()
	if err := InitPanelDir(base); err != nil {
		t.Fatalf("InitPanelDir returned error: %v", err)
	}
	for _, sub := range []string{"state", "logs"} {
		info, err := os.Stat(filepath.Join(base, PanelDir, sub))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected %s directory, err=%v", sub, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(base, PanelDir, "config.yaml"))
	if err != nil {
		t.Fatalf("expected default config.yaml: %v", err)
	}
	if !strings.Contains(string(data), "language: English") {
		t.Fatalf("default preferences missing expected content:\n%s", data)
	}
}

func TestInitPanelDirKeepsExistingPreferences(t *testing.T) {
	base := t.TempDir()
	if err := InitPanelDir(base); err != nil {
		t.Fatal(err)
	}
	custom := strings.Replace(defaultPreferencesYAML, "theme: dark", "theme: light", 1)
	path := filepath.Join(base, PanelDir, "config.yaml")
	if err := os.WriteFile(path, []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}
	if err := InitPanelDir(base); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "theme: light") {
		t.Fatalf("re-init must not overwrite an existing preferences file")
	}
}

func TestNewDefaultsWhenMissing(t *testing.T) {
	base := t.TempDir()
	d, err := New(base)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	p := d.Preferences()
	if p.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", p.Version)
	}
	if p.App.Language != "English" || p.App.Theme != "dark" {
		t.Fatalf("unexpected defaults: %+v", p.App)
	}
	if p.App.WorkingHours.Start != "09:00" || p.App.WorkingHours.End != "18:00" {
		t.Fatalf("unexpected default working hours: %+v", p.App.WorkingHours)
	}
	if !p.Notifications.NewOrders || p.Notifications.Promotions {
		t.Fatalf("unexpected default notifications: %+v", p.Notifications)
	}
}

func TestNewParsesYaml(t *testing.T) {
	base := t.TempDir()
	if err := InitPanelDir(base); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
notifications:
  new_orders: false
  system_alerts: true
preferences:
  language: Hindi
  theme: Light
  working_hours:
    start: "08:00"
    end: "20:00"
privacy:
  share_location: true
`)
	if err := os.WriteFile(filepath.Join(base, PanelDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := New(base)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	p := d.Preferences()
	if p.Notifications.NewOrders {
		t.Fatalf("expected new_orders false")
	}
	if p.App.Language != "Hindi" {
		t.Fatalf("wrong language: %s", p.App.Language)
	}
	if p.App.Theme != "light" {
		t.Fatalf("expected theme normalized to lowercase, got %q", p.App.Theme)
	}
	if p.App.WorkingHours.Start != "08:00" || p.App.WorkingHours.End != "20:00" {
		t.Fatalf("wrong working hours: %+v", p.App.WorkingHours)
	}
}

func TestNewValidation(t *testing.T) {
	base := t.TempDir()
	if err := InitPanelDir(base); err != nil {
		t.Fatal(err)
	}
	cases := []struct{ name, yaml string }{
		{"bad language", "preferences:\n  language: Klingon"},
		{"bad theme", "preferences:\n  theme: neon"},
		{"bad hours", "preferences:\n  working_hours:\n    start: \"9am\""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(base, PanelDir, "config.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := New(base); err == nil {
				t.Fatalf("expected validation error but got none")
			}
		})
	}
}

func TestSavePreferencesRoundTrip(t *testing.T) {
	base := t.TempDir()
	if err := InitPanelDir(base); err != nil {
		t.Fatal(err)
	}
	d, err := New(base)
	if err != nil {
		t.Fatal(err)
	}
	p := d.Preferences()
	p.App.Language = "Spanish"
	p.Privacy.SharePerformance = true
	if err := d.SavePreferences(p); err != nil {
		t.Fatalf("SavePreferences returned error: %v", err)
	}

	reopened, err := New(base)
	if err != nil {
		t.Fatal(err)
	}
	got := reopened.Preferences()
	if got.App.Language != "Spanish" {
		t.Fatalf("language not persisted: %s", got.App.Language)
	}
	if !got.Privacy.SharePerformance {
		t.Fatalf("privacy flag not persisted")
	}
}

func TestSavePreferencesRejectsInvalid(t *testing.T) {
	base := t.TempDir()
	if err := InitPanelDir(base); err != nil {
		t.Fatal(err)
	}
	d, err := New(base)
	if err != nil {
		t.Fatal(err)
	}
	before := d.Preferences()
	bad := before
	bad.App.Theme = "neon"
	if err := d.SavePreferences(bad); err == nil {
		t.Fatalf("expected validation error but got none")
	}
	if d.Preferences() != before {
		t.Fatalf("rejected save must not mutate in-memory preferences")
	}
}
