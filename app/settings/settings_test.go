package settings

import (
	"os"
	"path/filepath"
	"testing"
)

// The settings file lives next to the executable, which during tests is
// the test binary in a writable build directory.
func withSettingsFile(t *testing.T, content string) {
	t.Helper()
	path, err := settingsFilePath()
	if err != nil {
		t.Skipf("cannot resolve settings path: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Skipf("cannot write settings file at %s: %v", path, err)
	}
	t.Cleanup(func() { os.Remove(path) })
}

func TestGetEffectiveSettingsDefaults(t *testing.T) {
	path, err := settingsFilePath()
	if err == nil {
		os.Remove(path)
	}

	s := GetEffectiveSettings()
	if s.CatalogTitle != "Rockstar Jobs Database" {
		t.Errorf("title = %q", s.CatalogTitle)
	}
	if s.PageSize != 25 || s.SampleSize != 5 {
		t.Errorf("page/sample = %d/%d, want 25/5", s.PageSize, s.SampleSize)
	}
	if !s.EnableQueryCache || s.CacheSizeLimitMB != 50 {
		t.Errorf("cache settings = %v/%d", s.EnableQueryCache, s.CacheSizeLimitMB)
	}
	if filepath.Base(s.DatabasePath) != "rockstar_jobs.db" {
		t.Errorf("database path = %q", s.DatabasePath)
	}
}

func TestGetEffectiveSettingsOverlay(t *testing.T) {
	withSettingsFile(t, `
page_size: 50
catalog_title: My Catalog
default_sort_desc: true
window_width: 1600
`)

	s := GetEffectiveSettings()
	if s.PageSize != 50 {
		t.Errorf("page size = %d, want 50", s.PageSize)
	}
	if s.CatalogTitle != "My Catalog" {
		t.Errorf("title = %q", s.CatalogTitle)
	}
	if !s.DefaultSortDesc {
		t.Error("sort desc override lost")
	}
	if s.WindowWidth != 1600 {
		t.Errorf("window width = %d, want 1600", s.WindowWidth)
	}
	// Untouched keys keep their defaults.
	if s.SampleSize != 5 || s.WindowHeight != 768 {
		t.Errorf("defaults lost: sample %d, height %d", s.SampleSize, s.WindowHeight)
	}
}

func TestGetEffectiveSettingsRejectsInvalidValues(t *testing.T) {
	withSettingsFile(t, `
page_size: -1
window_width: 100
window_height: 50
`)

	s := GetEffectiveSettings()
	if s.PageSize != 25 {
		t.Errorf("negative page size accepted: %d", s.PageSize)
	}
	if s.WindowWidth != 1024 || s.WindowHeight != 768 {
		t.Errorf("undersized window accepted: %dx%d", s.WindowWidth, s.WindowHeight)
	}
}

func TestGetEffectiveSettingsMalformedFile(t *testing.T) {
	withSettingsFile(t, "{{{not yaml")
	s := GetEffectiveSettings()
	if s.PageSize != 25 || s.CatalogTitle != "Rockstar Jobs Database" {
		t.Error("malformed file must fall back to defaults")
	}
}
