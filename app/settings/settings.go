package settings

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileSettings mirrors jobsdb.yml. Pointer fields distinguish "absent"
// from zero values so the file only overrides what it actually sets.
type fileSettings struct {
	DatabasePath     *string `yaml:"database_path"`
	CatalogTitle     *string `yaml:"catalog_title"`
	PageSize         *int    `yaml:"page_size"`
	SampleSize       *int    `yaml:"sample_size"`
	DefaultSortField *string `yaml:"default_sort_field"`
	DefaultSortDesc  *bool   `yaml:"default_sort_desc"`
	EnableQueryCache *bool   `yaml:"enable_query_cache"`
	CacheSizeLimitMB *int    `yaml:"cache_size_limit_mb"`
	WindowWidth      *int    `yaml:"window_width"`
	WindowHeight     *int    `yaml:"window_height"`
	InstanceID       *string `yaml:"instance_id"`
}

// GetEffectiveSettings returns the defaults overlaid with file overrides
// if any. If anything goes wrong reading or parsing the file, it returns
// defaults.
func GetEffectiveSettings() Settings {
	s := defaultSettings
	path, err := settingsFilePath()
	if err != nil {
		return s
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var f fileSettings
	if err := yaml.Unmarshal(b, &f); err != nil {
		return s
	}

	if f.DatabasePath != nil {
		s.DatabasePath = *f.DatabasePath
	}
	if f.CatalogTitle != nil {
		s.CatalogTitle = *f.CatalogTitle
	}
	if f.PageSize != nil && *f.PageSize > 0 {
		s.PageSize = *f.PageSize
	}
	if f.SampleSize != nil && *f.SampleSize > 0 {
		s.SampleSize = *f.SampleSize
	}
	if f.DefaultSortField != nil {
		s.DefaultSortField = *f.DefaultSortField
	}
	if f.DefaultSortDesc != nil {
		s.DefaultSortDesc = *f.DefaultSortDesc
	}
	if f.EnableQueryCache != nil {
		s.EnableQueryCache = *f.EnableQueryCache
	}
	if f.CacheSizeLimitMB != nil && *f.CacheSizeLimitMB > 0 {
		s.CacheSizeLimitMB = *f.CacheSizeLimitMB
	}
	if f.WindowWidth != nil && *f.WindowWidth >= 400 {
		s.WindowWidth = *f.WindowWidth
	}
	if f.WindowHeight != nil && *f.WindowHeight >= 300 {
		s.WindowHeight = *f.WindowHeight
	}
	if f.InstanceID != nil {
		s.InstanceID = *f.InstanceID
	}
	return s
}

// Save writes the full settings back to jobsdb.yml.
func Save(s Settings) error {
	path, err := settingsFilePath()
	if err != nil {
		return err
	}
	out := map[string]any{
		"database_path":       s.DatabasePath,
		"catalog_title":       s.CatalogTitle,
		"page_size":           s.PageSize,
		"sample_size":         s.SampleSize,
		"default_sort_field":  s.DefaultSortField,
		"default_sort_desc":   s.DefaultSortDesc,
		"enable_query_cache":  s.EnableQueryCache,
		"cache_size_limit_mb": s.CacheSizeLimitMB,
		"window_width":        s.WindowWidth,
		"window_height":       s.WindowHeight,
		"instance_id":         s.InstanceID,
	}
	b, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func settingsFilePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "jobsdb.yml"), nil
}
