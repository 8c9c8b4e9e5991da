package app

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"jobsdb/app/cache"
	"jobsdb/app/histogram"
	"jobsdb/app/importer"
	"jobsdb/app/interfaces"
	"jobsdb/app/query"
	"jobsdb/app/settings"
	"jobsdb/app/store"
)

// App owns the record snapshot and exposes the catalog bindings to the
// frontend. The snapshot is immutable once installed: queries read it
// concurrently without locking its contents, and a reload swaps in a
// whole new snapshot under the mutex.
type App struct {
	ctx context.Context

	snapMu   sync.RWMutex
	snapshot *interfaces.Snapshot
	st       *store.Store

	queryCache *cache.Cache
	pipeline   *query.Pipeline

	clipOnce sync.Once
	clipOK   bool
}

// NewApp creates a new App application struct.
func NewApp() *App {
	current := settings.GetEffectiveSettings()
	c := cache.New(int64(current.CacheSizeLimitMB) * 1024 * 1024)

	a := &App{queryCache: c}
	if current.EnableQueryCache {
		a.pipeline = query.NewPipeline(c, a)
	} else {
		a.pipeline = query.NewPipeline(nil, a)
	}
	return a
}

// Startup stores the wails context and opens the configured database if
// it already exists. A missing database is not fatal at startup; the
// user can open or import one from the menu.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	a.queryCache.SetLogger(a)

	current := settings.GetEffectiveSettings()
	if current.DatabasePath == "" {
		return
	}
	if _, err := os.Stat(current.DatabasePath); err != nil {
		a.Log("info", fmt.Sprintf("no catalog database at %s yet", current.DatabasePath))
		return
	}
	if err := a.OpenDatabase(current.DatabasePath); err != nil {
		a.Log("error", fmt.Sprintf("failed to open catalog database: %v", err))
	}
}

// Ctx returns the app context.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Log emits a log event to the frontend console.
func (a *App) Log(level, message string) {
	if a == nil || a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, "log", map[string]any{
		"level":   level,
		"message": message,
	})
}

// OpenDatabase opens the database at path, loads a fresh snapshot and
// installs it. Total unavailability (unreadable file, empty table)
// surfaces here, once, not per query.
func (a *App) OpenDatabase(path string) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	snap, err := st.LoadSnapshot(a.ctxOrBackground())
	if err != nil {
		st.Close()
		return err
	}
	a.installSnapshot(st, snap)
	a.Log("info", fmt.Sprintf("loaded %d jobs from %s", snap.TotalCount(), path))
	a.emitCatalogLoaded()
	return nil
}

// OpenDatabaseDialog lets the user pick a database file, then opens it.
// Returns the chosen path, or "" when the dialog was cancelled.
func (a *App) OpenDatabaseDialog() (string, error) {
	path, err := runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Open Jobs Database",
		Filters: []runtime.FileFilter{
			{DisplayName: "SQLite Database", Pattern: "*.db;*.sqlite;*.sqlite3"},
		},
	})
	if err != nil || path == "" {
		return "", err
	}
	return path, a.OpenDatabase(path)
}

// ReloadSnapshot re-reads the current database and atomically replaces
// the snapshot. In-flight queries keep the old snapshot until they
// finish.
func (a *App) ReloadSnapshot() error {
	a.snapMu.RLock()
	st := a.st
	a.snapMu.RUnlock()
	if st == nil {
		return fmt.Errorf("no database open")
	}

	snap, err := st.LoadSnapshot(a.ctxOrBackground())
	if err != nil {
		return err
	}
	a.installSnapshot(st, snap)
	a.Log("info", fmt.Sprintf("reloaded snapshot: %d jobs", snap.TotalCount()))
	a.emitCatalogLoaded()
	return nil
}

// installSnapshot swaps the store/snapshot pair and drops cached
// results. The fingerprint already isolates cache entries per database
// state, but a reload is the natural point to release the old entries.
func (a *App) installSnapshot(st *store.Store, snap *interfaces.Snapshot) {
	a.snapMu.Lock()
	old := a.st
	a.st = st
	a.snapshot = snap
	a.snapMu.Unlock()

	if old != nil && old != st {
		old.Close()
	}
	a.queryCache.Clear()
}

// currentSnapshot returns the installed snapshot (nil before any load).
func (a *App) currentSnapshot() *interfaces.Snapshot {
	a.snapMu.RLock()
	defer a.snapMu.RUnlock()
	return a.snapshot
}

func (a *App) ctxOrBackground() context.Context {
	if a.ctx != nil {
		return a.ctx
	}
	return context.Background()
}

func (a *App) emitCatalogLoaded() {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "catalog:loaded")
	}
}

// CatalogInfo is the sidebar metadata: totals, the selectable type
// lists and the observed year bounds the sliders span.
type CatalogInfo struct {
	Title             string   `json:"title"`
	TotalCount        int      `json:"totalCount"`
	JobTypes          []string `json:"jobTypes"`
	VerificationTypes []string `json:"verificationTypes"`
	MinCreationYear   int      `json:"minCreationYear"`
	MaxCreationYear   int      `json:"maxCreationYear"`
	MinUpdateYear     int      `json:"minUpdateYear"`
	MaxUpdateYear     int      `json:"maxUpdateYear"`
	PageSize          int      `json:"pageSize"`
	SampleSize        int      `json:"sampleSize"`
	Loaded            bool     `json:"loaded"`
}

// GetCatalogInfo returns the metadata the frontend needs to build its
// filter sidebar. Before any database is loaded only the title and
// defaults are populated.
func (a *App) GetCatalogInfo() CatalogInfo {
	current := settings.GetEffectiveSettings()
	info := CatalogInfo{
		Title:      current.CatalogTitle,
		PageSize:   current.PageSize,
		SampleSize: current.SampleSize,
	}

	snap := a.currentSnapshot()
	if snap == nil {
		return info
	}
	info.Loaded = true
	info.TotalCount = snap.TotalCount()
	info.JobTypes = snap.JobTypes
	info.VerificationTypes = snap.VerificationTypes
	info.MinCreationYear = snap.MinCreationYear
	info.MaxCreationYear = snap.MaxCreationYear
	info.MinUpdateYear = snap.MinUpdateYear
	info.MaxUpdateYear = snap.MaxUpdateYear
	return info
}

// QueryJobs runs one filter/sort/paginate query. Invalid state degrades
// instead of erroring: out-of-range pages clamp, unknown sort fields
// fall back to input order, unknown bucket tokens never match.
func (a *App) QueryJobs(req interfaces.QueryRequest) *interfaces.QueryResult {
	if req.Page.PageSize <= 0 {
		req.Page.PageSize = settings.GetEffectiveSettings().PageSize
	}
	return a.pipeline.Run(a.currentSnapshot(), req)
}

// RandomJobs returns a uniform random selection from the filtered
// subset. Each call draws independently.
func (a *App) RandomJobs(filter interfaces.FilterState, count int) *interfaces.QueryResult {
	if count <= 0 {
		count = settings.GetEffectiveSettings().SampleSize
	}
	return a.pipeline.RunSample(a.currentSnapshot(), filter, count)
}

// YearHistogram aggregates the filtered subset into per-year counts for
// the sidebar chart. dimension is "creation" or "update"; anything else
// falls back to creation.
func (a *App) YearHistogram(filter interfaces.FilterState, dimension string) *histogram.Histogram {
	snap := a.currentSnapshot()
	if snap == nil {
		return histogram.Build(nil, histogram.ByCreationYear)
	}
	dim := histogram.ByCreationYear
	if dimension == "update" {
		dim = histogram.ByUpdateYear
	}
	return histogram.Build(query.Filter(snap.Jobs, filter), dim)
}

// ImportDumps imports scrape dump files matching pattern under root,
// then reloads the snapshot so the new jobs become visible.
func (a *App) ImportDumps(root, pattern string) (*importer.Result, error) {
	a.snapMu.RLock()
	st := a.st
	a.snapMu.RUnlock()

	if st == nil {
		// No database open yet, create one at the configured path.
		current := settings.GetEffectiveSettings()
		opened, err := store.Open(current.DatabasePath)
		if err != nil {
			return nil, err
		}
		st = opened
		a.snapMu.Lock()
		a.st = st
		a.snapMu.Unlock()
	}

	files, err := importer.Discover(root, pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no dump files match %s under %s", pattern, root)
	}

	res, err := importer.New(st, a).Run(a.ctxOrBackground(), files)
	if err != nil {
		return res, err
	}
	if err := a.ReloadSnapshot(); err != nil {
		return res, err
	}
	return res, nil
}

// ImportDumpsDialog lets the user pick a dump directory, then imports
// every dump file beneath it.
func (a *App) ImportDumpsDialog() (*importer.Result, error) {
	dir, err := runtime.OpenDirectoryDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Import Scrape Dumps",
	})
	if err != nil || dir == "" {
		return nil, err
	}
	return a.ImportDumps(dir, "**/*.json*")
}

// GetCacheStats returns query cache statistics for the frontend
// indicator.
func (a *App) GetCacheStats() cache.Stats {
	return a.queryCache.GetStats()
}

// GetSavedWindowSize returns the persisted window dimensions.
func (a *App) GetSavedWindowSize() (int, int, error) {
	current := settings.GetEffectiveSettings()
	return current.WindowWidth, current.WindowHeight, nil
}

// ClearQueryCache drops all cached query results.
func (a *App) ClearQueryCache() {
	a.queryCache.Clear()
	a.Log("info", "query cache cleared")
}
