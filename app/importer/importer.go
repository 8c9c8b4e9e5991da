// Package importer ingests GTALens scrape dumps into the jobs table. A
// dump is a JSON file (optionally gzip/bzip2/xz compressed) holding
// either a top-level array of job objects or an object with a "jobs"
// array. Import is idempotent: jobs are upserted by id, so re-running
// over the same dumps is safe.
package importer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"jobsdb/app/interfaces"
	"jobsdb/app/store"
)

// jobsPath selects the job list from an object-shaped dump.
var jobsPath = jp.MustParseString("$.jobs[*]")

// Result summarizes one import run.
type Result struct {
	BatchID      string `json:"batchId"`
	FilesScanned int    `json:"filesScanned"`
	JobsImported int    `json:"jobsImported"`
	JobsSkipped  int    `json:"jobsSkipped"` // objects without an id or name
}

// Importer writes scrape dumps into a store.
type Importer struct {
	store  *store.Store
	logger interfaces.Logger
}

// New creates an importer writing to st. logger may be nil.
func New(st *store.Store, logger interfaces.Logger) *Importer {
	return &Importer{store: st, logger: logger}
}

// Discover returns the dump files under root matching pattern, using
// doublestar globs (e.g. "dumps/**/*.json*").
func Discover(root, pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	return matches, nil
}

// Run imports every discovered dump file. Individual malformed job
// objects are skipped and counted, not fatal; an unreadable file aborts
// the run.
func (im *Importer) Run(ctx context.Context, files []string) (*Result, error) {
	res := &Result{BatchID: uuid.NewString()}

	for _, path := range files {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		data, err := readDump(path)
		if err != nil {
			return res, err
		}
		jobs, skipped, err := parseDump(data)
		if err != nil {
			return res, fmt.Errorf("parse %s: %w", path, err)
		}
		for _, j := range jobs {
			if err := im.store.Upsert(ctx, j); err != nil {
				return res, err
			}
		}
		res.FilesScanned++
		res.JobsImported += len(jobs)
		res.JobsSkipped += skipped
		im.log("info", fmt.Sprintf("importer: %s -> %d jobs (%d skipped)", filepath.Base(path), len(jobs), skipped))
	}
	return res, nil
}

// parseDump decodes one dump payload into job records.
func parseDump(data []byte) ([]*interfaces.Job, int, error) {
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, 0, err
	}

	var items []any
	switch v := parsed.(type) {
	case []any:
		items = v
	default:
		items = jobsPath.Get(parsed)
	}
	if len(items) == 0 {
		return nil, 0, fmt.Errorf("no job objects found")
	}

	var jobs []*interfaces.Job
	skipped := 0
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			skipped++
			continue
		}
		j := jobFromObject(obj)
		if j.ID == "" || j.Name == "" {
			skipped++
			continue
		}
		jobs = append(jobs, j)
	}
	return jobs, skipped, nil
}

// jobFromObject maps a dump object onto a Job. Dump keys mirror the jobs
// table columns; missing keys leave fields empty, which downstream code
// already treats as absence.
func jobFromObject(obj map[string]any) *interfaces.Job {
	return &interfaces.Job{
		ID:               field(obj, "id"),
		Name:             field(obj, "job_name"),
		Creator:          field(obj, "job_creator"),
		JobType:          field(obj, "job_type"),
		JobTypeEdited:    field(obj, "job_type_edited"),
		MaxPlayers:       field(obj, "max_players"),
		VerificationType: field(obj, "verification_type"),
		CreationDate:     field(obj, "creation_date"),
		LastUpdated:      field(obj, "last_updated"),
		ScrapedAt:        field(obj, "scraped_at"),
		GTALensLink:      field(obj, "gta_lens_link"),
		OriginalURL:      field(obj, "original_url"),
		Description:      field(obj, "job_description"),
		ImageURL:         field(obj, "job_image"),
	}
}

// field reads a string-ish value from a dump object. Numbers are
// rendered with %v so a numeric max_players still lands in the
// text-encoded column the way the scraper writes it.
func field(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func (im *Importer) log(level, msg string) {
	if im.logger != nil {
		im.logger.Log(level, msg)
	}
}
