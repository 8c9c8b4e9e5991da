// Package store reads the jobs catalog out of a local SQLite database as
// an immutable in-memory snapshot. The query pipeline never goes back to
// the database; reloading installs a whole new snapshot.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	_ "modernc.org/sqlite"

	"jobsdb/app/interfaces"
	"jobsdb/app/normalize"
)

// Store wraps the catalog database. Reads are bulk, one-shot snapshot
// loads; the only writer is the dump importer.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the SQLite database at dbPath and ensures the
// jobs table exists.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// WAL mode so importer writes do not block snapshot reads.
	if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err = s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS jobs (
			id                TEXT PRIMARY KEY,
			job_name          TEXT NOT NULL,
			job_creator       TEXT NOT NULL DEFAULT '',
			job_type          TEXT NOT NULL DEFAULT '',
			job_type_edited   TEXT NOT NULL DEFAULT '',
			max_players       TEXT NOT NULL DEFAULT '',
			verification_type TEXT NOT NULL DEFAULT '',
			creation_date     TEXT NOT NULL DEFAULT '',
			last_updated      TEXT NOT NULL DEFAULT '',
			scraped_at        TEXT NOT NULL DEFAULT '',
			gta_lens_link     TEXT NOT NULL DEFAULT '',
			original_url      TEXT NOT NULL DEFAULT '',
			job_description   TEXT NOT NULL DEFAULT '',
			job_image         TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_jobs_type_edited ON jobs(job_type_edited);
	`)
	return err
}

// LoadSnapshot bulk reads every job, derives the normalized fields and
// computes snapshot metadata. An empty table is an error: there is
// nothing to serve, and the caller surfaces that once at load time.
func (s *Store) LoadSnapshot(ctx context.Context) (*interfaces.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, job_name, job_creator, job_type, job_type_edited,
		       max_players, verification_type, creation_date, last_updated,
		       scraped_at, gta_lens_link, original_url, job_description, job_image
		FROM jobs
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*interfaces.Job
	for rows.Next() {
		j := &interfaces.Job{}
		if err := rows.Scan(
			&j.ID, &j.Name, &j.Creator, &j.JobType, &j.JobTypeEdited,
			&j.MaxPlayers, &j.VerificationType, &j.CreationDate, &j.LastUpdated,
			&j.ScrapedAt, &j.GTALensLink, &j.OriginalURL, &j.Description, &j.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		normalize.Apply(j)
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no jobs in database %s", s.path)
	}

	fingerprint, err := Fingerprint(s.path)
	if err != nil {
		return nil, fmt.Errorf("fingerprint database: %w", err)
	}

	snap := &interfaces.Snapshot{
		Jobs:        jobs,
		Fingerprint: fingerprint,
	}
	fillMetadata(snap)
	return snap, nil
}

// fillMetadata derives the sidebar metadata: distinct type lists and
// observed year bounds.
func fillMetadata(snap *interfaces.Snapshot) {
	types := make(map[string]bool)
	verifs := make(map[string]bool)

	for _, j := range snap.Jobs {
		if j.JobTypeEdited != "" {
			types[j.JobTypeEdited] = true
		}
		if j.VerificationType != "" {
			verifs[j.VerificationType] = true
		}
		trackYearBounds(j.CreationYear, &snap.MinCreationYear, &snap.MaxCreationYear)
		trackYearBounds(j.UpdateYear, &snap.MinUpdateYear, &snap.MaxUpdateYear)
	}

	for t := range types {
		snap.JobTypes = append(snap.JobTypes, t)
	}
	// Preferred order first, then anything unknown lexicographically.
	sort.SliceStable(snap.JobTypes, func(i, k int) bool {
		ri := normalize.TypeRank(snap.JobTypes[i], normalize.DefaultTypeOrder)
		rk := normalize.TypeRank(snap.JobTypes[k], normalize.DefaultTypeOrder)
		if ri != rk {
			return ri < rk
		}
		return snap.JobTypes[i] < snap.JobTypes[k]
	})

	for v := range verifs {
		snap.VerificationTypes = append(snap.VerificationTypes, v)
	}
	sort.Strings(snap.VerificationTypes)
}

func trackYearBounds(year *int, min, max *int) {
	if year == nil {
		return
	}
	if *min == 0 || *year < *min {
		*min = *year
	}
	if *year > *max {
		*max = *year
	}
}

// Upsert inserts or replaces a job by id. Used only by the dump
// importer; snapshot readers never observe partial writes because they
// read in one query against WAL.
func (s *Store) Upsert(ctx context.Context, j *interfaces.Job) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs
			(id, job_name, job_creator, job_type, job_type_edited, max_players,
			 verification_type, creation_date, last_updated, scraped_at,
			 gta_lens_link, original_url, job_description, job_image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			job_name = excluded.job_name,
			job_creator = excluded.job_creator,
			job_type = excluded.job_type,
			job_type_edited = excluded.job_type_edited,
			max_players = excluded.max_players,
			verification_type = excluded.verification_type,
			creation_date = excluded.creation_date,
			last_updated = excluded.last_updated,
			scraped_at = excluded.scraped_at,
			gta_lens_link = excluded.gta_lens_link,
			original_url = excluded.original_url,
			job_description = excluded.job_description,
			job_image = excluded.job_image
	`,
		j.ID, j.Name, j.Creator, j.JobType, j.JobTypeEdited, j.MaxPlayers,
		j.VerificationType, j.CreationDate, j.LastUpdated, j.ScrapedAt,
		j.GTALensLink, j.OriginalURL, j.Description, j.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("upsert job %s: %w", j.ID, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
