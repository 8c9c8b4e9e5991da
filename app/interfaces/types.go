package interfaces

import "time"

// Job represents a single catalog entry for a user-created in-game job.
// Raw fields come straight from the jobs table; derived fields are computed
// once at snapshot load and never persisted back.
type Job struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Creator          string `json:"creator"`
	JobType          string `json:"jobType"`       // As scraped from the source site
	JobTypeEdited    string `json:"jobTypeEdited"` // Curated variant; all filtering/sorting uses this
	MaxPlayers       string `json:"maxPlayers"`    // Text-encoded small integer, "8".."30"
	VerificationType string `json:"verificationType"`
	CreationDate     string `json:"creationDate"` // Free text, e.g. "August 08, 2015"
	LastUpdated      string `json:"lastUpdated"`
	ScrapedAt        string `json:"scrapedAt"` // "2006-01-02 15:04:05"
	GTALensLink      string `json:"gtaLensLink,omitempty"`
	OriginalURL      string `json:"originalUrl,omitempty"`
	Description      string `json:"description,omitempty"`
	ImageURL         string `json:"imageUrl,omitempty"`

	// Derived fields. Parse failure yields a nil pointer, never an error.
	CreatedAt    *time.Time `json:"-"`
	UpdatedAt    *time.Time `json:"-"`
	ScrapedTime  *time.Time `json:"-"`
	CreationYear *int       `json:"creationYear,omitempty"`
	UpdateYear   *int       `json:"updateYear,omitempty"`
	TypeRank     int        `json:"-"` // Position in the preferred type ordering, unknowns after all known
}

// YearRange is an inclusive [Min, Max] bound on a derived year.
// A nil *YearRange means the dimension is unrestricted.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether year falls inside the range.
func (r *YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Player bucket tokens accepted by FilterState.PlayerBuckets.
const (
	BucketThirty      = "30"    // exactly 30
	BucketSixteenPlus = "16-29" // 16..29 inclusive
	BucketEightPlus   = "8-15"  // 8..15 inclusive
)

// FilterState is the fully resolved filter input for one query. Empty
// selection sets and nil year ranges impose no restriction on their
// dimension; they never mean "match nothing".
type FilterState struct {
	Search            string     `json:"search"`
	JobTypes          []string   `json:"jobTypes"`
	VerificationTypes []string   `json:"verificationTypes"`
	PlayerBuckets     []string   `json:"playerBuckets"`
	CreationYears     *YearRange `json:"creationYears,omitempty"`
	UpdateYears       *YearRange `json:"updateYears,omitempty"`
}

// Sort field identifiers recognized by the sort engine. Anything else
// falls back to input order.
const (
	SortByName    = "name"
	SortByCreator = "creator"
	SortByType    = "type"
	SortByCreated = "created"
	SortByUpdated = "updated"
	SortByScraped = "scraped"
)

// SortState selects the ordering for one query.
type SortState struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// PageRequest selects the visible page. Page is 1-based and clamped by the
// paginator, so any caller value is safe.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// QueryRequest is the full state value a presentation surface passes in.
type QueryRequest struct {
	Filter FilterState `json:"filter"`
	Sort   SortState   `json:"sort"`
	Page   PageRequest `json:"page"`
}

// QueryResult is one visible page plus the pagination metadata the
// frontend renders alongside it.
type QueryResult struct {
	Jobs          []*Job `json:"jobs"`
	EffectivePage int    `json:"effectivePage"`
	TotalPages    int    `json:"totalPages"`
	MatchingCount int    `json:"matchingCount"`
	TotalCount    int    `json:"totalCount"`
	Cached        bool   `json:"cached"`
}

// Snapshot is an immutable point-in-time copy of the full record set plus
// the metadata the sidebar needs. It is shared read-only across queries;
// a reload installs a fresh Snapshot rather than mutating this one.
type Snapshot struct {
	Jobs        []*Job
	Fingerprint string // HighwayHash of the database file, drives cache keys

	JobTypes          []string // distinct curated types in preferred order
	VerificationTypes []string // distinct verification types, lexicographic

	// Observed year bounds over the whole set; zero when no record has a
	// parseable year for the dimension.
	MinCreationYear int
	MaxCreationYear int
	MinUpdateYear   int
	MaxUpdateYear   int
}

// TotalCount returns the size of the full record set.
func (s *Snapshot) TotalCount() int {
	if s == nil {
		return 0
	}
	return len(s.Jobs)
}

// Logger is the minimal logging surface core packages need from the app.
type Logger interface {
	Log(level, message string)
}
