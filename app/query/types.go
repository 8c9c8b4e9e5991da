package query

import "jobsdb/app/interfaces"

// Type aliases to the interfaces package so callers and the app layer
// share one set of state/result shapes without import cycles.
type Job = interfaces.Job
type FilterState = interfaces.FilterState
type SortState = interfaces.SortState
type PageRequest = interfaces.PageRequest
type QueryRequest = interfaces.QueryRequest
type QueryResult = interfaces.QueryResult
type YearRange = interfaces.YearRange
type Snapshot = interfaces.Snapshot

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 25
