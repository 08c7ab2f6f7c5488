// Package jobscout scrapes public LinkedIn job-search results for a set of
// role keywords and turns the returned markup into a scored, deduplicated,
// ordered set of job records suitable for export.
//
// This package contains domain types, interfaces, and the pure extraction
// pipeline following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// goquery/, http/, rod/, sheets/, sqlite/).
package jobscout
