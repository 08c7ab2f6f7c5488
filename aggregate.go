package jobscout

import "sort"

// MaxPostedDaysCeiling is the hard recency ceiling applied during
// aggregation. It is a fixed constant, independent of the configured
// max-age parameter.
const MaxPostedDaysCeiling = 7

// Aggregate turns concatenated per-role record lists into the final ordered
// set. In order, it deduplicates by non-empty Link keeping the first
// occurrence, drops records older than MaxPostedDaysCeiling while retaining
// records with unknown age, stable-sorts by age ascending (unknown last) then
// fit score descending, and reassigns sequential positions. Aggregate is
// idempotent: applying it to an already-aggregated sequence yields an
// identical sequence. Empty input yields an empty, non-nil slice.
func Aggregate(records []*JobRecord) []*JobRecord {
	out := make([]*JobRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		// Records with empty links are never considered duplicates of
		// each other; only non-empty links participate in dedup.
		if rec.Link != "" {
			if _, ok := seen[rec.Link]; ok {
				continue
			}
			seen[rec.Link] = struct{}{}
		}

		if rec.PostedDays != nil && *rec.PostedDays > MaxPostedDaysCeiling {
			continue
		}

		out = append(out, rec)
	}

	// Unknown ages sort after every known age and keep their incoming
	// relative order; the fit-score tie-break applies only within equal
	// known ages.
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].PostedDays, out[j].PostedDays
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		case *di != *dj:
			return *di < *dj
		}
		return out[i].FitScore > out[j].FitScore
	})

	for i, rec := range out {
		rec.Position = i
	}

	return out
}
