package clubfolio

import (
	"github.com/clubfolio/clubfolio/date"
	"github.com/google/uuid"
)

// NavEntry is an immutable point of the club's NAV history. Entries are
// append-only and ordered by date; a second snapshot on the same day appends
// a second entry rather than overwriting the first.
type NavEntry struct {
	ID             string
	ClubID         string
	Date           date.Date
	NavPerShare    Money
	TotalNetAssets Money
}

// NewNavSnapshot freezes the supplied valuation into a history point dated
// today. Figures are taken verbatim from the summary; persisting the entry
// is the caller's job.
func NewNavSnapshot(clubID string, summary PortfolioSummary) NavEntry {
	return NavEntry{
		ID:             uuid.NewString(),
		ClubID:         clubID,
		Date:           date.Today(),
		NavPerShare:    summary.NavPerShare,
		TotalNetAssets: summary.TotalNetAssets,
	}
}

// NavSeries collapses persisted entries into a chronological per-day series
// and appends one synthetic live point from the current valuation. When a
// day holds several snapshots the last one wins.
func NavSeries(entries []NavEntry, live PortfolioSummary) *date.History[float64] {
	var h date.History[float64]
	for _, e := range entries {
		h.Append(e.Date, e.NavPerShare.InexactFloat64())
	}
	h.Append(date.Today(), live.NavPerShare.InexactFloat64())
	return &h
}
