package recommend

import (
	"sort"

	"github.com/jonathan/internship-recommender/internal/catalog"
)

// Recommendation is one ranked result row.
type Recommendation struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Partner string  `json:"mitra"`
	Score   float64 `json:"score"`
}

// scored pairs a catalog row with its similarity score.
type scored struct {
	row   int
	score float64
}

// rank orders rows by score descending, keeping row order among ties, and
// returns at most limit entries with a positive score. Rows for which skip
// returns true are left out before truncation. A limit <= 0 means no limit.
func rank(scores []float64, limit int, skip func(row int) bool) []scored {
	order := make([]scored, 0, len(scores))
	for row, score := range scores {
		order = append(order, scored{row: row, score: score})
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].score > order[j].score
	})

	out := make([]scored, 0)
	for _, s := range order {
		if limit > 0 && len(out) == limit {
			break
		}
		if s.score <= 0 {
			// Everything after the first zero is zero as well.
			break
		}
		if skip != nil && skip(s.row) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// assemble looks up the listing at each ranked row.
func assemble(cat *catalog.Catalog, ranked []scored) []Recommendation {
	recs := make([]Recommendation, 0, len(ranked))
	for _, s := range ranked {
		l := cat.Listing(s.row)
		recs = append(recs, Recommendation{
			ID:      l.ID,
			Name:    l.Name,
			Partner: l.PartnerName,
			Score:   s.score,
		})
	}
	return recs
}
