package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/internship-recommender/internal/catalog"
	"github.com/jonathan/internship-recommender/internal/skills"
)

// Detail is a single listing together with its parsed skills and the
// listings most similar to it.
type Detail struct {
	Listing         catalog.Listing  `json:"listing"`
	Description     string           `json:"description,omitempty"`
	Skills          skills.Result    `json:"skills"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Sample returns n distinct listings that have both a partner name and a logo,
// chosen uniformly at random.
func (e *Engine) Sample(n int) ([]catalog.Listing, error) {
	if n < 0 {
		return nil, &InvalidInputError{Field: "n", Message: "must not be negative"}
	}

	eligible := make([]catalog.Listing, 0, e.catalog.Len())
	for _, l := range e.catalog.Listings() {
		if l.HasPartnerAndLogo() {
			eligible = append(eligible, l)
		}
	}
	if n > len(eligible) {
		return nil, &InvalidInputError{
			Field:   "n",
			Message: fmt.Sprintf("cannot sample %d listings, only %d eligible", n, len(eligible)),
		}
	}

	e.shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	return eligible[:n], nil
}

// Filter returns the listings whose name or partner name contains query,
// ignoring case. An empty query returns every listing.
func (e *Engine) Filter(query string) []catalog.Listing {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return e.catalog.Listings()
	}

	out := make([]catalog.Listing, 0)
	for _, l := range e.catalog.Listings() {
		if strings.Contains(strings.ToLower(l.Name), q) || strings.Contains(strings.ToLower(l.PartnerName), q) {
			out = append(out, l)
		}
	}
	return out
}

// Detail returns the listing with the given id, its parsed skills and up to n
// content-based recommendations.
func (e *Engine) Detail(id string, n int) (*Detail, error) {
	row, ok := e.catalog.IndexOf(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}

	recs, err := e.ByListing(id, n)
	if err != nil {
		return nil, err
	}

	l := e.catalog.Listing(row)
	return &Detail{
		Listing:         l,
		Description:     l.Description(),
		Skills:          skills.Parse(l.DetailSkills),
		Recommendations: recs,
	}, nil
}
