// Package recommend ranks catalog listings by TF-IDF cosine similarity, either
// against another listing or against a free-text query.
package recommend

import (
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jonathan/internship-recommender/internal/catalog"
	"github.com/jonathan/internship-recommender/internal/tfidf"
	"golang.org/x/text/cases"
)

// Engine is the recommendation service. It is built once at startup and is
// safe for concurrent use: the catalog and the index are never mutated.
type Engine struct {
	catalog *catalog.Catalog
	index   *tfidf.Index
	shuffle func(n int, swap func(i, j int))
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand makes Sample draw from r instead of the global source.
// r is not safe for concurrent use, so callers sharing the engine across
// goroutines should keep the default.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.shuffle = r.Shuffle
	}
}

// New builds the term-weight index over the catalog's preprocessed texts.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	start := time.Now()
	e := &Engine{
		catalog: cat,
		index:   tfidf.Fit(cat.Texts()),
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		opt(e)
	}

	log.Printf("[index] built %d x %d term-weight matrix in %v",
		e.index.Len(), e.index.VocabularySize(), time.Since(start))
	return e
}

// Catalog returns the listing table the engine ranks over.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Index returns the term-weight index.
func (e *Engine) Index() *tfidf.Index {
	return e.index
}

// ListingSimilarities returns the row of the listing with the given id and the
// cosine similarity of that row against every catalog row, itself included.
// Scores are recomputed on every call.
func (e *Engine) ListingSimilarities(id string) (int, []float64, error) {
	row, ok := e.catalog.IndexOf(id)
	if !ok {
		return -1, nil, &NotFoundError{ID: id}
	}
	return row, e.index.Similarities(e.index.Row(row)), nil
}

// QuerySimilarities case-folds the query, projects it into the index space and
// returns its cosine similarity against every catalog row.
func (e *Engine) QuerySimilarities(query string) ([]float64, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &InvalidInputError{Field: "query", Message: "query is required"}
	}
	folded := cases.Fold().String(query)
	return e.index.Similarities(e.index.Transform(folded)), nil
}

// ByListing returns up to n listings most similar to the listing with the given id.
// The listing itself is never part of the result.
func (e *Engine) ByListing(id string, n int) ([]Recommendation, error) {
	if err := validateLimit(n); err != nil {
		return nil, err
	}

	_, scores, err := e.ListingSimilarities(id)
	if err != nil {
		return nil, err
	}

	ranked := rank(scores, n, func(row int) bool {
		return e.catalog.Listing(row).ID == id
	})
	return assemble(e.catalog, ranked), nil
}

// ByQuery returns up to n listings most similar to a free-text query.
func (e *Engine) ByQuery(query string, n int) ([]Recommendation, error) {
	if err := validateLimit(n); err != nil {
		return nil, err
	}

	scores, err := e.QuerySimilarities(query)
	if err != nil {
		return nil, err
	}

	return assemble(e.catalog, rank(scores, n, nil)), nil
}

func validateLimit(n int) error {
	if n < 1 {
		return &InvalidInputError{Field: "n", Message: "must be at least 1"}
	}
	return nil
}
