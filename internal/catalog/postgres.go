package catalog

import (
	"context"
	"fmt"
	"log"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultTable is the table read by PostgresSource when none is configured.
const DefaultTable = "internship_listings"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// PostgresSource loads the catalog from a single PostgreSQL table that holds
// the listing columns and the preprocessed text side by side.
//
// Expected schema:
//
//	CREATE TABLE internship_listings (
//	  position             INTEGER PRIMARY KEY,
//	  id                   TEXT NOT NULL,
//	  name                 TEXT NOT NULL,
//	  mitra_name           TEXT,
//	  logo                 TEXT,
//	  detail_skills        TEXT,
//	  description          TEXT,
//	  result_preprocessing TEXT
//	);
type PostgresSource struct {
	DatabaseURL string
	Table       string
}

// Load connects, reads every row ordered by position and closes the pool.
func (s PostgresSource) Load(ctx context.Context) (*Catalog, error) {
	table := s.Table
	if table == "" {
		table = DefaultTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, &LoadError{Source: "postgres", Message: fmt.Sprintf("invalid table name %q", table)}
	}

	pool, err := pgxpool.New(ctx, s.DatabaseURL)
	if err != nil {
		return nil, &LoadError{Source: "postgres", Message: "failed to connect to database", Cause: err}
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, &LoadError{Source: "postgres", Message: "failed to ping database", Cause: err}
	}

	listings, texts, err := queryListings(ctx, pool, table)
	if err != nil {
		return nil, err
	}

	log.Printf("[catalog] loaded %d listings from postgres table %s", len(listings), table)
	return New(listings, texts)
}

func queryListings(ctx context.Context, pool *pgxpool.Pool, table string) ([]Listing, []string, error) {
	query := fmt.Sprintf(`SELECT id, name,
		COALESCE(mitra_name, ''), COALESCE(logo, ''), COALESCE(detail_skills, ''),
		COALESCE(description, ''), COALESCE(result_preprocessing, '')
		FROM %s ORDER BY position`, table)

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, nil, &LoadError{Source: "postgres", Message: "failed to query listings", Cause: err}
	}

	type row struct {
		listing Listing
		text    string
	}
	collected, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (row, error) {
		var out row
		var description string
		l := &out.listing
		if err := r.Scan(&l.ID, &l.Name, &l.PartnerName, &l.Logo, &l.DetailSkills, &description, &out.text); err != nil {
			return row{}, err
		}
		l.Fields = map[string]string{
			ColumnID:           l.ID,
			ColumnName:         l.Name,
			ColumnPartnerName:  l.PartnerName,
			ColumnLogo:         l.Logo,
			ColumnDetailSkills: l.DetailSkills,
			ColumnDescription:  description,
		}
		return out, nil
	})
	if err != nil {
		return nil, nil, &LoadError{Source: "postgres", Message: "failed to scan listings", Cause: err}
	}

	listings := make([]Listing, len(collected))
	texts := make([]string, len(collected))
	for i, c := range collected {
		listings[i] = c.listing
		texts[i] = c.text
	}
	return listings, texts, nil
}
