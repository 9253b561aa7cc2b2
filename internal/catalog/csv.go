package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CSVSource loads the listing table and the preprocessed text table from two CSV files.
type CSVSource struct {
	ListingsPath string
	TextsPath    string
}

// Load reads both files concurrently and joins them by row position.
func (s CSVSource) Load(ctx context.Context) (*Catalog, error) {
	var listings []Listing
	var texts []string

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		listings, err = s.loadListings()
		return err
	})
	g.Go(func() error {
		var err error
		texts, err = s.loadTexts()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("[catalog] loaded %d listings from %s, %d texts from %s",
		len(listings), s.ListingsPath, len(texts), s.TextsPath)

	return New(listings, texts)
}

func (s CSVSource) loadListings() ([]Listing, error) {
	header, rows, err := readCSV(s.ListingsPath)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(s.ListingsPath, header, RequiredListingColumns...); err != nil {
		return nil, err
	}

	listings := make([]Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, ListingFromRecord(recordMap(header, row)))
	}
	return listings, nil
}

func (s CSVSource) loadTexts() ([]string, error) {
	header, rows, err := readCSV(s.TextsPath)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(s.TextsPath, header, ColumnPreprocessing); err != nil {
		return nil, err
	}

	col := columnIndex(header, ColumnPreprocessing)
	texts := make([]string, 0, len(rows))
	for _, row := range rows {
		texts = append(texts, cell(row, col))
	}
	return texts, nil
}

// ListingFromRecord builds a listing from a column-name → value record.
func ListingFromRecord(rec map[string]string) Listing {
	return Listing{
		ID:           strings.TrimSpace(rec[ColumnID]),
		Name:         rec[ColumnName],
		PartnerName:  rec[ColumnPartnerName],
		Logo:         rec[ColumnLogo],
		DetailSkills: rec[ColumnDetailSkills],
		Fields:       rec,
	}
}

// readCSV returns the header and data rows of a CSV file.
func readCSV(path string) ([]string, [][]string, error) {
	if path == "" {
		return nil, nil, &LoadError{Source: "csv", Message: "path is empty"}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &LoadError{Source: path, Message: "failed to open file", Cause: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, &LoadError{Source: path, Message: "file has no header row"}
		}
		return nil, nil, &LoadError{Source: path, Message: "failed to read header", Cause: err}
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, &LoadError{Source: path, Message: "failed to parse CSV", Cause: err}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func requireColumns(path string, header []string, columns ...string) error {
	var missing []string
	for _, col := range columns {
		if columnIndex(header, col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &LoadError{Source: path, Message: fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", "))}
	}
	return nil
}

func columnIndex(header []string, column string) int {
	for i, h := range header {
		if h == column {
			return i
		}
	}
	return -1
}

func recordMap(header, row []string) map[string]string {
	rec := make(map[string]string, len(header))
	for i, h := range header {
		if h == "" {
			continue
		}
		rec[h] = cell(row, i)
	}
	return rec
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
