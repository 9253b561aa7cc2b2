// Package catalog holds the in-memory table of internship listings and their
// row-aligned preprocessed text.
package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Column names expected in the source tables.
const (
	ColumnID            = "id"
	ColumnName          = "name"
	ColumnPartnerName   = "mitra_name"
	ColumnLogo          = "logo"
	ColumnDetailSkills  = "detail_skills"
	ColumnDescription   = "description"
	ColumnPreprocessing = "result_preprocessing"
)

// RequiredListingColumns must be present in the listing table.
var RequiredListingColumns = []string{ColumnID, ColumnName, ColumnPartnerName, ColumnLogo, ColumnDetailSkills}

// Listing is a single internship opportunity. It is immutable after load.
type Listing struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	PartnerName  string            `json:"mitra_name"`
	Logo         string            `json:"logo"`
	DetailSkills string            `json:"detail_skills"`
	Fields       map[string]string `json:"fields,omitempty"` // every source column, including the ones above
}

// Field returns the value of an arbitrary source column.
func (l Listing) Field(column string) string {
	return l.Fields[column]
}

// HasPartnerAndLogo reports whether both the partner name and the logo are present.
func (l Listing) HasPartnerAndLogo() bool {
	return strings.TrimSpace(l.PartnerName) != "" && strings.TrimSpace(l.Logo) != ""
}

// Catalog is the listing table together with one preprocessed text per listing.
// Row i of Texts describes Listings[i].
type Catalog struct {
	listings []Listing
	texts    []string
}

// New builds a catalog from row-aligned tables. It fails when the row counts differ.
func New(listings []Listing, texts []string) (*Catalog, error) {
	if len(listings) != len(texts) {
		return nil, &LoadError{
			Source:  "catalog",
			Message: fmt.Sprintf("row count mismatch: %d listings, %d preprocessed texts", len(listings), len(texts)),
		}
	}
	return &Catalog{listings: listings, texts: texts}, nil
}

// Len returns the number of rows.
func (c *Catalog) Len() int {
	return len(c.listings)
}

// Listing returns the listing at row i.
func (c *Catalog) Listing(i int) Listing {
	return c.listings[i]
}

// Listings returns all listings in row order. The slice must not be modified.
func (c *Catalog) Listings() []Listing {
	return c.listings
}

// Texts returns the preprocessed texts in row order. The slice must not be modified.
func (c *Catalog) Texts() []string {
	return c.texts
}

// IndexOf returns the first row whose listing has the given id.
func (c *Catalog) IndexOf(id string) (int, bool) {
	for i := range c.listings {
		if c.listings[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Source loads a catalog from persistent storage.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}
