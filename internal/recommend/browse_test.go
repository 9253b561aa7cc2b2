package recommend

import (
	"math/rand/v2"
	"testing"

	"github.com/jonathan/internship-recommender/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_OnlyEligibleAndDistinct(t *testing.T) {
	e := largerEngine(t)

	// de-1, ds-1, be-1, hr-1 have both a partner name and a logo.
	for i := 0; i < 20; i++ {
		items, err := e.Sample(4)
		require.NoError(t, err)
		require.Len(t, items, 4)

		seen := make(map[string]bool)
		for _, l := range items {
			assert.True(t, l.HasPartnerAndLogo(), "ineligible listing %s sampled", l.ID)
			assert.False(t, seen[l.ID], "listing %s sampled twice", l.ID)
			seen[l.ID] = true
		}
	}
}

func TestSample_TooMany(t *testing.T) {
	e := largerEngine(t)

	items, err := e.Sample(5)
	assert.Nil(t, items)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "only 4 eligible")
}

func TestSample_ZeroAndNegative(t *testing.T) {
	e := largerEngine(t)

	items, err := e.Sample(0)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = e.Sample(-1)
	assert.Error(t, err)
}

func TestSample_SeededIsReproducible(t *testing.T) {
	a := largerEngineWithSeed(t, 7)
	b := largerEngineWithSeed(t, 7)

	first, err := a.Sample(3)
	require.NoError(t, err)
	second, err := b.Sample(3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSample_DoesNotReorderCatalog(t *testing.T) {
	e := largerEngine(t)
	before := append([]catalog.Listing(nil), e.Catalog().Listings()...)

	_, err := e.Sample(3)
	require.NoError(t, err)

	assert.Equal(t, before, e.Catalog().Listings())
}

func largerEngineWithSeed(t *testing.T, seed uint64) *Engine {
	base := largerEngine(t)
	return New(base.Catalog(), WithRand(rand.New(rand.NewPCG(seed, seed))))
}

func TestFilter(t *testing.T) {
	e := largerEngine(t)

	assert.Len(t, e.Filter(""), 6)

	byName := e.Filter("DATA")
	assert.Equal(t, []string{"de-1", "ds-1"}, listingIDs(byName))

	byPartner := e.Filter("pt web")
	assert.Equal(t, []string{"be-1", "fe-1"}, listingIDs(byPartner))

	assert.Empty(t, e.Filter("astronaut"))
}

func listingIDs(listings []catalog.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestDetail(t *testing.T) {
	e := newTestEngine(t,
		[]catalog.Listing{
			{
				ID: "1", Name: "Data Intern", PartnerName: "PT Data",
				DetailSkills: "[{'name': 'Python'}, {'name': 'SQL'}]",
				Fields:       map[string]string{catalog.ColumnDescription: "<p>Work with <b>data</b></p>"},
			},
			{ID: "2", Name: "ML Intern", DetailSkills: "Python, ML"},
			{ID: "3", Name: "HR Intern"},
		},
		[]string{"python data sql", "python machine learning", "people culture"},
	)

	d, err := e.Detail("1", 6)
	require.NoError(t, err)
	assert.Equal(t, "Data Intern", d.Listing.Name)
	assert.Equal(t, "Work with data", d.Description)
	assert.True(t, d.Skills.Parsed)
	assert.Equal(t, []string{"Python", "SQL"}, d.Skills.Names)
	assert.Equal(t, []string{"2"}, ids(d.Recommendations))

	d, err = e.Detail("2", 6)
	require.NoError(t, err)
	assert.False(t, d.Skills.Parsed)
	assert.Equal(t, "Python, ML", d.Skills.Raw)

	_, err = e.Detail("404", 6)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
