package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonathan/internship-recommender/internal/catalog"
	"github.com/jonathan/internship-recommender/internal/recommend"
	"github.com/jonathan/internship-recommender/internal/server/ratelimit"
	"github.com/jonathan/internship-recommender/internal/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, limiter *ratelimit.Limiter) *Server {
	t.Helper()
	cat, err := catalog.New(
		[]catalog.Listing{
			{ID: "1", Name: "Data Science Intern", PartnerName: "PT Riset", Logo: "a.png", DetailSkills: "[{'name': 'Python'}, {'name': 'SQL'}]"},
			{ID: "2", Name: "Backend Intern", PartnerName: "PT Web", Logo: "b.png", DetailSkills: "not a list"},
			{ID: "3", Name: "ML Intern", PartnerName: "PT Riset", Logo: ""},
		},
		[]string{
			"python data science",
			"java backend development",
			"python machine learning",
		},
	)
	require.NoError(t, err)
	if limiter != nil {
		t.Cleanup(limiter.Stop)
	}
	return New(Config{Port: 0}, recommend.New(cat), limiter)
}

func do(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 3, body["listings"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestQueryRecommend(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, "/recommend/query?query=python&n=2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode[RecommendResponse](t, rec)
	require.Equal(t, 2, body.Count)
	assert.ElementsMatch(t, []string{"1", "3"}, []string{body.Results[0].ID, body.Results[1].ID})
	assert.Greater(t, body.Results[0].Score, 0.0)
}

func TestQueryRecommend_MissingQuery(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, "/recommend/query")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required parameter: query", decode[map[string]string](t, rec)["error"])
}

func TestQueryRecommend_InvalidN(t *testing.T) {
	s := newTestServer(t, nil)

	for _, target := range []string{
		"/recommend/query?query=python&n=abc",
		"/recommend/query?query=python&n=0",
		"/recommend/query?query=python&n=-3",
		"/recommend/query?query=python&n=101",
	} {
		rec := do(t, s, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestQueryRecommend_NoMatches(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, "/recommend/query?query=cobol")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[RecommendResponse](t, rec)
	assert.Equal(t, 0, body.Count)
	assert.Empty(t, body.Results)
}

func TestContentRecommend(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, "/recommend/content/1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[RecommendResponse](t, rec)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "3", body.Results[0].ID)
	assert.Equal(t, "PT Riset", body.Results[0].Partner)
}

func TestContentRecommend_NotFound(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, "/recommend/content/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "listing not found: missing", decode[map[string]string](t, rec)["error"])
}

func TestListListings(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(t, s, "/listings")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, decode[ListListingsResponse](t, rec).Count)

	rec = do(t, s, "/listings?query=riset")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[ListListingsResponse](t, rec)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "riset", body.Query)
}

func TestSampleListings(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(t, s, "/listings/sample?n=2")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[ListListingsResponse](t, rec)
	require.Equal(t, 2, body.Count)
	for _, l := range body.Listings {
		assert.NotEmpty(t, l.Logo)
	}

	rec = do(t, s, "/listings/sample")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "default of 3 exceeds the two eligible listings")

	rec = do(t, s, "/listings/sample?n=x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetListing(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, "/listings/1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[recommend.Detail](t, rec)
	assert.Equal(t, "Data Science Intern", body.Listing.Name)
	assert.True(t, body.Skills.Parsed)
	assert.Equal(t, []string{"Python", "SQL"}, body.Skills.Names)
	require.Len(t, body.Recommendations, 1)
	assert.Equal(t, "3", body.Recommendations[0].ID)
}

func TestGetListing_UnparsedSkills(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, "/listings/2")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[recommend.Detail](t, rec)
	assert.False(t, body.Skills.Parsed)
	assert.Equal(t, "not a list", body.Skills.Raw)
}

func TestGetListing_NotFound(t *testing.T) {
	s := newTestServer(t, nil)
	assert.Equal(t, http.StatusNotFound, do(t, s, "/listings/nope").Code)
}

func TestParseSkills(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(t, s, "/skills?raw=%5B%7B%27name%27%3A+%27Go%27%7D%5D")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[skills.Result](t, rec)
	assert.True(t, body.Parsed)
	assert.Equal(t, []string{"Go"}, body.Names)

	assert.Equal(t, http.StatusBadRequest, do(t, s, "/skills").Code)
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/recommend/query?query=python", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/recommend/query", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	limiter := ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Minute,
	})
	s := newTestServer(t, limiter)

	for i := 0; i < 2; i++ {
		rec := do(t, s, "/listings")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := do(t, s, "/listings")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decode[map[string]any](t, rec)["error"])
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&recommend.NotFoundError{ID: "x"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&recommend.InvalidInputError{Field: "n"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(validate.Struct(SkillsRequest{})))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
