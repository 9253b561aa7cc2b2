package server

import (
	"net/http"

	"github.com/jonathan/internship-recommender/internal/catalog"
	"github.com/jonathan/internship-recommender/internal/recommend"
	"github.com/jonathan/internship-recommender/internal/skills"
)

// ListListingsResponse represents the response for listing the catalog
type ListListingsResponse struct {
	Listings []catalog.Listing `json:"listings"`
	Count    int               `json:"count"`
	Query    string            `json:"query,omitempty"`
}

// RecommendResponse represents the response of both recommend endpoints
type RecommendResponse struct {
	Results []recommend.Recommendation `json:"results"`
	Count   int                        `json:"count"`
}

// handleListListings lists listings, optionally filtered by name or partner name
func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	listings := s.engine.Filter(query)

	s.jsonResponse(w, http.StatusOK, ListListingsResponse{
		Listings: listings,
		Count:    len(listings),
		Query:    query,
	})
}

// handleSampleListings returns randomly chosen listings that have a partner name and logo
func (s *Server) handleSampleListings(w http.ResponseWriter, r *http.Request) {
	n, ok := parseQueryInt(r, "n", s.cfg.SampleN)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid n")
		return
	}

	req := SampleRequest{N: n}
	if err := validate.Struct(req); err != nil {
		s.writeError(w, err)
		return
	}

	listings, err := s.engine.Sample(req.N)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ListListingsResponse{Listings: listings, Count: len(listings)})
}

// handleGetListing returns a listing with its skills and similar listings
func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	n, ok := parseQueryInt(r, "n", s.cfg.DetailN)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid n")
		return
	}

	req := ContentRecommendRequest{ID: r.PathValue("id"), N: n}
	if err := validate.Struct(req); err != nil {
		s.writeError(w, err)
		return
	}

	detail, err := s.engine.Detail(req.ID, req.N)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, detail)
}

// handleContentRecommend returns listings similar to the listing in the path
func (s *Server) handleContentRecommend(w http.ResponseWriter, r *http.Request) {
	n, ok := parseQueryInt(r, "n", s.cfg.DefaultN)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid n")
		return
	}

	req := ContentRecommendRequest{ID: r.PathValue("id"), N: n}
	if err := validate.Struct(req); err != nil {
		s.writeError(w, err)
		return
	}

	results, err := s.engine.ByListing(req.ID, req.N)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, RecommendResponse{Results: results, Count: len(results)})
}

// handleQueryRecommend returns listings matching a free-text query
func (s *Server) handleQueryRecommend(w http.ResponseWriter, r *http.Request) {
	n, ok := parseQueryInt(r, "n", s.cfg.DefaultN)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid n")
		return
	}

	req := QueryRecommendRequest{Query: r.URL.Query().Get("query"), N: n}
	if err := validate.Struct(req); err != nil {
		s.writeError(w, err)
		return
	}

	results, err := s.engine.ByQuery(req.Query, req.N)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, RecommendResponse{Results: results, Count: len(results)})
}

// handleParseSkills parses a raw skills field passed as the raw query parameter
func (s *Server) handleParseSkills(w http.ResponseWriter, r *http.Request) {
	req := SkillsRequest{Raw: r.URL.Query().Get("raw")}
	if err := validate.Struct(req); err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, skills.Parse(req.Raw))
}
