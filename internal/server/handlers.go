package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adforge/internal/core"
	"adforge/internal/formats"
	"adforge/internal/generate"
	"adforge/internal/normalize"
	"adforge/internal/persistence"
	"adforge/internal/provider"
	"adforge/internal/virality"
)

// Health check response
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ErrorResponse is the JSON body for all error statuses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleHealth handles the /health endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if s.db == nil {
		checks["database"] = "disabled"
	} else if err := s.db.Ping(r.Context()); err != nil {
		checks["database"] = "error"
		s.respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unhealthy",
			Checks: checks,
		})
		return
	} else {
		checks["database"] = "ok"
	}

	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Checks: checks,
	})
}

// FormatInfo describes one output format for API consumers
type FormatInfo struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// handleListFormats handles GET /api/formats
func (s *Server) handleListFormats(w http.ResponseWriter, r *http.Request) {
	all := formats.All()
	infos := make([]FormatInfo, 0, len(all))
	for _, f := range all {
		infos = append(infos, FormatInfo{
			ID:          string(f),
			Label:       formats.Label(f),
			Description: formats.Description(f),
		})
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"formats": infos})
}

// handleListProviders handles GET /api/providers
func (s *Server) handleListProviders(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"providers": s.providers.Available()})
}

// GenerateRequest is the body for POST /api/generate
type GenerateRequest struct {
	Campaign core.Campaign `json:"campaign"`
}

// GenerateResponse is the body for a successful generation batch
type GenerateResponse struct {
	CampaignID string                  `json:"campaign_id,omitempty"`
	Items      []core.GeneratedContent `json:"items"`
}

// handleGenerate handles POST /api/generate. It runs the full multi-format
// batch and, when a database is configured, persists the campaign and its
// generated items before responding.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign := req.Campaign
	items, err := s.generator.MultiFormat(r.Context(), campaign, campaign.OutputFormats, campaign.AIProvider)
	if err != nil {
		s.respondError(w, statusForError(err), err.Error())
		return
	}

	resp := GenerateResponse{Items: items}
	if s.db != nil {
		if err := s.db.Campaigns().Create(r.Context(), &campaign); err != nil {
			s.log.Error("Failed to persist campaign", "error", err)
		} else {
			// Only advertise an id that actually exists.
			resp.CampaignID = campaign.ID
			if err := s.db.Content().CreateBatch(r.Context(), campaign.ID, items); err != nil {
				s.log.Error("Failed to persist generated content", "error", err)
			}
		}
	}

	s.respondJSON(w, http.StatusOK, resp)
}

// StrategyRequest is the body for POST /api/strategy
type StrategyRequest struct {
	Campaign core.Campaign `json:"campaign"`
}

// handleStrategy handles POST /api/strategy
func (s *Server) handleStrategy(w http.ResponseWriter, r *http.Request) {
	var req StrategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	content, err := s.generator.Strategy(r.Context(), req.Campaign, req.Campaign.AIProvider)
	if err != nil {
		s.respondError(w, statusForError(err), err.Error())
		return
	}

	strategy := core.Strategy{
		CampaignID: req.Campaign.ID,
		Content:    content,
		ModelUsed:  req.Campaign.AIProvider,
	}
	if s.db != nil && req.Campaign.ID != "" {
		if err := s.db.Strategies().Create(r.Context(), &strategy); err != nil {
			s.log.Error("Failed to persist strategy", "error", err)
		}
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{"strategy": strategy})
}

// IdeasRequest is the body for POST /api/ideas
type IdeasRequest struct {
	Brief    core.IdeasBrief `json:"brief"`
	Provider string          `json:"provider"`
}

// handleIdeas handles POST /api/ideas
func (s *Server) handleIdeas(w http.ResponseWriter, r *http.Request) {
	var req IdeasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ideas, err := s.generator.Ideas(r.Context(), req.Brief, req.Provider)
	if err != nil {
		s.respondError(w, statusForError(err), err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{"ideas": ideas})
}

// EnhanceRequest is the body for POST /api/ideas/enhance
type EnhanceRequest struct {
	Idea     core.ViralIdea `json:"idea"`
	Provider string         `json:"provider"`
}

// handleEnhanceIdea handles POST /api/ideas/enhance
func (s *Server) handleEnhanceIdea(w http.ResponseWriter, r *http.Request) {
	var req EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	breakdown, err := s.generator.EnhanceIdea(r.Context(), req.Idea, req.Provider)
	if err != nil {
		s.respondError(w, statusForError(err), err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{"breakdown": breakdown})
}

// ScoreRequest is the body for POST /api/score
type ScoreRequest struct {
	virality.Request
	Provider   string `json:"provider"`
	CampaignID string `json:"campaign_id"`
}

// handleScore handles POST /api/score
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Script == "" {
		s.respondError(w, http.StatusBadRequest, "script is required")
		return
	}

	payload, err := s.scorer.Score(r.Context(), req.Request, req.Provider)
	if err != nil {
		s.respondError(w, statusForError(err), err.Error())
		return
	}

	if s.db != nil && req.CampaignID != "" {
		if err := s.db.Scores().Create(r.Context(), req.CampaignID, &payload); err != nil {
			s.log.Error("Failed to persist virality score", "error", err)
		}
	}

	s.respondJSON(w, http.StatusOK, payload)
}

// ExplainRequest is the body for POST /api/score/explain
type ExplainRequest struct {
	Payload  core.ScorePayload `json:"payload"`
	Provider string            `json:"provider"`
}

// handleExplainScore handles POST /api/score/explain
func (s *Server) handleExplainScore(w http.ResponseWriter, r *http.Request) {
	var req ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	explanation, err := s.scorer.Explain(r.Context(), req.Payload, req.Provider)
	if err != nil {
		s.respondError(w, statusForError(err), err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"explanation": explanation})
}

// handleListCampaigns handles GET /api/campaigns
func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.respondError(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	campaigns, err := s.db.Campaigns().List(r.Context(), persistence.ListOptions{})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if campaigns == nil {
		campaigns = []core.Campaign{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"campaigns": campaigns})
}

// handleGetCampaign handles GET /api/campaigns/{id}
func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.respondError(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	id := chi.URLParam(r, "id")
	campaign, err := s.db.Campaigns().Get(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, campaign)
}

// handleGetCampaignContent handles GET /api/campaigns/{id}/content
func (s *Server) handleGetCampaignContent(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.respondError(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	id := chi.URLParam(r, "id")
	items, err := s.db.Content().GetByCampaignID(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []core.GeneratedContent{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// handleDeleteCampaign handles DELETE /api/campaigns/{id}
func (s *Server) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.respondError(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.db.Content().DeleteByCampaignID(r.Context(), id); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.db.Campaigns().Delete(r.Context(), id); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// statusForError maps pipeline errors onto HTTP statuses. Caller mistakes are
// 400s, missing credentials 503, upstream vendor trouble 502.
func statusForError(err error) int {
	var vendorErr *provider.VendorError
	var malformed *normalize.MalformedResponseError
	switch {
	case errors.Is(err, generate.ErrNoFormats),
		errors.Is(err, provider.ErrUnsupportedProvider),
		errors.Is(err, provider.ErrEmptyPrompt):
		return http.StatusBadRequest
	case errors.Is(err, provider.ErrMissingAPIKey):
		return http.StatusServiceUnavailable
	case errors.As(err, &vendorErr),
		errors.As(err, &malformed),
		errors.Is(err, provider.ErrEmptyResponse),
		errors.Is(err, provider.ErrContentBlocked):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError writes a JSON error response
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{Error: message})
}
