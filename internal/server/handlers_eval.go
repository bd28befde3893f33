package server

import (
	"net/http"

	"github.com/jonathan/talentbridge/internal/anonymization"
	"github.com/jonathan/talentbridge/internal/health"
	"github.com/jonathan/talentbridge/internal/pipeline"
	"github.com/jonathan/talentbridge/internal/readiness"
	"github.com/jonathan/talentbridge/internal/techstack"
	"github.com/jonathan/talentbridge/internal/types"
)

// NormalizeRequest is the body of POST /v1/eval/normalize.
type NormalizeRequest struct {
	Skills []string `json:"skills" validate:"required"`
}

// NormalizeResponse carries the canonical labels and their display buckets.
type NormalizeResponse struct {
	Normalized []string          `json:"normalized"`
	Groups     []techstack.Group `json:"groups"`
}

// MatchRequest is the body of POST /v1/eval/match.
type MatchRequest struct {
	CandidateSkills []string `json:"candidate_skills"`
	Required        []string `json:"required"`
}

// AnonymizeCompanyRequest is the body of POST /v1/eval/anonymize/company.
type AnonymizeCompanyRequest struct {
	Company  types.CompanyAttributes `json:"company"`
	Revealed bool                    `json:"revealed"`
}

// AnonymizeCompanyResponse carries the descriptor and the industry label alone.
type AnonymizeCompanyResponse struct {
	Descriptor    string `json:"descriptor"`
	IndustryLabel string `json:"industry_label"`
}

// AnonymizeCandidateRequest is the body of POST /v1/eval/anonymize/candidate.
type AnonymizeCandidateRequest struct {
	Candidate types.Candidate `json:"candidate"`
	Name      string          `json:"name"`
	Revealed  bool            `json:"revealed"`
}

// BottlenecksRequest is the body of POST /v1/eval/bottlenecks.
type BottlenecksRequest struct {
	Dwells []types.StageDwell `json:"dwells" validate:"dive"`
}

// BottlenecksResponse wraps the detected bottlenecks.
type BottlenecksResponse struct {
	Bottlenecks []health.Bottleneck `json:"bottlenecks"`
}

// FunnelResponse wraps the funnel steps.
type FunnelResponse struct {
	Steps []health.FunnelStep `json:"steps"`
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	normalized := techstack.NormalizeAll(req.Skills)
	s.jsonResponse(w, http.StatusOK, NormalizeResponse{
		Normalized: normalized,
		Groups:     techstack.GroupLabels(normalized),
	})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, techstack.Match(req.CandidateSkills, req.Required))
}

func (s *Server) handleAnonymizeCompany(w http.ResponseWriter, r *http.Request) {
	var req AnonymizeCompanyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, AnonymizeCompanyResponse{
		Descriptor:    anonymization.CompanyDescriptor(req.Company, req.Revealed),
		IndustryLabel: anonymization.CompanyIndustryLabel(req.Company, req.Revealed),
	})
}

func (s *Server) handleAnonymizeCandidate(w http.ResponseWriter, r *http.Request) {
	var req AnonymizeCandidateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	result := anonymization.Candidate(req.Candidate, req.Name, req.Revealed)
	if !result.Revealed && len(s.displayKey) > 0 {
		result.DisplayName = anonymization.KeyedDisplayID(req.Candidate.ID, s.displayKey)
	}
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	var candidate types.Candidate
	if err := decodeJSON(w, r, &candidate); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, readiness.Expose(&candidate))
}

func (s *Server) handleCompanyCompleteness(w http.ResponseWriter, r *http.Request) {
	var profile types.CompanyProfile
	if err := decodeJSON(w, r, &profile); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, readiness.Company(&profile))
}

func (s *Server) handleJobHealthEval(w http.ResponseWriter, r *http.Request) {
	var in health.JobInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, health.Job(in))
}

func (s *Server) handleRecruitingHealth(w http.ResponseWriter, r *http.Request) {
	var in health.RecruitingInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, health.Recruiting(in))
}

func (s *Server) handleDeal(w http.ResponseWriter, r *http.Request) {
	var in health.DealInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, health.Deal(in))
}

func (s *Server) handleBottlenecksEval(w http.ResponseWriter, r *http.Request) {
	var req BottlenecksRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, BottlenecksResponse{Bottlenecks: health.Bottlenecks(req.Dwells)})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var counts types.PipelineCounts
	if err := decodeJSON(w, r, &counts); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, pipeline.Status(counts))
}

func (s *Server) handleFunnel(w http.ResponseWriter, r *http.Request) {
	var counts types.SubmissionCounts
	if err := decodeJSON(w, r, &counts); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, FunnelResponse{Steps: health.Funnel(counts)})
}
