package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/talentbridge/internal/server/middleware"
)

// pathID parses the {id} path value.
func pathID(r *http.Request, resource string) (uuid.UUID, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "invalid " + resource + " ID"}
	}
	return id, nil
}

// entityRequest resolves the service, the caller and the path ID shared by every
// stored-entity handler. It writes the error response itself and reports false on failure.
func (s *Server) entityRequest(w http.ResponseWriter, r *http.Request, resource string) (uuid.UUID, middleware.Principal, bool) {
	if s.service == nil {
		s.fail(w, r, &ErrUnavailable{Dependency: "database"})
		return uuid.Nil, middleware.Principal{}, false
	}

	principal, err := middleware.GetPrincipal(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, middleware.Principal{}, false
	}

	id, err := pathID(r, resource)
	if err != nil {
		s.fail(w, r, err)
		return uuid.Nil, middleware.Principal{}, false
	}
	return id, principal, true
}

// owned reports whether the caller may read data of clientID. Foreign data is answered
// with 404 so existence is not disclosed.
func (s *Server) owned(w http.ResponseWriter, r *http.Request, p middleware.Principal, clientID uuid.UUID, resource string, id uuid.UUID) bool {
	if p.CanAccessClient(clientID) {
		return true
	}
	s.fail(w, r, &ErrNotFound{Resource: resource, ID: id.String()})
	return false
}

func (s *Server) handleJobHealth(w http.ResponseWriter, r *http.Request) {
	jobID, principal, ok := s.entityRequest(w, r, "job")
	if !ok {
		return
	}

	report, err := s.service.JobHealth(r.Context(), jobID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !s.owned(w, r, principal, report.ClientID, "job", jobID) {
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleJobPipeline(w http.ResponseWriter, r *http.Request) {
	jobID, principal, ok := s.entityRequest(w, r, "job")
	if !ok {
		return
	}

	report, err := s.service.JobPipeline(r.Context(), jobID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !s.owned(w, r, principal, report.ClientID, "job", jobID) {
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleJobBottlenecks(w http.ResponseWriter, r *http.Request) {
	jobID, principal, ok := s.entityRequest(w, r, "job")
	if !ok {
		return
	}

	report, err := s.service.Bottlenecks(r.Context(), jobID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !s.owned(w, r, principal, report.ClientID, "job", jobID) {
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleClientDashboard(w http.ResponseWriter, r *http.Request) {
	clientID, principal, ok := s.entityRequest(w, r, "client")
	if !ok {
		return
	}
	if !s.owned(w, r, principal, clientID, "client", clientID) {
		return
	}

	dashboard, err := s.service.ClientDashboard(r.Context(), clientID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, dashboard)
}

// handleSubmission serves the anonymized submission. Client users only see submissions
// to their own jobs.
func (s *Server) handleSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID, principal, ok := s.entityRequest(w, r, "submission")
	if !ok {
		return
	}

	report, err := s.service.AnonymizedSubmission(r.Context(), submissionID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if principal.Role == middleware.RoleClient {
		job, err := s.service.JobPipeline(r.Context(), report.JobID)
		if err != nil {
			if HTTPStatus(err) == http.StatusNotFound {
				err = &ErrNotFound{Resource: "submission", ID: submissionID.String()}
			}
			s.fail(w, r, err)
			return
		}
		if !s.owned(w, r, principal, job.ClientID, "submission", submissionID) {
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleCandidateReadiness(w http.ResponseWriter, r *http.Request) {
	candidateID, _, ok := s.entityRequest(w, r, "candidate")
	if !ok {
		return
	}

	result, err := s.service.CandidateReadiness(r.Context(), candidateID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleCompanyCompletenessByID(w http.ResponseWriter, r *http.Request) {
	companyID, _, ok := s.entityRequest(w, r, "company")
	if !ok {
		return
	}

	result, err := s.service.CompanyCompleteness(r.Context(), companyID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
