package evaluation

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talentbridge/internal/anonymization"
	"github.com/jonathan/talentbridge/internal/logger"
	"github.com/jonathan/talentbridge/internal/readiness"
	"github.com/jonathan/talentbridge/internal/types"
)

// SubmissionReport is the disclosure-safe view of a submission shown to the other side.
type SubmissionReport struct {
	ID        uuid.UUID                 `json:"id"`
	JobID     uuid.UUID                 `json:"job_id"`
	Stage     string                    `json:"stage"`
	Candidate types.AnonymizedCandidate `json:"candidate"`
	Company   string                    `json:"company"`
	Readiness readiness.ExposeResult    `json:"readiness"`
}

// CandidateReadiness evaluates the exposé checklist of a candidate.
func (s *Service) CandidateReadiness(ctx context.Context, candidateID uuid.UUID) (*readiness.ExposeResult, error) {
	rec, err := s.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, &NotFoundError{Resource: "candidate", ID: candidateID}
	}
	result := readiness.Expose(&rec.Candidate)
	return &result, nil
}

// CompanyCompleteness scores how complete a company profile is.
func (s *Service) CompanyCompleteness(ctx context.Context, companyID uuid.UUID) (*readiness.CompanyResult, error) {
	profile, err := s.store.GetCompanyProfile(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &NotFoundError{Resource: "company", ID: companyID}
	}
	result := readiness.Company(profile)
	return &result, nil
}

// AnonymizedSubmission renders a submission with both identities hidden unless the
// respective side opted in.
func (s *Service) AnonymizedSubmission(ctx context.Context, submissionID uuid.UUID) (*SubmissionReport, error) {
	view, err := s.store.GetSubmissionView(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, &NotFoundError{Resource: "submission", ID: submissionID}
	}

	candidate := anonymization.Candidate(view.Candidate.Candidate, view.Candidate.FullName, view.CandidateRevealed)
	if !candidate.Revealed && len(s.displayKey) > 0 {
		candidate.DisplayName = anonymization.KeyedDisplayID(view.Candidate.Candidate.ID, s.displayKey)
	}

	s.logger.Debug("rendered submission",
		zap.String("submission_id", submissionID.String()),
		zap.String(logger.FieldCandidateID, view.Candidate.Candidate.ID),
		zap.Bool("candidate_revealed", candidate.Revealed),
		zap.Bool("company_revealed", view.CompanyRevealed))

	return &SubmissionReport{
		ID:        view.ID,
		JobID:     view.JobID,
		Stage:     view.Stage,
		Candidate: candidate,
		Company:   anonymization.CompanyDescriptor(view.Company, view.CompanyRevealed),
		Readiness: readiness.Expose(&view.Candidate.Candidate),
	}, nil
}
