// Package evaluation loads marketplace snapshots from the store and runs the scorers,
// classifiers and anonymizers over them.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talentbridge/internal/db"
	"github.com/jonathan/talentbridge/internal/types"
)

// Store is the read model the service evaluates. *db.DB implements it.
// Lookups return nil, nil when the row does not exist.
type Store interface {
	GetCandidate(ctx context.Context, id uuid.UUID) (*db.CandidateRecord, error)
	GetCompanyProfile(ctx context.Context, companyID uuid.UUID) (*types.CompanyProfile, error)
	GetJobSnapshot(ctx context.Context, jobID uuid.UUID) (*db.JobSnapshot, error)
	ListClientJobIDs(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error)
	ListStageDwell(ctx context.Context, jobID uuid.UUID) ([]types.StageDwell, error)
	GetClientActivity(ctx context.Context, clientID uuid.UUID) (*db.ClientActivity, error)
	GetSubmissionView(ctx context.Context, submissionID uuid.UUID) (*db.SubmissionView, error)
}

var _ Store = (*db.DB)(nil)

// ErrNotFound is wrapped by NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a missing entity.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// DefaultConcurrency bounds concurrent job evaluations per dashboard request.
const DefaultConcurrency = 4

// Options configures a Service. Zero values fall back to defaults.
type Options struct {
	Logger *zap.Logger
	// DisplayKey switches anonymous candidate tokens to keyed hashes.
	DisplayKey  []byte
	Concurrency int
	Now         func() time.Time
}

// Service evaluates stored entities.
type Service struct {
	store       Store
	logger      *zap.Logger
	displayKey  []byte
	concurrency int
	now         func() time.Time
}

// NewService creates a service over store.
func NewService(store Store, opts Options) *Service {
	s := &Service{
		store:       store,
		logger:      opts.Logger,
		displayKey:  opts.DisplayKey,
		concurrency: opts.Concurrency,
		now:         opts.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.concurrency < 1 {
		s.concurrency = DefaultConcurrency
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Service) job(ctx context.Context, jobID uuid.UUID) (*db.JobSnapshot, error) {
	snap, err := s.store.GetJobSnapshot(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, &NotFoundError{Resource: "job", ID: jobID}
	}
	return snap, nil
}
