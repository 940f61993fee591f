package job

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DefaultPageSize is used when a list request does not specify a limit.
const DefaultPageSize = 10

// StatusAll is the jobStatus filter value meaning "no status filter".
const StatusAll = "all"

// CreateInput carries the caller-supplied fields of a new job. The owner is
// never part of the input; it always comes from the resolved identity.
type CreateInput struct {
	Position string
	Company  string
	Location string
	Status   Status
	Mode     Mode
}

// ListParams are the optional filters of a list request.
type ListParams struct {
	Search string
	Status string
	Page   int
	Limit  int
}

// ListResult is one page of jobs plus the page math computed over the full
// match count.
type ListResult struct {
	Jobs       []Job `json:"jobs"`
	Count      int64 `json:"count"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

// Service exposes the caller-facing job operations.
type Service interface {
	Create(ctx context.Context, ownerID string, in CreateInput) (*Job, error)
	Get(ctx context.Context, ownerID, id string) (*Job, error)
	Update(ctx context.Context, ownerID, id string, fields UpdateFields) (*Job, error)
	Delete(ctx context.Context, ownerID, id string) (*Job, error)
	List(ctx context.Context, ownerID string, params ListParams) (*ListResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, ownerID string, in CreateInput) (*Job, error) {
	// Match the create form defaults when the caller omits the enums.
	if in.Status == "" {
		in.Status = StatusPending
	}
	if in.Mode == "" {
		in.Mode = ModeFullTime
	}

	if err := validateCreate(in); err != nil {
		return nil, err
	}

	j := &Job{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		Position: strings.TrimSpace(in.Position),
		Company:  strings.TrimSpace(in.Company),
		Location: strings.TrimSpace(in.Location),
		Status:   in.Status,
		Mode:     in.Mode,
	}

	if err := s.repo.Create(ctx, j); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return j, nil
}

func (s *service) Get(ctx context.Context, ownerID, id string) (*Job, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *service) Update(ctx context.Context, ownerID, id string, fields UpdateFields) (*Job, error) {
	if err := validateUpdate(fields); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, ownerID, id, fields)
}

func (s *service) Delete(ctx context.Context, ownerID, id string) (*Job, error) {
	return s.repo.Delete(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID string, params ListParams) (*ListResult, error) {
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = DefaultPageSize
	}
	if params.Page < 1 || params.Limit < 1 {
		return nil, fmt.Errorf("%w: page and limit must be positive", ErrInvalidInput)
	}

	pred := buildListPredicate(params)
	offset := (params.Page - 1) * params.Limit

	jobs, count, err := s.repo.List(ctx, ownerID, pred, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &ListResult{
		Jobs:       jobs,
		Count:      count,
		Page:       params.Page,
		TotalPages: totalPages(count, params.Limit),
	}, nil
}

// buildListPredicate composes the optional search and status filters. Owner
// scoping is not part of the predicate; the repository conjoins it itself.
func buildListPredicate(params ListParams) Predicate {
	var preds And

	if search := strings.TrimSpace(params.Search); search != "" {
		preds = append(preds, Or{
			Contains{Field: FieldPosition, Value: search},
			Contains{Field: FieldCompany, Value: search},
		})
	}

	if params.Status != "" && params.Status != StatusAll {
		preds = append(preds, Equals{Field: FieldStatus, Value: params.Status})
	}

	if len(preds) == 0 {
		return nil
	}
	return preds
}

func totalPages(count int64, limit int) int {
	return int((count + int64(limit) - 1) / int64(limit))
}

func validateCreate(in CreateInput) error {
	fields := make(map[string]string)
	if strings.TrimSpace(in.Position) == "" {
		fields["position"] = "position is required"
	}
	if strings.TrimSpace(in.Company) == "" {
		fields["company"] = "company is required"
	}
	if strings.TrimSpace(in.Location) == "" {
		fields["location"] = "location is required"
	}
	if !in.Status.Valid() {
		fields["status"] = fmt.Sprintf("status must be one of pending, interview, declined; got %q", in.Status)
	}
	if !in.Mode.Valid() {
		fields["mode"] = fmt.Sprintf("mode must be one of full-time, part-time, internship; got %q", in.Mode)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateUpdate(fields UpdateFields) error {
	errs := make(map[string]string)
	if fields.Status != nil && !fields.Status.Valid() {
		errs["status"] = fmt.Sprintf("status must be one of pending, interview, declined; got %q", *fields.Status)
	}
	if fields.Mode != nil && !fields.Mode.Valid() {
		errs["mode"] = fmt.Sprintf("mode must be one of full-time, part-time, internship; got %q", *fields.Mode)
	}
	if fields.Position != nil && strings.TrimSpace(*fields.Position) == "" {
		errs["position"] = "position cannot be empty"
	}
	if fields.Company != nil && strings.TrimSpace(*fields.Company) == "" {
		errs["company"] = "company cannot be empty"
	}
	if fields.Location != nil && strings.TrimSpace(*fields.Location) == "" {
		errs["location"] = "location cannot be empty"
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
