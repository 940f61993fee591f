package job_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobtrack/src/core/job"
)

// fakeRepo is an in-memory Repository for exercising the services without a
// database.
type fakeRepo struct {
	jobs []job.Job

	lastPred   job.Predicate
	lastOffset int
	lastLimit  int
	lastSince  time.Time

	listCount int64
	failWith  error
}

func (f *fakeRepo) Create(ctx context.Context, j *job.Job) error {
	if f.failWith != nil {
		return f.failWith
	}
	j.CreatedAt = time.Now()
	j.UpdatedAt = j.CreatedAt
	f.jobs = append(f.jobs, *j)
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, ownerID, id string) (*job.Job, error) {
	for i := range f.jobs {
		if f.jobs[i].OwnerID == ownerID && f.jobs[i].ID == id {
			return &f.jobs[i], nil
		}
	}
	return nil, job.ErrNotFound
}

func (f *fakeRepo) Update(ctx context.Context, ownerID, id string, fields job.UpdateFields) (*job.Job, error) {
	return f.FindByID(ctx, ownerID, id)
}

func (f *fakeRepo) Delete(ctx context.Context, ownerID, id string) (*job.Job, error) {
	return f.FindByID(ctx, ownerID, id)
}

func (f *fakeRepo) List(ctx context.Context, ownerID string, pred job.Predicate, offset, limit int) ([]job.Job, int64, error) {
	if f.failWith != nil {
		return nil, 0, f.failWith
	}
	f.lastPred = pred
	f.lastOffset = offset
	f.lastLimit = limit

	end := offset + limit
	if offset > len(f.jobs) {
		return nil, f.listCount, nil
	}
	if end > len(f.jobs) {
		end = len(f.jobs)
	}
	return f.jobs[offset:end], f.listCount, nil
}

func (f *fakeRepo) CountByStatus(ctx context.Context, ownerID string) (map[job.Status]int64, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	counts := make(map[job.Status]int64)
	for _, j := range f.jobs {
		if j.OwnerID == ownerID {
			counts[j.Status]++
		}
	}
	return counts, nil
}

func (f *fakeRepo) ListSince(ctx context.Context, ownerID string, since time.Time) ([]job.Job, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastSince = since
	return f.jobs, nil
}

func (f *fakeRepo) Ping(ctx context.Context) error {
	return f.failWith
}

func TestCreateAppliesOwnerAndDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := job.NewService(repo)

	created, err := svc.Create(context.Background(), "owner-1", job.CreateInput{
		Position: "Backend Engineer",
		Company:  "Acme",
		Location: "Remote",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.OwnerID != "owner-1" {
		t.Errorf("OwnerID = %q, want %q", created.OwnerID, "owner-1")
	}
	if created.ID == "" {
		t.Error("ID is empty")
	}
	if created.Status != job.StatusPending {
		t.Errorf("Status = %q, want default %q", created.Status, job.StatusPending)
	}
	if created.Mode != job.ModeFullTime {
		t.Errorf("Mode = %q, want default %q", created.Mode, job.ModeFullTime)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name       string
		input      job.CreateInput
		wantFields []string
	}{
		{
			name:       "missing everything",
			input:      job.CreateInput{},
			wantFields: []string{"position", "company", "location"},
		},
		{
			name: "bad status",
			input: job.CreateInput{
				Position: "Engineer",
				Company:  "Acme",
				Location: "Remote",
				Status:   "rejected",
				Mode:     job.ModeFullTime,
			},
			wantFields: []string{"status"},
		},
		{
			name: "bad mode",
			input: job.CreateInput{
				Position: "Engineer",
				Company:  "Acme",
				Location: "Remote",
				Status:   job.StatusPending,
				Mode:     "contract",
			},
			wantFields: []string{"mode"},
		},
	}

	svc := job.NewService(&fakeRepo{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "owner-1", tt.input)

			var verr *job.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Create() error = %v, want ValidationError", err)
			}
			if !errors.Is(err, job.ErrInvalidInput) {
				t.Error("ValidationError does not unwrap to ErrInvalidInput")
			}
			for _, field := range tt.wantFields {
				if _, ok := verr.Fields[field]; !ok {
					t.Errorf("missing field error for %q, got %v", field, verr.Fields)
				}
			}
		})
	}
}

func TestUpdateValidation(t *testing.T) {
	empty := "   "
	badStatus := job.Status("ghosted")
	badMode := job.Mode("gig")

	tests := []struct {
		name      string
		fields    job.UpdateFields
		wantField string
	}{
		{name: "empty position", fields: job.UpdateFields{Position: &empty}, wantField: "position"},
		{name: "empty company", fields: job.UpdateFields{Company: &empty}, wantField: "company"},
		{name: "empty location", fields: job.UpdateFields{Location: &empty}, wantField: "location"},
		{name: "bad status", fields: job.UpdateFields{Status: &badStatus}, wantField: "status"},
		{name: "bad mode", fields: job.UpdateFields{Mode: &badMode}, wantField: "mode"},
	}

	svc := job.NewService(&fakeRepo{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), "owner-1", "some-id", tt.fields)

			var verr *job.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Update() error = %v, want ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("missing field error for %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestListPageMath(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		count          int64
		wantOffset     int
		wantTotalPages int
	}{
		{name: "first page", page: 1, limit: 2, count: 5, wantOffset: 0, wantTotalPages: 3},
		{name: "second page", page: 2, limit: 2, count: 5, wantOffset: 2, wantTotalPages: 3},
		{name: "exact fit", page: 1, limit: 5, count: 5, wantOffset: 0, wantTotalPages: 1},
		{name: "past the end", page: 9, limit: 2, count: 5, wantOffset: 16, wantTotalPages: 3},
		{name: "empty store", page: 1, limit: 2, count: 0, wantOffset: 0, wantTotalPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{listCount: tt.count}
			svc := job.NewService(repo)

			result, err := svc.List(context.Background(), "owner-1", job.ListParams{
				Page:  tt.page,
				Limit: tt.limit,
			})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}

			if repo.lastOffset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", repo.lastOffset, tt.wantOffset)
			}
			if repo.lastLimit != tt.limit {
				t.Errorf("limit = %d, want %d", repo.lastLimit, tt.limit)
			}
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
			if result.Count != tt.count {
				t.Errorf("Count = %d, want %d", result.Count, tt.count)
			}
			if result.Page != tt.page {
				t.Errorf("Page = %d, want %d", result.Page, tt.page)
			}
			if len(result.Jobs) > tt.limit {
				t.Errorf("len(Jobs) = %d exceeds limit %d", len(result.Jobs), tt.limit)
			}
		})
	}
}

func TestListRejectsInvalidPaging(t *testing.T) {
	svc := job.NewService(&fakeRepo{})

	for _, params := range []job.ListParams{
		{Page: -1, Limit: 2},
		{Page: 1, Limit: -5},
	} {
		_, err := svc.List(context.Background(), "owner-1", params)
		if !errors.Is(err, job.ErrInvalidInput) {
			t.Errorf("List(%+v) error = %v, want ErrInvalidInput", params, err)
		}
	}
}

func TestListDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := job.NewService(repo)

	result, err := svc.List(context.Background(), "owner-1", job.ListParams{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Page != 1 {
		t.Errorf("default Page = %d, want 1", result.Page)
	}
	if repo.lastLimit != job.DefaultPageSize {
		t.Errorf("default limit = %d, want %d", repo.lastLimit, job.DefaultPageSize)
	}
}

func TestListPredicateComposition(t *testing.T) {
	tests := []struct {
		name     string
		params   job.ListParams
		wantPred job.Predicate
	}{
		{
			name:     "no filters",
			params:   job.ListParams{Page: 1, Limit: 2},
			wantPred: nil,
		},
		{
			name:     "status all is no filter",
			params:   job.ListParams{Status: "all", Page: 1, Limit: 2},
			wantPred: nil,
		},
		{
			name:   "search only",
			params: job.ListParams{Search: "acme", Page: 1, Limit: 2},
			wantPred: job.And{
				job.Or{
					job.Contains{Field: job.FieldPosition, Value: "acme"},
					job.Contains{Field: job.FieldCompany, Value: "acme"},
				},
			},
		},
		{
			name:   "status only",
			params: job.ListParams{Status: "declined", Page: 1, Limit: 2},
			wantPred: job.And{
				job.Equals{Field: job.FieldStatus, Value: "declined"},
			},
		},
		{
			name:   "search and status",
			params: job.ListParams{Search: "eng", Status: "pending", Page: 1, Limit: 2},
			wantPred: job.And{
				job.Or{
					job.Contains{Field: job.FieldPosition, Value: "eng"},
					job.Contains{Field: job.FieldCompany, Value: "eng"},
				},
				job.Equals{Field: job.FieldStatus, Value: "pending"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := job.NewService(repo)

			if _, err := svc.List(context.Background(), "owner-1", tt.params); err != nil {
				t.Fatalf("List() error = %v", err)
			}

			if !predicateEqual(repo.lastPred, tt.wantPred) {
				t.Errorf("predicate = %#v, want %#v", repo.lastPred, tt.wantPred)
			}
		})
	}
}

func predicateEqual(a, b job.Predicate) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case job.And:
		bv, ok := b.(job.And)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !predicateEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case job.Or:
		bv, ok := b.(job.Or)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !predicateEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
