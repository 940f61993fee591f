package job

import (
	"context"
	"time"
)

// Repository defines the interface for job persistence. Every method takes
// the owner identifier separately from any predicate and must conjoin it
// into the query itself: owner scoping is enforced at the adapter, not
// trusted to callers.
type Repository interface {
	Create(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, ownerID, id string) (*Job, error)
	Update(ctx context.Context, ownerID, id string, fields UpdateFields) (*Job, error)
	Delete(ctx context.Context, ownerID, id string) (*Job, error)

	// List returns one page of jobs matching pred, newest first, plus the
	// total match count ignoring pagination.
	List(ctx context.Context, ownerID string, pred Predicate, offset, limit int) ([]Job, int64, error)

	// CountByStatus groups the owner's jobs by status. Statuses with no
	// records are absent from the result.
	CountByStatus(ctx context.Context, ownerID string) (map[Status]int64, error)

	// ListSince returns the owner's jobs created at or after since, ordered
	// by creation time ascending.
	ListSince(ctx context.Context, ownerID string, since time.Time) ([]Job, error)

	// Ping reports whether the underlying store is reachable.
	Ping(ctx context.Context) error
}
