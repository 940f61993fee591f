package job

import (
	"context"
	"fmt"
	"time"
)

// chartWindow is how far back the monthly series reaches.
const chartWindow = 12 // months

// monthLabelFormat renders a record's creation month, e.g. "Mar 24".
const monthLabelFormat = "Jan 06"

// StatsService computes the derived views over one owner's records.
type StatsService interface {
	// Summary returns per-status counts, zero-filled for absent statuses.
	Summary(ctx context.Context, ownerID string) (*StatsSummary, error)

	// MonthlySeries buckets the owner's applications from the trailing
	// twelve months into calendar-month counts, oldest first. Months with
	// no applications are omitted.
	MonthlySeries(ctx context.Context, ownerID string) ([]MonthCount, error)
}

type statsService struct {
	repo Repository
	now  func() time.Time
}

func NewStatsService(repo Repository) StatsService {
	return &statsService{repo: repo, now: time.Now}
}

func (s *statsService) Summary(ctx context.Context, ownerID string) (*StatsSummary, error) {
	counts, err := s.repo.CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}

	return &StatsSummary{
		Pending:   counts[StatusPending],
		Interview: counts[StatusInterview],
		Declined:  counts[StatusDeclined],
	}, nil
}

func (s *statsService) MonthlySeries(ctx context.Context, ownerID string) ([]MonthCount, error) {
	since := s.now().AddDate(0, -chartWindow, 0)

	jobs, err := s.repo.ListSince(ctx, ownerID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart data: %w", err)
	}

	return foldMonthly(jobs), nil
}

// foldMonthly folds a creation-time-sorted record sequence into an ordered
// month series. The append-or-increment step relies on the input being
// sorted: same-month records arrive adjacent, so each label appears once.
func foldMonthly(jobs []Job) []MonthCount {
	var series []MonthCount
	for _, j := range jobs {
		label := j.CreatedAt.Format(monthLabelFormat)
		if n := len(series); n > 0 && series[n-1].Date == label {
			series[n-1].Count++
			continue
		}
		series = append(series, MonthCount{Date: label, Count: 1})
	}
	return series
}
