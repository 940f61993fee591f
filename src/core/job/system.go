package job

import (
	"context"
)

type ComponentStatus string

const (
	StatusUp   ComponentStatus = "up"
	StatusDown ComponentStatus = "down"
)

// HealthStatus reports the health of the service and its store.
type HealthStatus struct {
	Status     string `json:"status"`
	Components struct {
		Database ComponentStatus `json:"database"`
	} `json:"components"`
}

// SystemService exposes operational checks.
type SystemService interface {
	CheckHealth(ctx context.Context) *HealthStatus
}

type systemService struct {
	repo Repository
}

func NewSystemService(repo Repository) SystemService {
	return &systemService{repo: repo}
}

func (s *systemService) CheckHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{Status: "healthy"}
	status.Components.Database = StatusUp

	if err := s.repo.Ping(ctx); err != nil {
		status.Status = "unhealthy"
		status.Components.Database = StatusDown
	}

	return status
}
