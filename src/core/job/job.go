package job

import (
	"time"
)

// Status defines the application status of a tracked job
type Status string

const (
	StatusPending   Status = "pending"
	StatusInterview Status = "interview"
	StatusDeclined  Status = "declined"
)

// Statuses lists every valid status, in the order stats are reported.
var Statuses = []Status{StatusPending, StatusInterview, StatusDeclined}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInterview, StatusDeclined:
		return true
	}
	return false
}

// Mode defines the employment mode of a tracked job
type Mode string

const (
	ModeFullTime   Mode = "full-time"
	ModePartTime   Mode = "part-time"
	ModeInternship Mode = "internship"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeFullTime, ModePartTime, ModeInternship:
		return true
	}
	return false
}

// Job represents a single tracked job application. OwnerID is the opaque
// identifier issued by the identity provider; every read and write is scoped
// by it.
type Job struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"-"`
	Position  string    `json:"position"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	Status    Status    `json:"status"`
	Mode      Mode      `json:"mode"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateFields carries a partial update. Nil fields are left untouched.
// OwnerID, ID and CreatedAt are never updatable.
type UpdateFields struct {
	Position *string
	Company  *string
	Location *string
	Status   *Status
	Mode     *Mode
}

// StatsSummary holds per-status counts for one owner, zero-filled so that
// every status is always present.
type StatsSummary struct {
	Pending   int64 `json:"pending"`
	Interview int64 `json:"interview"`
	Declined  int64 `json:"declined"`
}

// MonthCount is one bucket of the monthly application series.
type MonthCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
