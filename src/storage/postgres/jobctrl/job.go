package jobctrl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	corejob "jobtrack/src/core/job"
)

// Job is the persistence model for the jobs table.
type Job struct {
	ID        string `gorm:"primaryKey"`
	OwnerID   string `gorm:"not null;index"`
	Position  string `gorm:"not null"`
	Company   string `gorm:"not null"`
	Location  string
	Status    string `gorm:"not null"`
	Mode      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Job) TableName() string {
	return "jobs"
}

// columns whitelists the predicate fields the adapter will translate.
// Anything else is a programming error surfaced as a failed query, not
// interpolated into SQL.
var columns = map[corejob.Field]string{
	corejob.FieldPosition:  "position",
	corejob.FieldCompany:   "company",
	corejob.FieldStatus:    "status",
	corejob.FieldCreatedAt: "created_at",
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AutoMigrate creates or updates the jobs table.
func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&Job{})
}

func (r *Repository) Create(ctx context.Context, j *corejob.Job) error {
	row := toRow(j)

	result := r.db.WithContext(ctx).Create(&row)
	if result.Error != nil {
		return fmt.Errorf("failed to create job: %w", result.Error)
	}

	j.CreatedAt = row.CreatedAt
	j.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *Repository) FindByID(ctx context.Context, ownerID, id string) (*corejob.Job, error) {
	row, err := r.findOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return toDomain(row), nil
}

func (r *Repository) Update(ctx context.Context, ownerID, id string, fields corejob.UpdateFields) (*corejob.Job, error) {
	row, err := r.findOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if fields.Position != nil {
		values["position"] = *fields.Position
	}
	if fields.Company != nil {
		values["company"] = *fields.Company
	}
	if fields.Location != nil {
		values["location"] = *fields.Location
	}
	if fields.Status != nil {
		values["status"] = string(*fields.Status)
	}
	if fields.Mode != nil {
		values["mode"] = string(*fields.Mode)
	}

	if len(values) == 0 {
		return toDomain(row), nil
	}

	result := r.db.WithContext(ctx).Model(row).Updates(values)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update job: %w", result.Error)
	}

	return toDomain(row), nil
}

func (r *Repository) Delete(ctx context.Context, ownerID, id string) (*corejob.Job, error) {
	row, err := r.findOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Delete(row)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete job: %w", result.Error)
	}

	return toDomain(row), nil
}

func (r *Repository) List(ctx context.Context, ownerID string, pred corejob.Predicate, offset, limit int) ([]corejob.Job, int64, error) {
	query := r.db.WithContext(ctx).Model(&Job{}).Where("owner_id = ?", ownerID)

	if pred != nil {
		clause, args, err := buildClause(pred)
		if err != nil {
			return nil, 0, err
		}
		query = query.Where(clause, args...)
	}

	var count int64
	if result := query.Count(&count); result.Error != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", result.Error)
	}

	var rows []Job
	result := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", result.Error)
	}

	jobs := make([]corejob.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, *toDomain(&row))
	}

	return jobs, count, nil
}

func (r *Repository) CountByStatus(ctx context.Context, ownerID string) (map[corejob.Status]int64, error) {
	var groups []struct {
		Status string
		Count  int64
	}

	result := r.db.WithContext(ctx).Model(&Job{}).
		Select("status, count(*) as count").
		Where("owner_id = ?", ownerID).
		Group("status").
		Scan(&groups)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to group jobs by status: %w", result.Error)
	}

	counts := make(map[corejob.Status]int64, len(groups))
	for _, g := range groups {
		counts[corejob.Status(g.Status)] = g.Count
	}

	return counts, nil
}

func (r *Repository) ListSince(ctx context.Context, ownerID string, since time.Time) ([]corejob.Job, error) {
	var rows []Job
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND created_at >= ?", ownerID, since).
		Order("created_at ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list jobs since %s: %w", since.Format(time.RFC3339), result.Error)
	}

	jobs := make([]corejob.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, *toDomain(&row))
	}

	return jobs, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying *sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// findOwned loads a record by id scoped to the owner. A record that exists
// but belongs to someone else reports ErrNotFound just like a missing one.
func (r *Repository) findOwned(ctx context.Context, ownerID, id string) (*Job, error) {
	var row Job
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, corejob.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", result.Error)
	}
	return &row, nil
}

// buildClause translates a predicate value into a SQL fragment with
// placeholder args. Contains matches case-insensitively via LOWER/LIKE,
// which behaves the same on postgres and the sqlite used in tests.
func buildClause(pred corejob.Predicate) (string, []interface{}, error) {
	switch p := pred.(type) {
	case corejob.Equals:
		col, err := column(p.Field)
		if err != nil {
			return "", nil, err
		}
		return col + " = ?", []interface{}{p.Value}, nil

	case corejob.Contains:
		col, err := column(p.Field)
		if err != nil {
			return "", nil, err
		}
		pattern := "%" + strings.ToLower(p.Value) + "%"
		return "LOWER(" + col + ") LIKE ?", []interface{}{pattern}, nil

	case corejob.Since:
		col, err := column(p.Field)
		if err != nil {
			return "", nil, err
		}
		return col + " >= ?", []interface{}{p.Value}, nil

	case corejob.And:
		return joinClauses(p, " AND ")

	case corejob.Or:
		return joinClauses(p, " OR ")

	default:
		return "", nil, fmt.Errorf("unsupported predicate type %T", pred)
	}
}

func joinClauses(preds []corejob.Predicate, sep string) (string, []interface{}, error) {
	if len(preds) == 0 {
		return "", nil, fmt.Errorf("empty composite predicate")
	}

	parts := make([]string, 0, len(preds))
	var args []interface{}
	for _, p := range preds {
		clause, clauseArgs, err := buildClause(p)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, "("+clause+")")
		args = append(args, clauseArgs...)
	}

	return strings.Join(parts, sep), args, nil
}

func column(f corejob.Field) (string, error) {
	col, ok := columns[f]
	if !ok {
		return "", fmt.Errorf("unknown predicate field %q", f)
	}
	return col, nil
}

func toRow(j *corejob.Job) Job {
	return Job{
		ID:        j.ID,
		OwnerID:   j.OwnerID,
		Position:  j.Position,
		Company:   j.Company,
		Location:  j.Location,
		Status:    string(j.Status),
		Mode:      string(j.Mode),
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

func toDomain(row *Job) *corejob.Job {
	return &corejob.Job{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Position:  row.Position,
		Company:   row.Company,
		Location:  row.Location,
		Status:    corejob.Status(row.Status),
		Mode:      corejob.Mode(row.Mode),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
