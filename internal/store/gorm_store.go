package store

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"AnonHire-backend/internal/database"
	"AnonHire-backend/internal/model"
)

// Postgres SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// GormStore is the PostgreSQL-backed ApplicantStore.
type GormStore struct {
	DB *database.DBinstanceStruct
}

// NewGormStore creates a GormStore on top of the given database handle.
func NewGormStore(db *database.DBinstanceStruct) *GormStore {
	return &GormStore{DB: db}
}

// Create inserts the record and maps unique index violations to the
// sentinel errors of the contract. The pre-insert duplicate check handlers
// may do is advisory only; the constraint here is authoritative.
func (s *GormStore) Create(ctx context.Context, applicant *model.Applicant) error {
	if err := s.DB.WithContext(ctx).Create(applicant).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "anonymous_id") {
				return ErrIDCollision
			}
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// ListAnonymized queries one page of matching records ordered by submission
// time descending and projects them to the anonymized view.
func (s *GormStore) ListAnonymized(ctx context.Context, filter Filter, page, limit int) ([]model.AnonymizedApplicant, int64, error) {
	page, limit = NormalizePaging(page, limit)

	query := func() *gorm.DB {
		return applyFilter(s.DB.WithContext(ctx).Model(&model.Applicant{}), filter)
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.Applicant
	if err := query().
		Order("submitted_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	views := make([]model.AnonymizedApplicant, 0, len(records))
	for i := range records {
		views = append(views, records[i].Anonymized())
	}
	return views, total, nil
}

func applyFilter(tx *gorm.DB, filter Filter) *gorm.DB {
	if filter.Position != "" {
		tx = tx.Where("position ILIKE ?", "%"+filter.Position+"%")
	}
	if filter.ExperienceMin != nil {
		tx = tx.Where("experience >= ?", *filter.ExperienceMin)
	}
	if filter.ExperienceMax != nil {
		tx = tx.Where("experience <= ?", *filter.ExperienceMax)
	}
	if len(filter.Skills) > 0 {
		clauses := make([]string, 0, len(filter.Skills))
		args := make([]interface{}, 0, len(filter.Skills))
		for _, term := range filter.Skills {
			clauses = append(clauses, "EXISTS (SELECT 1 FROM unnest(skills) AS skill WHERE skill ILIKE ?)")
			args = append(args, "%"+term+"%")
		}
		tx = tx.Where(strings.Join(clauses, " OR "), args...)
	}
	return tx
}

// GetContact returns only the identity fields for an exact identifier match.
func (s *GormStore) GetContact(ctx context.Context, anonymousID string) (*model.ContactInfo, error) {
	var record model.Applicant
	err := s.DB.WithContext(ctx).
		Where("anonymous_id = ?", anonymousID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	contact := record.Contact()
	return &contact, nil
}

// UpdateStatus mutates the status of one record and reports ErrNotFound when
// no row matched.
func (s *GormStore) UpdateStatus(ctx context.Context, anonymousID, status string) (*model.StatusUpdate, error) {
	result := s.DB.WithContext(ctx).
		Model(&model.Applicant{}).
		Where("anonymous_id = ?", anonymousID).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &model.StatusUpdate{AnonymousID: anonymousID, Status: status}, nil
}

// Stats aggregates status and position counts with GROUP BY queries.
func (s *GormStore) Stats(ctx context.Context) (*model.IntakeStats, error) {
	stats := &model.IntakeStats{
		ApplicationsByStatus:   emptyStatusCounts(),
		ApplicationsByPosition: []model.PositionCount{},
	}

	if err := s.DB.WithContext(ctx).
		Model(&model.Applicant{}).
		Count(&stats.TotalApplications).Error; err != nil {
		return nil, err
	}

	var statusRows []struct {
		Status string
		Count  int64
	}
	if err := s.DB.WithContext(ctx).
		Model(&model.Applicant{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		stats.ApplicationsByStatus[row.Status] = row.Count
	}

	if err := s.DB.WithContext(ctx).
		Model(&model.Applicant{}).
		Select("position, COUNT(*) AS count").
		Group("position").
		Order("count DESC, position ASC").
		Limit(10).
		Scan(&stats.ApplicationsByPosition).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
