package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"AnonHire-backend/internal/model"
)

// MemoryStore is an in-memory ApplicantStore with the same contract as
// GormStore. Handler tests run against it so the disclosure rules can be
// exercised without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]model.Applicant // keyed by AnonymousID
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]model.Applicant)}
}

// Create inserts the record, enforcing the same uniqueness rules the
// database indexes enforce for GormStore.
func (s *MemoryStore) Create(_ context.Context, applicant *model.Applicant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.records[applicant.AnonymousID]; taken {
		return ErrIDCollision
	}
	// Email is already lowercase-trimmed by validation; the pair is compared
	// exactly, matching the database's compound unique index.
	for _, existing := range s.records {
		if existing.Email == applicant.Email && existing.Position == applicant.Position {
			return ErrDuplicate
		}
	}

	s.records[applicant.AnonymousID] = *applicant
	return nil
}

// ListAnonymized filters, sorts and paginates entirely in memory.
func (s *MemoryStore) ListAnonymized(_ context.Context, filter Filter, page, limit int) ([]model.AnonymizedApplicant, int64, error) {
	page, limit = NormalizePaging(page, limit)

	s.mu.RLock()
	matched := make([]model.Applicant, 0, len(s.records))
	for _, record := range s.records {
		if matches(record, filter) {
			matched = append(matched, record)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].SubmittedAt.Equal(matched[j].SubmittedAt) {
			return matched[i].SubmittedAt.After(matched[j].SubmittedAt)
		}
		return matched[i].AnonymousID < matched[j].AnonymousID
	})

	total := int64(len(matched))
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	views := make([]model.AnonymizedApplicant, 0, end-start)
	for i := start; i < end; i++ {
		views = append(views, matched[i].Anonymized())
	}
	return views, total, nil
}

func matches(record model.Applicant, filter Filter) bool {
	if filter.Position != "" &&
		!strings.Contains(strings.ToLower(record.Position), strings.ToLower(filter.Position)) {
		return false
	}
	if filter.ExperienceMin != nil && record.Experience < *filter.ExperienceMin {
		return false
	}
	if filter.ExperienceMax != nil && record.Experience > *filter.ExperienceMax {
		return false
	}
	if len(filter.Skills) == 0 {
		return true
	}
	for _, term := range filter.Skills {
		lowered := strings.ToLower(term)
		for _, skill := range record.Skills {
			if strings.Contains(strings.ToLower(skill), lowered) {
				return true
			}
		}
	}
	return false
}

// GetContact looks up one record by exact identifier.
func (s *MemoryStore) GetContact(_ context.Context, anonymousID string) (*model.ContactInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[anonymousID]
	if !ok {
		return nil, ErrNotFound
	}
	contact := record.Contact()
	return &contact, nil
}

// UpdateStatus mutates the status of one record.
func (s *MemoryStore) UpdateStatus(_ context.Context, anonymousID, status string) (*model.StatusUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[anonymousID]
	if !ok {
		return nil, ErrNotFound
	}
	record.Status = status
	s.records[anonymousID] = record
	return &model.StatusUpdate{AnonymousID: anonymousID, Status: status}, nil
}

// Stats aggregates the in-memory pool.
func (s *MemoryStore) Stats(_ context.Context) (*model.IntakeStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &model.IntakeStats{
		TotalApplications:      int64(len(s.records)),
		ApplicationsByStatus:   emptyStatusCounts(),
		ApplicationsByPosition: []model.PositionCount{},
	}

	positionCounts := make(map[string]int64)
	for _, record := range s.records {
		stats.ApplicationsByStatus[record.Status]++
		positionCounts[record.Position]++
	}

	for position, count := range positionCounts {
		stats.ApplicationsByPosition = append(stats.ApplicationsByPosition, model.PositionCount{
			Position: position,
			Count:    count,
		})
	}
	sort.Slice(stats.ApplicationsByPosition, func(i, j int) bool {
		a, b := stats.ApplicationsByPosition[i], stats.ApplicationsByPosition[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Position < b.Position
	})
	if len(stats.ApplicationsByPosition) > 10 {
		stats.ApplicationsByPosition = stats.ApplicationsByPosition[:10]
	}

	return stats, nil
}
