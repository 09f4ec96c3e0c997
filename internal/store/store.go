// Package store defines the applicant persistence contract and its
// implementations. The contract is the disclosure boundary: list operations
// only ever return the anonymized projection, and the contact projection is
// reachable solely by exact anonymous identifier.
package store

import (
	"context"
	"errors"

	"AnonHire-backend/internal/model"
)

var (
	// ErrDuplicate signals that an applicant already submitted for the same
	// position with the same email.
	ErrDuplicate = errors.New("applicant already exists for this email and position")
	// ErrIDCollision signals that a freshly generated anonymous identifier is
	// already taken. Callers regenerate and retry.
	ErrIDCollision = errors.New("anonymous identifier already taken")
	// ErrNotFound signals that no record matches the given anonymous identifier.
	ErrNotFound = errors.New("applicant not found")
)

const (
	// DefaultLimit is the page size used when the caller does not provide one.
	DefaultLimit = 10
	// MaxLimit caps the page size regardless of what the caller asks for.
	MaxLimit = 50
)

// Filter narrows the anonymized list. Zero values mean "no constraint".
type Filter struct {
	// Position is matched case-insensitively as a substring.
	Position string
	// ExperienceMin and ExperienceMax are inclusive bounds.
	ExperienceMin *float64
	ExperienceMax *float64
	// Skills terms are OR'd; each term matches case-insensitively as a
	// substring of any skill entry.
	Skills []string
}

// ApplicantStore is the persistence contract for applicant records.
type ApplicantStore interface {
	// Create persists a full applicant record atomically. It returns
	// ErrDuplicate when (email, position) is already taken and ErrIDCollision
	// when the anonymous identifier is already taken.
	Create(ctx context.Context, applicant *model.Applicant) error

	// ListAnonymized returns one page of anonymized views matching the filter,
	// ordered by submission time descending, plus the total match count.
	ListAnonymized(ctx context.Context, filter Filter, page, limit int) ([]model.AnonymizedApplicant, int64, error)

	// GetContact returns the contact projection for an exact anonymous
	// identifier, or ErrNotFound.
	GetContact(ctx context.Context, anonymousID string) (*model.ContactInfo, error)

	// UpdateStatus sets the status of the record with the given identifier and
	// returns the id+status subset, or ErrNotFound. Status validity is the
	// caller's responsibility.
	UpdateStatus(ctx context.Context, anonymousID, status string) (*model.StatusUpdate, error)

	// Stats aggregates the whole pool: total count, per-status counts and the
	// top ten positions by count.
	Stats(ctx context.Context) (*model.IntakeStats, error)
}

// NormalizePaging clamps page and limit to the contract bounds: page >= 1
// (default 1), limit in [1, MaxLimit] (default DefaultLimit).
func NormalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// emptyStatusCounts returns a status->count map with all four statuses
// zero-filled so responses always carry every key.
func emptyStatusCounts() map[string]int64 {
	counts := make(map[string]int64, len(model.ValidStatuses))
	for _, s := range model.ValidStatuses {
		counts[s] = 0
	}
	return counts
}
