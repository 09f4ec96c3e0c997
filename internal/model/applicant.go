package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	// StatusPending indicates that the application has not been looked at yet
	StatusPending = "pending"
	// StatusReviewed indicates that a reviewer has read the anonymized profile
	StatusReviewed = "reviewed"
	// StatusContacted indicates that the applicant's contact info has been used
	StatusContacted = "contacted"
	// StatusRejected indicates that the application has been rejected
	StatusRejected = "rejected"
)

// ValidStatuses lists every status value accepted by the status update endpoint.
var ValidStatuses = []string{StatusPending, StatusReviewed, StatusContacted, StatusRejected}

// IsValidStatus reports whether s is one of the four recognized status values.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Applicant represents one submitted job application. The identity fields
// (Name, Email, Phone) and the professional fields never leave the database
// in the same response: reviewers see AnonymizedApplicant, the reveal
// endpoint sees ContactInfo, and AnonymousID is the only key between them.
type Applicant struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"-"`

	// AnonymousID is uppercase and unique, see the anonid package.
	AnonymousID string `gorm:"type:text;not null;uniqueIndex:idx_applicants_anonymous_id" json:"anonymousId"`

	Name  string `gorm:"type:text;not null" json:"name"`
	Email string `gorm:"type:text;not null;uniqueIndex:idx_applicants_email_position" json:"email"`
	Phone string `gorm:"type:text;not null" json:"phone"`

	Position   string         `gorm:"type:text;not null;uniqueIndex:idx_applicants_email_position" json:"position"`
	Experience float64        `gorm:"not null" json:"experience"`
	Skills     pq.StringArray `gorm:"type:text[];not null" json:"skills"`
	Education  string         `gorm:"type:text;not null" json:"education"`

	SubmittedAt time.Time `gorm:"type:timestamptz;not null" json:"submittedAt"`
	Status      string    `gorm:"type:text;not null" json:"status"`
}

// AnonymizedApplicant is the reviewer-facing projection of an Applicant.
// It must never carry name, email or phone.
type AnonymizedApplicant struct {
	AnonymousID string    `json:"anonymousId"`
	Position    string    `json:"position"`
	Experience  float64   `json:"experience"`
	Skills      []string  `json:"skills"`
	Education   string    `json:"education"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
}

// ContactInfo is the reveal projection of an Applicant. It must never carry
// any professional field, status or timestamp.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// StatusUpdate is the subset returned after a status mutation.
type StatusUpdate struct {
	AnonymousID string `json:"anonymousId"`
	Status      string `json:"status"`
}

// PositionCount is one entry of the per-position aggregate, ordered by count.
type PositionCount struct {
	Position string `json:"position"`
	Count    int64  `json:"count"`
}

// IntakeStats aggregates the whole applicant pool.
type IntakeStats struct {
	TotalApplications      int64            `json:"totalApplications"`
	ApplicationsByStatus   map[string]int64 `json:"applicationsByStatus"`
	ApplicationsByPosition []PositionCount  `json:"applicationsByPosition"`
}

// Anonymized converts a full record to its reviewer-facing projection.
func (a *Applicant) Anonymized() AnonymizedApplicant {
	return AnonymizedApplicant{
		AnonymousID: a.AnonymousID,
		Position:    a.Position,
		Experience:  a.Experience,
		Skills:      append([]string{}, a.Skills...),
		Education:   a.Education,
		SubmittedAt: a.SubmittedAt,
		Status:      a.Status,
	}
}

// Contact converts a full record to its reveal projection.
func (a *Applicant) Contact() ContactInfo {
	return ContactInfo{
		Name:  a.Name,
		Email: a.Email,
		Phone: a.Phone,
	}
}
