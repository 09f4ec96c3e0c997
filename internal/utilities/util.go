// Package utilities contain utility code that use across the package
package utilities

import "AnonHire-backend/internal/model"

// ErrorResponse is the envelope for every client-facing failure.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// CreatedResponse is returned after a successful submission. It carries the
// anonymous identifier and nothing else about the record.
type CreatedResponse struct {
	Success     bool   `json:"success"`
	AnonymousID string `json:"anonymousId"`
	Message     string `json:"message"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination derives the page metadata from normalized paging values and
// the total match count.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ListResponse is the envelope of the anonymized list endpoint.
type ListResponse struct {
	Success    bool                        `json:"success"`
	Data       []model.AnonymizedApplicant `json:"data"`
	Pagination Pagination                  `json:"pagination"`
}

// ContactResponse is the envelope of the reveal endpoint.
type ContactResponse struct {
	Success bool              `json:"success"`
	Data    model.ContactInfo `json:"data"`
}

// StatusResponse is the envelope of the status update endpoint.
type StatusResponse struct {
	Success bool               `json:"success"`
	Data    model.StatusUpdate `json:"data"`
	Message string             `json:"message"`
}

// StatsResponse is the envelope of the stats endpoint.
type StatsResponse struct {
	Success bool              `json:"success"`
	Data    model.IntakeStats `json:"data"`
}
