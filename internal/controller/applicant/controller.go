// Package applicant provides HTTP handlers for applicant intake operations.
package applicant

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"AnonHire-backend/internal/anonid"
	"AnonHire-backend/internal/model"
	"AnonHire-backend/internal/store"
	"AnonHire-backend/internal/utilities"
	"AnonHire-backend/internal/validation"
)

// Fresh identifiers are regenerated this many times before a collision
// becomes a server error.
const maxIDAttempts = 3

// ApplicantController handles applicant intake related endpoints
type ApplicantController struct {
	Store store.ApplicantStore
}

// NewApplicantController creates a new instance of ApplicantController with the provided store.
func NewApplicantController(s store.ApplicantStore) *ApplicantController {
	return &ApplicantController{Store: s}
}

// SubmitHandler handles the creation of a new applicant record.
// @Summary Submit a job application
// @Description Validates the submission, issues an anonymous identifier and stores the record
// @Tags Applicant
// @Accept json
// @Produce json
// @Param application body validation.SubmissionInput true "Application information"
// @Success 201 {object} utilities.CreatedResponse "Application accepted"
// @Failure 400 {object} utilities.ErrorResponse "Validation failure"
// @Failure 409 {object} utilities.ErrorResponse "Already applied for this position with this email"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /applicants [post]
func (a *ApplicantController) SubmitHandler(c *gin.Context) {
	input := validation.SubmissionInput{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	submission, fieldErr := validation.Validate(input)
	if fieldErr != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: fieldErr.Error()})
		return
	}

	applicant := model.Applicant{
		ID:          uuid.New(),
		Name:        submission.Name,
		Email:       submission.Email,
		Phone:       submission.Phone,
		Position:    submission.Position,
		Experience:  submission.Experience,
		Skills:      pq.StringArray(submission.Skills),
		Education:   submission.Education,
		SubmittedAt: time.Now().UTC(),
		Status:      model.StatusPending,
	}

	// The store's unique indexes are the authoritative duplicate check; a
	// collision on the generated identifier is retried with a fresh one.
	var err error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		applicant.AnonymousID = anonid.Generate()
		err = a.Store.Create(c.Request.Context(), &applicant)
		if !errors.Is(err, store.ErrIDCollision) {
			break
		}
	}
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{
				Error: "You have already applied for this position with this email",
			})
			return
		}
		log.Printf("failed to create applicant: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to submit application",
		})
		return
	}

	c.JSON(http.StatusCreated, utilities.CreatedResponse{
		Success:     true,
		AnonymousID: applicant.AnonymousID,
		Message:     "Application submitted successfully",
	})
}

// ListHandler fetches anonymized applicant views that match the query.
// @Summary List anonymized applications
// @Description Identity fields never appear in this listing under any filter combination
// @Tags Applicant
// @Produce json
// @Param position query string false "Position, substring matching and case insensitive"
// @Param minExperience query number false "Minimum years of experience, inclusive"
// @Param maxExperience query number false "Maximum years of experience, inclusive"
// @Param skills query string false "Comma separated skill terms, any-match, substring and case insensitive"
// @Param page query integer false "Page number, at least 1, defaults to 1"
// @Param limit query integer false "Page size, clamped to [1,50], defaults to 10"
// @Success 200 {object} utilities.ListResponse "One page of anonymized views"
// @Failure 400 {object} utilities.ErrorResponse "Malformed experience bound"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /applicants [get]
func (a *ApplicantController) ListHandler(c *gin.Context) {
	filter := store.Filter{Position: strings.TrimSpace(c.Query("position"))}

	if raw := c.Query("minExperience"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "minExperience must be a number"})
			return
		}
		filter.ExperienceMin = &parsed
	}
	if raw := c.Query("maxExperience"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "maxExperience must be a number"})
			return
		}
		filter.ExperienceMax = &parsed
	}
	if raw := c.Query("skills"); raw != "" {
		for _, term := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(term); trimmed != "" {
				filter.Skills = append(filter.Skills, trimmed)
			}
		}
	}

	// Unparseable paging values fall back to the defaults
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultLimit)))
	page, limit = store.NormalizePaging(page, limit)

	items, total, err := a.Store.ListAnonymized(c.Request.Context(), filter, page, limit)
	if err != nil {
		log.Printf("failed to list applicants: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to fetch applications",
		})
		return
	}

	c.JSON(http.StatusOK, utilities.ListResponse{
		Success:    true,
		Data:       items,
		Pagination: utilities.NewPagination(page, limit, total),
	})
}

// ContactHandler reveals the contact projection of a single record.
// @Summary Reveal contact information
// @Description Single-record lookup by exact anonymous identifier, no pattern matching
// @Tags Applicant
// @Produce json
// @Param anonymousId path string true "Anonymous identifier from the listing"
// @Success 200 {object} utilities.ContactResponse "Contact projection only"
// @Failure 404 {object} utilities.ErrorResponse "Unknown identifier"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /applicants/{anonymousId} [get]
func (a *ApplicantController) ContactHandler(c *gin.Context) {
	id := anonid.Normalize(c.Param("anonymousId"))

	contact, err := a.Store.GetContact(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Applicant not found"})
			return
		}
		log.Printf("failed to reveal contact for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to fetch contact information",
		})
		return
	}

	c.JSON(http.StatusOK, utilities.ContactResponse{Success: true, Data: *contact})
}

type statusBody struct {
	Status string `json:"status"`
}

// UpdateStatusHandler mutates the review status of a single record.
// @Summary Update application status
// @Description Any of the four statuses is reachable from any other
// @Tags Applicant
// @Accept json
// @Produce json
// @Param anonymousId path string true "Anonymous identifier"
// @Param status body statusBody true "One of pending, reviewed, contacted, rejected"
// @Success 200 {object} utilities.StatusResponse "Identifier and new status"
// @Failure 400 {object} utilities.ErrorResponse "Unknown status value"
// @Failure 404 {object} utilities.ErrorResponse "Unknown identifier"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /applicants/{anonymousId}/status [patch]
func (a *ApplicantController) UpdateStatusHandler(c *gin.Context) {
	id := anonid.Normalize(c.Param("anonymousId"))

	body := statusBody{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if !model.IsValidStatus(body.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Status must be one of: %s", strings.Join(model.ValidStatuses, ", ")),
		})
		return
	}

	updated, err := a.Store.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Applicant not found"})
			return
		}
		log.Printf("failed to update status for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to update status",
		})
		return
	}

	c.JSON(http.StatusOK, utilities.StatusResponse{
		Success: true,
		Data:    *updated,
		Message: "Status updated successfully",
	})
}
