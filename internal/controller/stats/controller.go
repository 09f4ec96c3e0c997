// Package stats provides the HTTP handler for intake aggregate counts.
package stats

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"AnonHire-backend/internal/store"
	"AnonHire-backend/internal/utilities"
)

// StatsController handles the aggregate counts endpoint
type StatsController struct {
	Store store.ApplicantStore
}

// NewStatsController creates a new instance of StatsController with the provided store.
func NewStatsController(s store.ApplicantStore) *StatsController {
	return &StatsController{Store: s}
}

// StatsHandler returns pool-wide aggregate counts.
// @Summary Intake statistics
// @Description Total applications, counts per status and the ten most applied-for positions
// @Tags Stats
// @Produce json
// @Success 200 {object} utilities.StatsResponse "Aggregate counts"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /stats [get]
func (sc *StatsController) StatsHandler(c *gin.Context) {
	result, err := sc.Store.Stats(c.Request.Context())
	if err != nil {
		log.Printf("failed to aggregate stats: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to fetch statistics",
		})
		return
	}

	c.JSON(http.StatusOK, utilities.StatsResponse{Success: true, Data: *result})
}
