package store

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AnonHire-backend/internal/anonid"
	"AnonHire-backend/internal/database"
	"AnonHire-backend/internal/model"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func newApplicant(email, position string, experience float64, skills ...string) *model.Applicant {
	return &model.Applicant{
		ID:          uuid.New(),
		AnonymousID: anonid.Generate(),
		Name:        "Test Person",
		Email:       email,
		Phone:       "+12025550100",
		Position:    position,
		Experience:  experience,
		Skills:      pq.StringArray(skills),
		Education:   "BSc",
		SubmittedAt: time.Now().UTC(),
		Status:      model.StatusPending,
	}
}

func TestGormStore_CreateAndDuplicate(t *testing.T) {
	s := NewGormStore(testDB)
	ctx := context.Background()

	first := newApplicant("dup-check@example.com", "Release Manager", 5, "Go")
	require.NoError(t, s.Create(ctx, first))

	// Same (email, position), everything else different
	second := newApplicant("dup-check@example.com", "Release Manager", 1, "SQL")
	second.Name = "Someone Else"
	assert.ErrorIs(t, s.Create(ctx, second), ErrDuplicate)

	// Same email, different position is allowed
	third := newApplicant("dup-check@example.com", "QA Engineer", 2, "Go")
	assert.NoError(t, s.Create(ctx, third))
}

func TestGormStore_CreateIDCollision(t *testing.T) {
	s := NewGormStore(testDB)
	ctx := context.Background()

	first := newApplicant("collision-a@example.com", "Site Reliability", 3, "Go")
	require.NoError(t, s.Create(ctx, first))

	second := newApplicant("collision-b@example.com", "Site Reliability", 3, "Go")
	second.AnonymousID = first.AnonymousID
	assert.ErrorIs(t, s.Create(ctx, second), ErrIDCollision)
}

func TestGormStore_ListFilters(t *testing.T) {
	s := NewGormStore(testDB)
	ctx := context.Background()

	// Records with markers no other test uses
	a := newApplicant("filter-a@example.com", "Quantum Cartographer", 12, "Go", "Xenolinguistics")
	b := newApplicant("filter-b@example.com", "Quantum Cartographer", 3, "SQL")
	require.NoError(t, s.Create(ctx, a))
	require.NoError(t, s.Create(ctx, b))

	// Case-insensitive position substring
	items, total, err := s.ListAnonymized(ctx, Filter{Position: "quantum carto"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)

	// Inclusive experience bounds
	min, max := 10.0, 12.0
	items, total, err = s.ListAnonymized(ctx, Filter{Position: "Quantum Cartographer", ExperienceMin: &min, ExperienceMax: &max}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, a.AnonymousID, items[0].AnonymousID)

	// Skills substring, case-insensitive
	items, total, err = s.ListAnonymized(ctx, Filter{Skills: []string{"xenoling"}}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, a.AnonymousID, items[0].AnonymousID)

	// OR semantics across skill terms
	_, total, err = s.ListAnonymized(ctx, Filter{Position: "Quantum Cartographer", Skills: []string{"xenoling", "sql"}}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestGormStore_ListOrderingAndPaging(t *testing.T) {
	s := NewGormStore(testDB)
	ctx := context.Background()

	base := time.Now().UTC()
	ids := make([]string, 3)
	for i := 0; i < 3; i++ {
		rec := newApplicant("paging-"+string(rune('a'+i))+"@example.com", "Chrono Auditor", float64(i))
		rec.SubmittedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.Create(ctx, rec))
		ids[i] = rec.AnonymousID
	}

	// Newest first
	items, total, err := s.ListAnonymized(ctx, Filter{Position: "Chrono Auditor"}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	assert.Equal(t, ids[2], items[0].AnonymousID)
	assert.Equal(t, ids[1], items[1].AnonymousID)

	// Second page carries the remainder; page 0 clamps to page 1
	items, _, err = s.ListAnonymized(ctx, Filter{Position: "Chrono Auditor"}, 2, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ids[0], items[0].AnonymousID)

	items, _, err = s.ListAnonymized(ctx, Filter{Position: "Chrono Auditor"}, 0, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, ids[2], items[0].AnonymousID)

	// Past the last page: empty items, total unchanged
	items, total, err = s.ListAnonymized(ctx, Filter{Position: "Chrono Auditor"}, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(3), total)
}

func TestGormStore_ListNeverLeaksIdentity(t *testing.T) {
	s := NewGormStore(testDB)

	items, _, err := s.ListAnonymized(context.Background(), Filter{}, 1, 50)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	raw, err := json.Marshal(items)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, item := range decoded {
		assert.NotContains(t, item, "name")
		assert.NotContains(t, item, "email")
		assert.NotContains(t, item, "phone")
		assert.Contains(t, item, "anonymousId")
	}
}

func TestGormStore_GetContact(t *testing.T) {
	s := NewGormStore(testDB)
	ctx := context.Background()

	contact, err := s.GetContact(ctx, database.TestApplicantBackend.AnonymousID)
	require.NoError(t, err)
	assert.Equal(t, database.TestApplicantBackend.Name, contact.Name)
	assert.Equal(t, database.TestApplicantBackend.Email, contact.Email)
	assert.Equal(t, database.TestApplicantBackend.Phone, contact.Phone)

	// Reveal is idempotent
	again, err := s.GetContact(ctx, database.TestApplicantBackend.AnonymousID)
	require.NoError(t, err)
	assert.Equal(t, contact, again)

	// Contact view carries nothing but identity fields
	raw, err := json.Marshal(contact)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, forbidden := range []string{"position", "experience", "skills", "education", "status", "submittedAt", "anonymousId"} {
		assert.NotContains(t, decoded, forbidden)
	}

	_, err = s.GetContact(ctx, "APP-NOPE-00000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_UpdateStatus(t *testing.T) {
	s := NewGormStore(testDB)
	ctx := context.Background()

	rec := newApplicant("status-update@example.com", "Archivist", 1, "Go")
	require.NoError(t, s.Create(ctx, rec))

	updated, err := s.UpdateStatus(ctx, rec.AnonymousID, model.StatusContacted)
	require.NoError(t, err)
	assert.Equal(t, rec.AnonymousID, updated.AnonymousID)
	assert.Equal(t, model.StatusContacted, updated.Status)

	var stored model.Applicant
	require.NoError(t, testDB.Where("anonymous_id = ?", rec.AnonymousID).First(&stored).Error)
	assert.Equal(t, model.StatusContacted, stored.Status)

	_, err = s.UpdateStatus(ctx, "APP-NOPE-00000000", model.StatusReviewed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_Stats(t *testing.T) {
	s := NewGormStore(testDB)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, stats.TotalApplications, int64(4))
	for _, status := range model.ValidStatuses {
		assert.Contains(t, stats.ApplicationsByStatus, status)
	}

	assert.LessOrEqual(t, len(stats.ApplicationsByPosition), 10)
	for i := 1; i < len(stats.ApplicationsByPosition); i++ {
		assert.GreaterOrEqual(t,
			stats.ApplicationsByPosition[i-1].Count,
			stats.ApplicationsByPosition[i].Count,
			"positions should be ordered by count descending")
	}
}
