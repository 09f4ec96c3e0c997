package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AnonHire-backend/internal/anonid"
	"AnonHire-backend/internal/model"
)

func memApplicant(email, position string, experience float64, skills ...string) *model.Applicant {
	return &model.Applicant{
		AnonymousID: anonid.Generate(),
		Name:        "Mem Person",
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

func TestNormalizePaging(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{1, 10, 1, 10},
		{0, 10, 1, 10},
		{-5, 0, 1, DefaultLimit},
		{3, 1000, 3, MaxLimit},
		{2, 1, 2, 1},
	}
	for _, tc := range cases {
		page, limit := NormalizePaging(tc.page, tc.limit)
		assert.Equal(t, tc.wantPage, page)
		assert.Equal(t, tc.wantLimit, limit)
	}
}

func TestMemoryStore_DuplicateRules(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, memApplicant("a@example.com", "Engineer", 3, "Go")))

	dup := memApplicant("a@example.com", "Engineer", 1, "SQL")
	assert.ErrorIs(t, s.Create(ctx, dup), ErrDuplicate)

	other := memApplicant("a@example.com", "Designer", 3, "Figma")
	assert.NoError(t, s.Create(ctx, other))

	colliding := memApplicant("b@example.com", "Engineer", 3, "Go")
	colliding.AnonymousID = other.AnonymousID
	assert.ErrorIs(t, s.Create(ctx, colliding), ErrIDCollision)
}

func TestMemoryStore_LimitClamp(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		rec := memApplicant(fmt.Sprintf("bulk%d@example.com", i), "Engineer", 1, "Go")
		rec.SubmittedAt = time.Now().UTC().Add(time.Duration(i) * time.Second)
		require.NoError(t, s.Create(ctx, rec))
	}

	items, total, err := s.ListAnonymized(ctx, Filter{}, 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(60), total)
	assert.Len(t, items, MaxLimit)

	// Past the end
	items, total, err = s.ListAnonymized(ctx, Filter{}, 3, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(60), total)
	assert.Empty(t, items)
}

func TestMemoryStore_FilterSemantics(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	golang := memApplicant("go@example.com", "Backend Engineer", 5, "Go", "PostgreSQL")
	react := memApplicant("js@example.com", "Frontend Developer", 2, "React")
	require.NoError(t, s.Create(ctx, golang))
	require.NoError(t, s.Create(ctx, react))

	_, total, err := s.ListAnonymized(ctx, Filter{Position: "ENGINEER"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	min := 5.0
	_, total, err = s.ListAnonymized(ctx, Filter{ExperienceMin: &min}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "minimum bound is inclusive")

	_, total, err = s.ListAnonymized(ctx, Filter{Skills: []string{"postgre", "react"}}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "skill terms are OR'd")

	_, total, err = s.ListAnonymized(ctx, Filter{Skills: []string{"haskell"}}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestMemoryStore_Ordering(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	base := time.Now().UTC()

	old := memApplicant("old@example.com", "Engineer", 1, "Go")
	old.SubmittedAt = base.Add(-time.Hour)
	fresh := memApplicant("fresh@example.com", "Engineer", 1, "Go")
	fresh.SubmittedAt = base
	require.NoError(t, s.Create(ctx, old))
	require.NoError(t, s.Create(ctx, fresh))

	items, _, err := s.ListAnonymized(ctx, Filter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, fresh.AnonymousID, items[0].AnonymousID)
	assert.Equal(t, old.AnonymousID, items[1].AnonymousID)
}

func TestMemoryStore_StatsTopTen(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	// 12 distinct positions, position-0 with the most applicants
	for p := 0; p < 12; p++ {
		for i := 0; i <= 12-p; i++ {
			rec := memApplicant(fmt.Sprintf("p%d-i%d@example.com", p, i), fmt.Sprintf("Position %02d", p), 1, "Go")
			require.NoError(t, s.Create(ctx, rec))
		}
	}

	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.Len(t, stats.ApplicationsByPosition, 10)
	assert.Equal(t, "Position 00", stats.ApplicationsByPosition[0].Position)
	for i := 1; i < len(stats.ApplicationsByPosition); i++ {
		assert.GreaterOrEqual(t,
			stats.ApplicationsByPosition[i-1].Count,
			stats.ApplicationsByPosition[i].Count)
	}

	assert.Equal(t, stats.TotalApplications, stats.ApplicationsByStatus[model.StatusPending])
}
