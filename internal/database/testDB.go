package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"AnonHire-backend/internal/anonid"
	m "AnonHire-backend/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context) error

// Exported seeded applicants, newest first by SubmittedAt.
var (
	TestApplicantBackend  m.Applicant
	TestApplicantFrontend m.Applicant
	TestApplicantData     m.Applicant
	TestApplicantOps      m.Applicant
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	// Seed sample applicants
	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample applicant records if the table is empty.
func seedTestData(db *DBinstanceStruct) error {
	var count int64
	if err := db.Model(&m.Applicant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return loadTestData(db)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)

	applicants := []m.Applicant{
		{
			ID:          uuid.New(),
			AnonymousID: anonid.Generate(),
			Name:        "Alice Nguyen",
			Email:       "alice@example.com",
			Phone:       "+66810000001",
			Position:    "Backend Engineer",
			Experience:  4,
			Skills:      pq.StringArray{"Go", "PostgreSQL", "Docker"},
			Education:   "BSc Computer Engineering",
			SubmittedAt: now,
			Status:      m.StatusPending,
		},
		{
			ID:          uuid.New(),
			AnonymousID: anonid.Generate(),
			Name:        "Bob Somsak",
			Email:       "bob@example.com",
			Phone:       "+66810000002",
			Position:    "Frontend Developer",
			Experience:  2,
			Skills:      pq.StringArray{"TypeScript", "React"},
			Education:   "BSc Software Engineering",
			SubmittedAt: now.Add(-1 * time.Hour),
			Status:      m.StatusReviewed,
		},
		{
			ID:          uuid.New(),
			AnonymousID: anonid.Generate(),
			Name:        "Carol Chen",
			Email:       "carol@example.com",
			Phone:       "+66810000003",
			Position:    "Data Analyst",
			Experience:  7.5,
			Skills:      pq.StringArray{"SQL", "Python", "Tableau"},
			Education:   "MSc Statistics",
			SubmittedAt: now.Add(-2 * time.Hour),
			Status:      m.StatusContacted,
		},
		{
			ID:          uuid.New(),
			AnonymousID: anonid.Generate(),
			Name:        "Dan Ito",
			Email:       "dan@example.com",
			Phone:       "+81900000004",
			Position:    "Platform Engineer",
			Experience:  10,
			Skills:      pq.StringArray{"Go", "Kubernetes", "Terraform"},
			Education:   "BEng Information Systems",
			SubmittedAt: now.Add(-3 * time.Hour),
			Status:      m.StatusRejected,
		},
	}

	if err := db.Create(&applicants).Error; err != nil {
		return err
	}

	TestApplicantBackend = applicants[0]
	TestApplicantFrontend = applicants[1]
	TestApplicantData = applicants[2]
	TestApplicantOps = applicants[3]

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var applicants []m.Applicant
	if err := db.Order("submitted_at DESC").Limit(4).Find(&applicants).Error; err != nil {
		return err
	}
	if len(applicants) > 0 {
		TestApplicantBackend = applicants[0]
	}
	if len(applicants) > 1 {
		TestApplicantFrontend = applicants[1]
	}
	if len(applicants) > 2 {
		TestApplicantData = applicants[2]
	}
	if len(applicants) > 3 {
		TestApplicantOps = applicants[3]
	}
	return nil
}
