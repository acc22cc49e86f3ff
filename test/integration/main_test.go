package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"placement_backend/internal/models"
	"placement_backend/test/helpers"
)

// Shared server state for the whole package
var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer initializes the shared test server on first use. The suite
// needs a real Postgres; point DATABASE_URL at a throwaway test database.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration tests")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration_test_secret_12345")
		}

		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}

// CreateTestJob inserts an active posting with permissive constraints.
// Tests that need a CGPA bar or branch filter mutate the returned job and Save it.
func CreateTestJob(t *testing.T, tx *gorm.DB, createdBy string, title string, tier models.Tier) *models.Job {
	deadline := time.Now().Add(14 * 24 * time.Hour)
	job := &models.Job{
		Title:         title,
		CompanyName:   "Acme Corp",
		Description:   "Test posting",
		Location:      "Bengaluru",
		JobType:       "FULL_TIME",
		WorkMode:      "ONSITE",
		Salary:        "6 LPA",
		Tier:          tier,
		EligibleBatch: "2025",
		Deadline:      &deadline,
		Status:        models.JobStatusActive,
		IsVisible:     true,
		CreatedBy:     createdBy,
	}
	if err := tx.Create(job).Error; err != nil {
		t.Fatalf("failed to create test job: %v", err)
	}
	return job
}

// CreateTestPlacement records an accepted offer for the student.
func CreateTestPlacement(t *testing.T, tx *gorm.DB, userID string, tier models.Tier, isException bool) *models.Placement {
	placement := &models.Placement{
		UserID:      userID,
		CompanyName: "Placed Corp",
		Tier:        tier,
		Package:     "8 LPA",
		IsException: isException,
		PlacedAt:    time.Now(),
	}
	if err := tx.Create(placement).Error; err != nil {
		t.Fatalf("failed to create test placement: %v", err)
	}
	return placement
}

// CreateTestApplication inserts an application row directly.
func CreateTestApplication(t *testing.T, tx *gorm.DB, jobID, userID string, status models.ApplicationStatus) *models.Application {
	application := &models.Application{
		JobID:     jobID,
		UserID:    userID,
		Status:    status,
		AppliedAt: time.Now(),
	}
	if err := tx.Create(application).Error; err != nil {
		t.Fatalf("failed to create test application: %v", err)
	}
	return application
}
