package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"placement_backend/internal/auth"
	"placement_backend/internal/models"
)

// CreateUser inserts a verified user, hashing the raw password stored in
// PasswordHash when it is not already a bcrypt hash.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	if user.PasswordHash == "" {
		user.PasswordHash = "password123"
	}
	if len(user.PasswordHash) < 4 || user.PasswordHash[:4] != "$2a$" {
		hashed, err := auth.HashPassword(user.PasswordHash)
		require.NoError(t, err, "failed to hash test password")
		user.PasswordHash = hashed
	}
	user.IsVerified = true

	require.NoError(t, db.Create(user).Error, "failed to create test user %s", user.Email)
	return user
}

// CreateAndLoginUser creates a user inside tx and logs in through the API,
// returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, tx, user)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, body: "+bodyStr)

	var loginResponse struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken, user
}

// CreateAndLoginStudent creates a student with a unique email plus a profile
// that passes every eligibility check, and logs them in.
func CreateAndLoginStudent(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User, *models.Profile) {
	email := fmt.Sprintf("student_%d@college.test", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, tx, "Test Student", email, "password123", models.UserRoleStudent)

	profile := CompleteProfile(user.ID)
	// Register already created an empty profile row, replace its contents.
	var existing models.Profile
	err := tx.Where("user_id = ?", user.ID).First(&existing).Error
	if err == nil {
		profile.ID = existing.ID
		require.NoError(t, tx.Save(profile).Error, "failed to fill student profile")
	} else {
		require.NoError(t, tx.Create(profile).Error, "failed to create student profile")
	}

	return token, user, profile
}

// CreateAndLoginAdmin creates an admin with a unique email and logs them in.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@college.test", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Admin", email, "password123", models.UserRoleAdmin)
}

// CompleteProfile builds a profile that satisfies all seven wizard steps
// and the default eligibility checks. USN is unique per call.
func CompleteProfile(userID string) *models.Profile {
	dob := time.Date(2003, 6, 15, 0, 0, 0, 0, time.UTC)
	tenthYear := 2019
	twelfthYear := 2021
	tenthPct := 92.4
	twelfthPct := 88.0
	cgpa := 8.5

	return &models.Profile{
		UserID:          userID,
		FirstName:       "Asha",
		LastName:        "Rao",
		DateOfBirth:     &dob,
		Gender:          "FEMALE",
		StateOfDomicile: "Karnataka",
		CasteCategory:   "GM",
		ProfilePhoto:    "photos/asha.png",
		Email:           fmt.Sprintf("asha_%d@college.test", time.Now().UnixNano()),
		CallingMobile:   "9876543210",
		WhatsappMobile:  "9876543210",
		FatherName:      "Ramesh Rao",
		FatherMobile:    "9876500000",
		MotherName:      "Lakshmi Rao",

		CurrentAddress:   "12 MG Road, Bengaluru",
		PermanentAddress: "12 MG Road, Bengaluru",

		TenthSchool:      "St. Joseph High School",
		TenthBoard:       "CBSE",
		TenthPincode:     "560001",
		TenthPassingYear: &tenthYear,
		TenthPercentage:  &tenthPct,
		TenthMarksCard:   "docs/tenth.pdf",

		TwelfthSchool:      "St. Joseph PU College",
		TwelfthBoard:       "STATE",
		TwelfthPincode:     "560001",
		TwelfthPassingYear: &twelfthYear,
		TwelfthPercentage:  &twelfthPct,
		TwelfthMarksCard:   "docs/twelfth.pdf",

		CollegeName:  "RV College of Engineering",
		Branch:       "CSE",
		Batch:        "2025",
		USN:          fmt.Sprintf("1RV21CS%06d", time.Now().UnixNano()%1000000),
		EntryType:    "REGULAR",
		SeatCategory: "KCET",

		CGPA:           &cgpa,
		ActiveBacklogs: false,
		Resume:         "https://example.com/resume.pdf",
		LinkedIn:       "https://linkedin.com/in/asha-rao",
		GitHub:         "https://github.com/asha-rao",

		CompletionStep: 7,
		IsComplete:     true,
		KYCStatus:      models.KYCStatusVerified,
	}
}
