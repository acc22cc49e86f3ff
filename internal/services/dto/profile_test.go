package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placement_backend/internal/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

func TestBacklogsFlag(t *testing.T) {
	t.Run("modern boolean wins", func(t *testing.T) {
		req := UpdateProfileRequest{
			ActiveBacklogs: boolPtr(true),
			HasBacklogs:    strPtr("no"),
		}
		flag := req.BacklogsFlag()
		require.NotNil(t, flag)
		assert.True(t, *flag)
	})

	t.Run("legacy yes/no normalized", func(t *testing.T) {
		for raw, want := range map[string]bool{
			"yes": true,
			"Yes": true,
			"YES": true,
			"no":  false,
			"No":  false,
			"":    false,
		} {
			req := UpdateProfileRequest{HasBacklogs: strPtr(raw)}
			flag := req.BacklogsFlag()
			require.NotNil(t, flag, "raw=%q", raw)
			assert.Equal(t, want, *flag, "raw=%q", raw)
		}
	})

	t.Run("absent means absent", func(t *testing.T) {
		req := UpdateProfileRequest{}
		assert.Nil(t, req.BacklogsFlag())
	})
}

func TestUpdateProfileRequestApply(t *testing.T) {
	t.Run("only present fields change", func(t *testing.T) {
		profile := models.Profile{
			FirstName: "Asha",
			LastName:  "Rao",
			Branch:    "CSE",
		}

		req := UpdateProfileRequest{FirstName: strPtr("Ravi")}
		req.Apply(&profile)

		assert.Equal(t, "Ravi", profile.FirstName)
		assert.Equal(t, "Rao", profile.LastName)
		assert.Equal(t, models.BranchCSE, profile.Branch)
	})

	t.Run("branch lands as the typed enum", func(t *testing.T) {
		var profile models.Profile
		req := UpdateProfileRequest{Branch: strPtr("ECE")}
		req.Apply(&profile)
		assert.Equal(t, models.BranchECE, profile.Branch)
		assert.True(t, profile.Branch.Valid())
	})

	t.Run("explicit empty string clears the field", func(t *testing.T) {
		profile := models.Profile{FirstName: "Asha"}

		req := UpdateProfileRequest{FirstName: strPtr("")}
		req.Apply(&profile)

		assert.Empty(t, profile.FirstName)
	})

	t.Run("usn is trimmed and uppercased", func(t *testing.T) {
		var profile models.Profile
		req := UpdateProfileRequest{USN: strPtr("  1rv21cs001 ")}
		req.Apply(&profile)
		assert.Equal(t, "1RV21CS001", profile.USN)
	})

	t.Run("backlog section round-trips", func(t *testing.T) {
		var profile models.Profile
		req := UpdateProfileRequest{
			HasBacklogs:  strPtr("yes"),
			BacklogCount: intPtr(2),
			BacklogSubjects: []models.BacklogSubject{
				{Code: "18CS55", Title: "Automata Theory"},
				{Code: "18CS62", Title: "Compiler Design"},
			},
		}
		req.Apply(&profile)

		assert.True(t, profile.ActiveBacklogs)
		assert.Equal(t, 2, profile.BacklogCount)

		subjects := profile.GetBacklogSubjects()
		require.Len(t, subjects, 2)
		assert.Equal(t, "18CS55", subjects[0].Code)
	})
}
