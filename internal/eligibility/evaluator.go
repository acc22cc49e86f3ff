package eligibility

import (
	"fmt"
	"time"

	"placement_backend/internal/models"
)

// Evaluate runs the full admit/reject predicate for one (profile, job) pair.
// Checks short-circuit in a fixed order; the first failure wins. The function
// is pure: callers fetch the records and the locked tier up front.
//
// The listing endpoints call this informationally; the apply endpoint calls
// it authoritatively and the (job_id, user_id) unique index re-checks the
// duplicate race at write time.
func Evaluate(profile *models.Profile, job *models.Job, locked *models.Tier, now time.Time) Decision {
	// 1. Posting must be open
	if d := Open(job, now); !d.Eligible {
		return d
	}

	// 2. Strict profile completeness gates everything else
	if profile == nil || !profile.IsComplete {
		return rejected("Complete your profile before applying to jobs")
	}

	// 3. Tier lock, reason passed through verbatim
	if d := CanApplyToTier(locked, job.Tier, job.IsDreamOffer); !d.Eligible {
		return d
	}

	// 4. CGPA bar, strict less-than
	if job.MinCGPA != nil {
		cgpa := profile.BestCGPA()
		if cgpa < *job.MinCGPA {
			return rejected(fmt.Sprintf("Minimum CGPA required: %v. Your CGPA: %.2f", *job.MinCGPA, cgpa))
		}
	}

	// 5. Branch set, empty = all branches
	if len(job.AllowedBranches) > 0 && profile.Branch != "" {
		if !containsBranch(job.AllowedBranches, profile.Branch) {
			return rejected(fmt.Sprintf("Your branch (%s) is not eligible for this job", profile.Branch))
		}
	}

	// 6. Batch
	if job.EligibleBatch != "" && profile.Batch != "" && profile.Batch != job.EligibleBatch {
		return rejected(fmt.Sprintf("Only %s batch is eligible", job.EligibleBatch))
	}

	// 7. Backlogs
	if job.MaxBacklogs != nil && *job.MaxBacklogs == 0 && profile.ActiveBacklogs {
		return rejected("No active backlogs allowed")
	}

	return eligible()
}

// Open checks only the posting state: status and deadline. It is answered
// before any per-student check so a stale posting reads the same to everyone.
func Open(job *models.Job, now time.Time) Decision {
	if job.Status != models.JobStatusActive {
		return rejected("This job is no longer accepting applications")
	}
	if job.Deadline != nil && job.Deadline.Before(now) {
		return rejected("Application deadline has passed")
	}
	return eligible()
}

func containsBranch(allowed []string, branch models.Branch) bool {
	for _, b := range allowed {
		if models.Branch(b) == branch {
			return true
		}
	}
	return false
}
