package dto

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	TotalStudents        int64            `json:"totalStudents"`
	CompleteProfiles     int64            `json:"completeProfiles"`
	TotalJobs            int64            `json:"totalJobs"`
	ActiveJobs           int64            `json:"activeJobs"`
	TotalApplications    int64            `json:"totalApplications"`
	PlacedStudents       int64            `json:"placedStudents"`
	PlacementRate        float64          `json:"placementRate"`
	JobsByStatus         map[string]int64 `json:"jobsByStatus"`
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
	KYCByStatus          map[string]int64 `json:"kycByStatus"`
}

// BranchStats breaks students and placements down per branch.
type BranchStats struct {
	StudentsByBranch map[string]int64 `json:"studentsByBranch"`
}

// TierStats breaks jobs and placements down per tier.
type TierStats struct {
	JobsByTier       map[string]int64 `json:"jobsByTier"`
	PlacementsByTier map[string]int64 `json:"placementsByTier"`
}
