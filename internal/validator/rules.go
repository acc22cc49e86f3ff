package validator

import (
	"log"
	"regexp"

	"placement_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	// Indian mobile numbers: 10 digits starting 6-9, same rule the wizard
	// applies client-side.
	mobileRe = regexp.MustCompile(`^[6-9]\d{9}$`)
	// 6-digit postal pincode.
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
)

// registerCustomRules installs the portal's validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("in-mobile", validateMobile)
	mustRegister("in-pincode", validatePincode)
	mustRegister("is-branch", validateBranch)
	mustRegister("is-tier", validateTier)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-kyc-status", validateKYCStatus)
	mustRegister("is-board", validateBoard)
	mustRegister("is-caste-category", validateCasteCategory)
	mustRegister("cgpa", validateCGPA)
	mustRegister("percent", validatePercent)
}

// Empty strings pass every rule below; 'required' handles presence.

func validateMobile(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return mobileRe.MatchString(value)
}

func validatePincode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return pincodeRe.MatchString(value)
}

func validateBranch(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.Branch(value).Valid()
}

func validateTier(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.Tier(value).Valid()
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusDraft, models.JobStatusActive, models.JobStatusClosed:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusApplied, models.ApplicationStatusUnderReview,
		models.ApplicationStatusShortlisted, models.ApplicationStatusInterviewScheduled,
		models.ApplicationStatusSelected, models.ApplicationStatusRejected,
		models.ApplicationStatusWithdrawn:
		return true
	default:
		return false
	}
}

func validateKYCStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.KYCStatus(value) {
	case models.KYCStatusPending, models.KYCStatusUnderReview, models.KYCStatusVerified,
		models.KYCStatusRejected, models.KYCStatusIncomplete:
		return true
	default:
		return false
	}
}

func validateBoard(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "STATE", "CBSE", "ICSE":
		return true
	default:
		return false
	}
}

func validateCasteCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "GEN", "OBC", "SC", "ST":
		return true
	default:
		return false
	}
}

func validateCGPA(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= 0 && v <= 10
}

func validatePercent(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= 0 && v <= 100
}
