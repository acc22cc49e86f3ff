package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the placement-portal business errors.
Eligibility rejections are deterministic for the current state, so none of
these are retryable; the client has to change state first.
*/

// ErrNotFound converts a repository "record not found" into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a unique-constraint violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the general conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation builds a 400 for operations the current state forbids.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus builds a 400 for an illegal status transition.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrNotEligible carries an Eligibility Evaluator rejection reason to the
// client. Always a 400: the state, not the request, is at fault.
func ErrNotEligible(reason string) *AppError {
	return New(CodeNotEligible, "eligibility", reason, http.StatusBadRequest)
}

// ErrAlreadyApplied is returned when the (job, student) pair already has a
// live application, including when the duplicate-key race is lost.
var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job",
	http.StatusBadRequest,
)

// ErrApplicationRemoved covers soft-removed applications: the student may not
// re-apply, an admin has to restore the original row.
var ErrApplicationRemoved = New(
	CodeInvalidOperation,
	"application",
	"Your application was removed by admin",
	http.StatusBadRequest,
)

// ErrProfileIncomplete gates every apply attempt on the strict completeness
// boolean.
var ErrProfileIncomplete = New(
	CodeProfileIncomplete,
	"eligibility",
	"Complete your profile before applying to jobs",
	http.StatusBadRequest,
)

// ErrInvalidUserRole is used when an operation is not defined for the caller's
// role.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrInsufficientPermissions is returned when a non-admin calls an admin
// operation that slipped past the route guard.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrEmailAlreadyExists is returned on duplicate registration.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User with this email already exists",
	http.StatusBadRequest,
)

// ErrInvalidCredentials is shared by login and password change.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrWeakPassword is the registration password-policy error.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

// ErrUSNTaken is returned when a profile update collides on the USN unique
// index.
var ErrUSNTaken = New(
	CodeAlreadyExists,
	"profile",
	"USN already exists. Please use a different USN.",
	http.StatusBadRequest,
)

// --- Files & uploads ---

var ErrFileTooLarge = New(
	CodeValidationFailed,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
