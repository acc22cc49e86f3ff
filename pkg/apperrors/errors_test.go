package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesChain(t *testing.T) {
	base := errors.New("record not found")
	appErr := Wrap(base, CodeNotFound, "job", "Job not found", http.StatusNotFound)

	assert.True(t, errors.Is(appErr, base))

	var target *AppError
	require.True(t, errors.As(appErr, &target))
	assert.Equal(t, CodeNotFound, target.Code)
	assert.Equal(t, http.StatusNotFound, target.HTTPCode)
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(ErrAlreadyApplied)
	require.True(t, ok)
	assert.Equal(t, CodeAlreadyExists, appErr.Code)

	_, ok = AsAppError(errors.New("plain error"))
	assert.False(t, ok)
}

func TestMarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("pq: duplicate key"), CodeConflict, "application", "Already applied", http.StatusConflict)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, "Already applied")
	assert.NotContains(t, body, "duplicate key")
	assert.NotContains(t, body, "409")
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	details := map[string]string{"callingMobile": "must be a valid 10-digit mobile number"}
	appErr := ValidationError(details)

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "callingMobile")
}
