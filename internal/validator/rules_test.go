package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mobileForm struct {
	Mobile string `json:"mobile" validate:"in-mobile"`
}

type pincodeForm struct {
	Pincode string `json:"pincode" validate:"in-pincode"`
}

type enumForm struct {
	Branch string `json:"branch" validate:"is-branch"`
	Tier   string `json:"tier" validate:"is-tier"`
	Board  string `json:"board" validate:"is-board"`
}

type rangeForm struct {
	CGPA    float64 `json:"cgpa" validate:"cgpa"`
	Percent float64 `json:"percent" validate:"percent"`
}

func TestMobileRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&mobileForm{Mobile: "9876543210"}))
	assert.NoError(t, v.Validate(&mobileForm{Mobile: "6000000000"}))
	assert.NoError(t, v.Validate(&mobileForm{Mobile: ""})) // presence is 'required'

	for _, bad := range []string{"1234567890", "98765", "98765432101", "98765abc10"} {
		err := v.Validate(&mobileForm{Mobile: bad})
		assert.Error(t, err, "mobile %q must fail", bad)
		vErr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, vErr.Errors["mobile"], "10-digit mobile")
	}
}

func TestPincodeRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&pincodeForm{Pincode: "580002"}))
	assert.Error(t, v.Validate(&pincodeForm{Pincode: "5800"}))
	assert.Error(t, v.Validate(&pincodeForm{Pincode: "58000a"}))
}

func TestEnumRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&enumForm{Branch: "CSE", Tier: "TIER_1", Board: "CBSE"}))
	assert.Error(t, v.Validate(&enumForm{Branch: "MBA"}))
	assert.Error(t, v.Validate(&enumForm{Tier: "TIER_4"}))
	assert.Error(t, v.Validate(&enumForm{Board: "IB"}))
}

func TestRangeRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&rangeForm{CGPA: 8.25, Percent: 91.4}))
	assert.Error(t, v.Validate(&rangeForm{CGPA: 10.5}))
	assert.Error(t, v.Validate(&rangeForm{Percent: 120}))
}

func TestValidationErrorUsesJSONNames(t *testing.T) {
	v := New()
	err := v.Validate(&mobileForm{Mobile: "12345"})
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	_, hasJSONName := vErr.Errors["mobile"]
	assert.True(t, hasJSONName)
}
