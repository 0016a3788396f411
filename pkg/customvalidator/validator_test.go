package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Phone *string `validate:"omitempty,phone_number"`
	Code  string  `validate:"required,business_code"`
	Start string  `validate:"omitempty,hhmm"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestCustomValidations(t *testing.T) {
	v := newValidator(t)
	phone := "0972055909"
	badPhone := "09-72"

	assert.NoError(t, v.Struct(sample{Phone: &phone, Code: "EMP_001", Start: "08:30"}))
	assert.NoError(t, v.Struct(sample{Code: "HR"}))
	assert.Error(t, v.Struct(sample{Phone: &badPhone, Code: "HR"}))
	assert.Error(t, v.Struct(sample{Code: "with space"}))
	assert.Error(t, v.Struct(sample{Code: "HR", Start: "24:00"}))
	assert.Error(t, v.Struct(sample{Code: "HR", Start: "8:30"}))
}
