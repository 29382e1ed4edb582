package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginShape struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestFromBindErrorUsesJSONTags(t *testing.T) {
	v := validator.New()

	in := loginShape{Email: "not-an-email", Password: "abc"}
	err := v.Struct(in)
	require.Error(t, err)

	errs := FromBindError(err, &in)
	assert.Equal(t, "Enter a valid email address.", errs["email"])
	assert.Equal(t, "Must be at least 6 characters.", errs["password"])
}

func TestFromBindErrorRequired(t *testing.T) {
	v := validator.New()

	in := loginShape{}
	err := v.Struct(in)
	require.Error(t, err)

	errs := FromBindError(err, &in)
	assert.Equal(t, "This field is required.", errs["email"])
	assert.Equal(t, "This field is required.", errs["password"])
}

func TestFromBindErrorNonValidationError(t *testing.T) {
	errs := FromBindError(errors.New("unexpected EOF"), &loginShape{})
	assert.Equal(t, "Invalid request data.", errs["_"])
}
