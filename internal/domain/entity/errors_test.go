package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "title", Rule: RuleRequired, Message: "title is required"}
	assert.Equal(t, "validation error on field 'title': title is required", err.Error())
}

func TestValidationErrors_OrNil(t *testing.T) {
	var empty ValidationErrors
	assert.Nil(t, empty.OrNil())

	errs := ValidationErrors{{Field: "title", Rule: RuleRequired, Message: "title is required"}}
	err := errs.OrNil()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Contains(t, err.Error(), "title is required")
}

func TestSentinelErrors(t *testing.T) {
	assert.EqualError(t, ErrNotFound, "entity not found")
	assert.False(t, errors.Is(ErrNotFound, ErrValidationFailed))
}

func TestValidationErrors_For(t *testing.T) {
	errs := ValidationErrors{NewTypeError("title"), {Field: "content", Rule: RuleRequired}}

	assert.Equal(t, RuleString, errs.For("title").Rule)
	assert.Equal(t, RuleRequired, errs.For("content").Rule)
	assert.Nil(t, errs.For("author_name"))
	assert.Nil(t, ValidationErrors(nil).For("title"))
}
