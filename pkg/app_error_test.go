package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.Equal(t, "INTERNAL_ERROR: An internal error occurred: boom", e.Error())
	assert.ErrorIs(t, e, cause)
	assert.Equal(t, HTTPError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}, e.ToHTTPError())

	simple := NewDomainErrorSimple("VISIT_NOT_FOUND", "Visit not found", http.StatusNotFound)
	assert.Equal(t, "VISIT_NOT_FOUND: Visit not found", simple.Error())
	assert.Nil(t, simple.Unwrap())

	detailed := simple.WithDetails("visit v-1 not found")
	assert.Equal(t, "visit v-1 not found", detailed.ToHTTPError().Details)
	assert.Empty(t, simple.Details)
	assert.Equal(t, http.StatusNotFound, detailed.HTTPStatus)
}
