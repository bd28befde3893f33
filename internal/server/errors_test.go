package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talentbridge/internal/evaluation"
	"github.com/jonathan/talentbridge/internal/health"
	"github.com/jonathan/talentbridge/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Field: "id", Message: "bad"}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("decode: %w", &ErrValidation{Message: "bad"}), http.StatusBadRequest},
		{"too large", &http.MaxBytesError{Limit: maxBodyBytes}, http.StatusRequestEntityTooLarge},
		{"not found", &ErrNotFound{Resource: "job", ID: "x"}, http.StatusNotFound},
		{"service not found", &evaluation.NotFoundError{Resource: "job", ID: uuid.New()}, http.StatusNotFound},
		{"unavailable", &ErrUnavailable{Dependency: "database"}, http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrValidation_Error(t *testing.T) {
	assert.Equal(t, "validation error: body is empty", (&ErrValidation{Message: "body is empty"}).Error())
	assert.Equal(t, "validation error: id - invalid", (&ErrValidation{Field: "id", Message: "invalid"}).Error())
}

func TestValidationError_FieldPath(t *testing.T) {
	in := health.JobInput{Recruiters: -1}
	err := validationError(types.ValidateStruct(&in))

	var validation *ErrValidation
	assert.True(t, errors.As(err, &validation))
	assert.Equal(t, "recruiters", validation.Field)
	assert.Equal(t, "failed on 'gte=0'", validation.Message)

	err = validationError(errors.New("not a validator error"))
	assert.True(t, errors.As(err, &validation))
	assert.Empty(t, validation.Field)
}
