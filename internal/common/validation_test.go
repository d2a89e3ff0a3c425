package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nested struct {
	Count int    `json:"count" validate:"required"`
	Input string `json:"input" validate:"required"`
}

type sampleRequest struct {
	Title string  `json:"title" validate:"required"`
	Cases *nested `json:"testCases" validate:"required"`
}

func TestValidateInput(t *testing.T) {
	err := ValidateInput(sampleRequest{Title: "A", Cases: &nested{Count: 1, Input: "x"}})
	assert.NoError(t, err)

	err = ValidateInput(sampleRequest{Cases: &nested{Count: 1, Input: "x"}})
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Contains(t, err.Error(), "title is required")

	err = ValidateInput(sampleRequest{Title: "A"})
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Contains(t, err.Error(), "testCases is required")

	err = ValidateInput(sampleRequest{Title: "A", Cases: &nested{Input: "x"}})
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Contains(t, err.Error(), "testCases.count is required")
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "testCases.count", fieldPath("CreateProblemRequest.testCases.count"))
	assert.Equal(t, "title", fieldPath("title"))
}
