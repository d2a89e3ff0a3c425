package model

import (
	"time"
)

// TestCaseSet is one batch of paired test cases. Input and Output each hold Count
// cases joined by the canonical separator.
type TestCaseSet struct {
	Count  int    `json:"count" validate:"required"`
	Input  string `json:"input" validate:"required"`
	Output string `json:"output" validate:"required"`
}

type Problem struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Statement       string      `json:"statement"`
	Input           string      `json:"input"`  // Input format description
	Output          string      `json:"output"` // Output format description
	SampleTestCases TestCaseSet `json:"sampleTestCases"`
	TestCases       TestCaseSet `json:"testCases"` // Hidden, used for grading
	CreatedByID     *string     `json:"createdBy,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
