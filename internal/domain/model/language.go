package model

// Language identifies a judge language: ID is the judge's language id, Name is kept
// on the submission for display.
type Language struct {
	ID   int    `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}
