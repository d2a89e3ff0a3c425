package model

import "time"

// Judge status ids as reported by the judge service.
const (
	VerdictInQueue           = 1
	VerdictProcessing        = 2
	VerdictAccepted          = 3
	VerdictWrongAnswer       = 4
	VerdictTimeLimitExceeded = 5
	VerdictCompilationError  = 6
)

type VerdictStatus struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// Verdict is the judge's outcome for one run.
type Verdict struct {
	Token         string        `json:"token,omitempty"`
	Status        VerdictStatus `json:"status"`
	Stdout        *string       `json:"stdout"`
	Stderr        *string       `json:"stderr"`
	CompileOutput *string       `json:"compile_output"`
	Message       *string       `json:"message"`
	Time          *string       `json:"time"`
	Memory        *int          `json:"memory"`
}

// Submission is append-only: once stored it is never updated or deleted.
type Submission struct {
	ID           string        `json:"id"`
	UserID       string        `json:"-"`
	ProblemID    string        `json:"problemID"`
	ProblemTitle string        `json:"problemTitle"`
	LanguageName string        `json:"languageName"`
	Status       VerdictStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}
