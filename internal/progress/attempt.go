package progress

import "time"

// Answer is a learner's response to one question. Exactly one field is set:
// Choice for single-choice, true-false and free-text questions, Choices for
// multi-choice questions.
type Answer struct {
	Choice  string   `json:"choice,omitempty"`
	Choices []string `json:"choices,omitempty"`
}

// QuizAttempt records one graded attempt. Attempts are append-only and
// never mutated after creation.
type QuizAttempt struct {
	ID               string            `json:"id"`
	LearnerID        string            `json:"learner_id"`
	QuizID           string            `json:"quiz_id"`
	StartedAt        time.Time         `json:"started_at"`
	SubmittedAt      time.Time         `json:"submitted_at"`
	Answers          map[string]Answer `json:"answers"`
	Score            int               `json:"score"` // percent, 0-100
	Passed           bool              `json:"passed"`
	TimeSpentSeconds int               `json:"time_spent_seconds"`
}

// SubmissionKind is the closed set of assignment submission payloads.
type SubmissionKind string

const (
	SubmissionFileURL SubmissionKind = "file-url"
	SubmissionText    SubmissionKind = "text"
	SubmissionLink    SubmissionKind = "link"
)

// ValidSubmissionKind reports whether k is a known submission kind.
func ValidSubmissionKind(k SubmissionKind) bool {
	switch k {
	case SubmissionFileURL, SubmissionText, SubmissionLink:
		return true
	}
	return false
}

// SubmissionStatus tracks the grading lifecycle of a submission.
type SubmissionStatus string

const (
	StatusSubmitted SubmissionStatus = "submitted"
	StatusGraded    SubmissionStatus = "graded"
)

// Submission records one assignment hand-in. Multiple submissions per
// assignment are retained; the one with the latest SubmittedAt is
// authoritative for "current submission" queries.
type Submission struct {
	ID           string           `json:"id"`
	LearnerID    string           `json:"learner_id"`
	AssignmentID string           `json:"assignment_id"`
	Kind         SubmissionKind   `json:"kind"`
	Body         string           `json:"body"`
	SubmittedAt  time.Time        `json:"submitted_at"`
	Status       SubmissionStatus `json:"status"`
	Score        *int             `json:"score,omitempty"`
	Feedback     string           `json:"feedback,omitempty"`
	GradedAt     *time.Time       `json:"graded_at,omitempty"`
}
