package engine

import (
	"fmt"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/curriculum"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
)

// NotFoundError reports a referenced id that does not exist in the
// curriculum or the progress record.
type NotFoundError struct {
	Kind string // "lesson", "module", "quiz", "question", "assignment", "submission"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// AttemptLimitError reports a quiz attempt rejected because the learner
// has used up the quiz's attempt budget.
type AttemptLimitError struct {
	QuizID      string
	MaxAttempts int
}

func (e *AttemptLimitError) Error() string {
	return fmt.Sprintf("quiz %q: attempt limit of %d reached", e.QuizID, e.MaxAttempts)
}

// InvalidAnswerShapeError reports an answer whose shape does not match the
// question kind, e.g. an answer set given for a single-choice question.
type InvalidAnswerShapeError struct {
	QuestionID string
	Kind       curriculum.QuestionKind
}

func (e *InvalidAnswerShapeError) Error() string {
	return fmt.Sprintf("question %q: answer shape does not match kind %q", e.QuestionID, e.Kind)
}

// InvalidSubmissionKindError reports a submission payload outside the
// closed set of submission kinds.
type InvalidSubmissionKindError struct {
	Kind progress.SubmissionKind
}

func (e *InvalidSubmissionKindError) Error() string {
	return fmt.Sprintf("unknown submission kind %q", e.Kind)
}
