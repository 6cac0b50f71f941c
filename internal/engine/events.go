package engine

// EventKind identifies what happened during an engine operation.
type EventKind string

const (
	EventLessonCompleted     EventKind = "lesson-completed"
	EventModuleCompleted     EventKind = "module-completed"
	EventDiplomaEarned       EventKind = "diploma-earned"
	EventQuizPassed          EventKind = "quiz-passed"
	EventQuizFailed          EventKind = "quiz-failed"
	EventAssignmentSubmitted EventKind = "assignment-submitted"
	EventAssignmentGraded    EventKind = "assignment-graded"
)

// Event is one entry in the ordered list an operation returns. Only the
// fields relevant to the kind are set. When a single call fires multiple
// triggers the order is: lesson-completed, then module-completed per
// affected module in module order, then diploma-earned.
type Event struct {
	Kind         EventKind
	LessonID     string
	ModuleID     string
	QuizID       string
	AssignmentID string
	SubmissionID string
	Score        int // percent, for quiz and grading events
}
