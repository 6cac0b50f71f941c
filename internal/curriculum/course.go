package curriculum

// QuestionKind identifies how a question is answered and graded.
type QuestionKind string

const (
	KindSingleChoice QuestionKind = "single-choice"
	KindMultiChoice  QuestionKind = "multi-choice"
	KindTrueFalse    QuestionKind = "true-false"
	KindFreeText     QuestionKind = "free-text"
)

// AllQuestionKinds returns every supported question kind.
func AllQuestionKinds() []QuestionKind {
	return []QuestionKind{KindSingleChoice, KindMultiChoice, KindTrueFalse, KindFreeText}
}

// DisplayName returns a human-readable label for the question kind.
func (k QuestionKind) DisplayName() string {
	switch k {
	case KindSingleChoice:
		return "Single choice"
	case KindMultiChoice:
		return "Multiple choice"
	case KindTrueFalse:
		return "True / False"
	case KindFreeText:
		return "Free text"
	default:
		return string(k)
	}
}

// Course is the root of the immutable curriculum structure.
type Course struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Modules []Module `json:"modules"`
}

// Module groups an ordered run of lessons. Completing every lesson in a
// module earns the module certificate.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Order   int      `json:"order"`
	Lessons []Lesson `json:"lessons"`
}

// Lesson is the unit of completion. A lesson carries at most one quiz and
// at most one assignment.
type Lesson struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Order      int         `json:"order"`
	Quiz       *Quiz       `json:"quiz,omitempty"`
	Assignment *Assignment `json:"assignment,omitempty"`
}

// Quiz is an auto-graded assessment attached to a lesson.
type Quiz struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Questions        []Question `json:"questions"`
	PassingScore     int        `json:"passing_score"` // percent, 0-100
	MaxAttempts      int        `json:"max_attempts"`
	TimeLimitSeconds int        `json:"time_limit_seconds,omitempty"` // 0 = untimed
}

// Question is a single quiz item. CorrectAnswer is used for single-choice,
// true-false and free-text kinds; CorrectAnswers for multi-choice.
//
// Points is carried in the model but not used by scoring: the grader
// computes an unweighted percentage of correct answers.
type Question struct {
	ID             string       `json:"id"`
	Kind           QuestionKind `json:"kind"`
	Prompt         string       `json:"prompt"`
	Choices        []string     `json:"choices,omitempty"`
	CorrectAnswer  string       `json:"correct_answer,omitempty"`
	CorrectAnswers []string     `json:"correct_answers,omitempty"`
	Points         int          `json:"points"`
}

// Assignment is a manually graded deliverable attached to a lesson.
type Assignment struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Instructions string `json:"instructions,omitempty"`
}
