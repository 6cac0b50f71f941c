package engine

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/curriculum"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
)

// QuizSubmission is the answer set a learner hands in for grading. When the
// quiz has a time limit the caller runs the timer and submits whatever
// answers are recorded when it elapses; the engine only grades what it is
// given. StartedAt may be zero if the caller did not track it.
type QuizSubmission struct {
	StartedAt time.Time
	Answers   map[string]progress.Answer
}

// GradeQuiz scores a submission against the quiz definition, appends an
// immutable attempt to the record and emits quiz-passed or quiz-failed.
//
// A new attempt is rejected with AttemptLimitError once the learner has
// used MaxAttempts recorded attempts. Answers for unknown questions and
// shape mismatches fail before any attempt is recorded; questions left
// unanswered are simply graded incorrect.
//
// The score is an unweighted percentage of correct answers: per-question
// point values are carried in the model but deliberately not used.
func (s *Service) GradeQuiz(chain *curriculum.Chain, rec *progress.Record, quizID string, sub QuizSubmission) (*progress.Record, []Event, error) {
	quiz, ok := chain.Quiz(quizID)
	if !ok {
		return nil, nil, &NotFoundError{Kind: "quiz", ID: quizID}
	}
	if rec.AttemptCount(quizID) >= quiz.MaxAttempts {
		return nil, nil, &AttemptLimitError{QuizID: quizID, MaxAttempts: quiz.MaxAttempts}
	}

	byID := make(map[string]*curriculum.Question, len(quiz.Questions))
	for i := range quiz.Questions {
		byID[quiz.Questions[i].ID] = &quiz.Questions[i]
	}
	for qid, ans := range sub.Answers {
		q, ok := byID[qid]
		if !ok {
			return nil, nil, &NotFoundError{Kind: "question", ID: qid}
		}
		if err := checkAnswerShape(q, ans); err != nil {
			return nil, nil, err
		}
	}

	correct := 0
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		if ans, answered := sub.Answers[q.ID]; answered && answerCorrect(q, ans) {
			correct++
		}
	}
	score := int(math.Round(100 * float64(correct) / float64(len(quiz.Questions))))
	passed := score >= quiz.PassingScore

	now := s.clock.Now()
	attempt := progress.QuizAttempt{
		ID:          uuid.NewString(),
		LearnerID:   rec.LearnerID,
		QuizID:      quizID,
		StartedAt:   sub.StartedAt,
		SubmittedAt: now,
		Answers:     sub.Answers,
		Score:       score,
		Passed:      passed,
	}
	if !sub.StartedAt.IsZero() && now.After(sub.StartedAt) {
		attempt.TimeSpentSeconds = int(now.Sub(sub.StartedAt).Seconds())
	}

	next := rec.Clone()
	next.QuizAttempts = append(next.QuizAttempts, attempt)

	kind := EventQuizFailed
	if passed {
		kind = EventQuizPassed
	}
	return next, []Event{{Kind: kind, QuizID: quizID, Score: score}}, nil
}

// checkAnswerShape rejects answers whose shape does not match the question
// kind. A zero-value Answer passes: it means the question was shown but
// left unanswered, which grades as incorrect.
func checkAnswerShape(q *curriculum.Question, ans progress.Answer) error {
	if ans.Choice == "" && len(ans.Choices) == 0 {
		return nil
	}
	switch q.Kind {
	case curriculum.KindMultiChoice:
		if ans.Choice != "" {
			return &InvalidAnswerShapeError{QuestionID: q.ID, Kind: q.Kind}
		}
	default:
		if len(ans.Choices) > 0 {
			return &InvalidAnswerShapeError{QuestionID: q.ID, Kind: q.Kind}
		}
	}
	return nil
}

func answerCorrect(q *curriculum.Question, ans progress.Answer) bool {
	switch q.Kind {
	case curriculum.KindSingleChoice, curriculum.KindTrueFalse:
		return ans.Choice == q.CorrectAnswer
	case curriculum.KindFreeText:
		// Exact match after whitespace trim. No fuzzy matching.
		return strings.TrimSpace(ans.Choice) == strings.TrimSpace(q.CorrectAnswer)
	case curriculum.KindMultiChoice:
		return setsEqual(ans.Choices, q.CorrectAnswers)
	}
	return false
}

// setsEqual compares two answer lists as sets: order-independent, with no
// subset or superset credit.
func setsEqual(got, want []string) bool {
	wantSet := make(map[string]bool, len(want))
	for _, w := range want {
		wantSet[w] = true
	}
	gotSet := make(map[string]bool, len(got))
	for _, g := range got {
		if !wantSet[g] {
			return false
		}
		gotSet[g] = true
	}
	return len(gotSet) == len(wantSet)
}
