package curriculum

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on a course.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(c *Course) error {
	var errs []string

	if c.ID == "" {
		errs = append(errs, "course is missing an id")
	}
	if len(c.Modules) == 0 {
		errs = append(errs, "course has no modules")
	}

	moduleIDs := make(map[string]bool, len(c.Modules))
	lessonIDs := make(map[string]bool)
	quizIDs := make(map[string]bool)
	assignmentIDs := make(map[string]bool)

	for _, m := range c.Modules {
		if moduleIDs[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		moduleIDs[m.ID] = true

		if len(m.Lessons) == 0 {
			errs = append(errs, fmt.Sprintf("module %q has no lessons", m.ID))
		}

		for _, l := range m.Lessons {
			if lessonIDs[l.ID] {
				errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
			}
			lessonIDs[l.ID] = true

			if l.Quiz != nil {
				if quizIDs[l.Quiz.ID] {
					errs = append(errs, fmt.Sprintf("duplicate quiz ID: %q", l.Quiz.ID))
				}
				quizIDs[l.Quiz.ID] = true
				errs = append(errs, validateQuiz(l.Quiz)...)
			}

			if l.Assignment != nil {
				if assignmentIDs[l.Assignment.ID] {
					errs = append(errs, fmt.Sprintf("duplicate assignment ID: %q", l.Assignment.ID))
				}
				assignmentIDs[l.Assignment.ID] = true
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid curriculum:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateQuiz(q *Quiz) []string {
	var errs []string

	if q.PassingScore < 0 || q.PassingScore > 100 {
		errs = append(errs, fmt.Sprintf("quiz %q passing score %d out of range 0-100", q.ID, q.PassingScore))
	}
	if q.MaxAttempts < 1 {
		errs = append(errs, fmt.Sprintf("quiz %q must allow at least one attempt", q.ID))
	}
	if len(q.Questions) == 0 {
		errs = append(errs, fmt.Sprintf("quiz %q has no questions", q.ID))
	}

	qIDs := make(map[string]bool, len(q.Questions))
	for _, question := range q.Questions {
		if qIDs[question.ID] {
			errs = append(errs, fmt.Sprintf("quiz %q has duplicate question ID: %q", q.ID, question.ID))
		}
		qIDs[question.ID] = true

		switch question.Kind {
		case KindSingleChoice, KindTrueFalse, KindFreeText:
			if question.CorrectAnswer == "" {
				errs = append(errs, fmt.Sprintf("question %q has no correct answer", question.ID))
			}
		case KindMultiChoice:
			if len(question.CorrectAnswers) == 0 {
				errs = append(errs, fmt.Sprintf("question %q has an empty correct answer set", question.ID))
			}
		default:
			errs = append(errs, fmt.Sprintf("question %q has unknown kind %q", question.ID, question.Kind))
		}
	}
	return errs
}
