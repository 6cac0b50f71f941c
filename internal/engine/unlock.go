package engine

import (
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/curriculum"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
)

// IsUnlocked reports whether a lesson is accessible given the current
// progress. The first lesson in the flattened chain is always unlocked;
// every later lesson unlocks when its immediate predecessor is completed.
//
// Only lesson completion advances the chain: passing a lesson's quiz or
// submitting its assignment does not unlock anything by itself.
func (s *Service) IsUnlocked(chain *curriculum.Chain, rec *progress.Record, lessonID string) (bool, error) {
	i, ok := chain.LessonIndex(lessonID)
	if !ok {
		return false, &NotFoundError{Kind: "lesson", ID: lessonID}
	}
	if i == 0 {
		return true, nil
	}
	prev := chain.LessonOrder()[i-1]
	return rec.HasLesson(prev), nil
}
