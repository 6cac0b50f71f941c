package engine

import (
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/curriculum"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
)

// CompleteLesson marks a lesson complete and cascades the completion into
// module certificates, the overall percentage and the course diploma.
//
// Re-completing an already completed lesson is a safe no-op: the input
// record is returned unchanged with an empty event list. Completion is
// monotonic; there is no un-complete operation.
func (s *Service) CompleteLesson(chain *curriculum.Chain, rec *progress.Record, lessonID string) (*progress.Record, []Event, error) {
	if _, ok := chain.Lesson(lessonID); !ok {
		return nil, nil, &NotFoundError{Kind: "lesson", ID: lessonID}
	}
	if rec.HasLesson(lessonID) {
		return rec, nil, nil
	}

	next := rec.Clone()
	next.CompletedLessonIDs[lessonID] = true

	events := []Event{{Kind: EventLessonCompleted, LessonID: lessonID}}

	wasComplete := make(map[string]bool, len(rec.CompletedModuleIDs))
	for id := range rec.CompletedModuleIDs {
		wasComplete[id] = true
	}

	next.Recompute(chain)

	for _, mod := range chain.Modules() {
		if next.HasModule(mod.ID) && !wasComplete[mod.ID] {
			next.CertificationsEarned = append(next.CertificationsEarned, mod.ID)
			events = append(events, Event{Kind: EventModuleCompleted, ModuleID: mod.ID})
		}
	}

	// One-way transition: once the diploma is issued it is never revoked,
	// even if the curriculum is later extended.
	if next.OverallProgressPercent == 100 && !next.CertificateIssued {
		now := s.clock.Now()
		next.CertificateIssued = true
		next.CertificateIssuedAt = &now
		events = append(events, Event{Kind: EventDiplomaEarned})
	}

	return next, events, nil
}
