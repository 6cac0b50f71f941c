package engine

import (
	"github.com/google/uuid"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/curriculum"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
)

// SubmitAssignment appends a submission to the record. Submitting does not
// mark the lesson complete; completion is a separate explicit action. No
// resubmission limit applies and every submission is retained, with the
// latest SubmittedAt authoritative for "current submission" queries.
func (s *Service) SubmitAssignment(chain *curriculum.Chain, rec *progress.Record, assignmentID string, kind progress.SubmissionKind, body string) (*progress.Record, []Event, error) {
	if _, ok := chain.Assignment(assignmentID); !ok {
		return nil, nil, &NotFoundError{Kind: "assignment", ID: assignmentID}
	}
	if !progress.ValidSubmissionKind(kind) {
		return nil, nil, &InvalidSubmissionKindError{Kind: kind}
	}

	submission := progress.Submission{
		ID:           uuid.NewString(),
		LearnerID:    rec.LearnerID,
		AssignmentID: assignmentID,
		Kind:         kind,
		Body:         body,
		SubmittedAt:  s.clock.Now(),
		Status:       progress.StatusSubmitted,
	}

	next := rec.Clone()
	next.AssignmentSubmissions = append(next.AssignmentSubmissions, submission)

	return next, []Event{{
		Kind:         EventAssignmentSubmitted,
		AssignmentID: assignmentID,
		SubmissionID: submission.ID,
	}}, nil
}

// ApplyGrade records an instructor's grade on a submission, moving it to
// graded status. The grading itself happens outside the engine; this only
// applies the result.
func (s *Service) ApplyGrade(rec *progress.Record, submissionID string, score int, feedback string) (*progress.Record, []Event, error) {
	i := rec.SubmissionByID(submissionID)
	if i < 0 {
		return nil, nil, &NotFoundError{Kind: "submission", ID: submissionID}
	}

	next := rec.Clone()
	sub := &next.AssignmentSubmissions[i]
	now := s.clock.Now()
	sub.Score = &score
	sub.Feedback = feedback
	sub.Status = progress.StatusGraded
	sub.GradedAt = &now

	return next, []Event{{
		Kind:         EventAssignmentGraded,
		AssignmentID: sub.AssignmentID,
		SubmissionID: submissionID,
		Score:        score,
	}}, nil
}
