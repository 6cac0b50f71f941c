package progress

import "time"

// Record tracks one learner's progress through one course. Engine
// operations never mutate a Record in place: they clone it, apply the
// change and return the new copy, so callers can diff old against new.
type Record struct {
	LearnerID  string    `json:"learner_id"`
	CourseID   string    `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`

	CompletedLessonIDs map[string]bool `json:"completed_lesson_ids"`
	// CompletedModuleIDs is derived from CompletedLessonIDs but persisted
	// for fast reads. Recompute keeps it consistent on every mutation.
	CompletedModuleIDs map[string]bool `json:"completed_module_ids"`

	QuizAttempts          []QuizAttempt `json:"quiz_attempts"`
	AssignmentSubmissions []Submission  `json:"assignment_submissions"`

	OverallProgressPercent int `json:"overall_progress_percent"`

	CertificateIssued   bool       `json:"certificate_issued"`
	CertificateIssuedAt *time.Time `json:"certificate_issued_at,omitempty"`

	// CertificationsEarned lists module ids in completion order.
	CertificationsEarned []string `json:"certifications_earned"`
}

// New creates the empty progress record written at enrollment.
func New(learnerID, courseID string, now time.Time) *Record {
	return &Record{
		LearnerID:          learnerID,
		CourseID:           courseID,
		EnrolledAt:         now,
		CompletedLessonIDs: make(map[string]bool),
		CompletedModuleIDs: make(map[string]bool),
	}
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	out := *r

	out.CompletedLessonIDs = make(map[string]bool, len(r.CompletedLessonIDs))
	for id := range r.CompletedLessonIDs {
		out.CompletedLessonIDs[id] = true
	}
	out.CompletedModuleIDs = make(map[string]bool, len(r.CompletedModuleIDs))
	for id := range r.CompletedModuleIDs {
		out.CompletedModuleIDs[id] = true
	}

	out.QuizAttempts = make([]QuizAttempt, len(r.QuizAttempts))
	copy(out.QuizAttempts, r.QuizAttempts)
	for i := range out.QuizAttempts {
		out.QuizAttempts[i].Answers = cloneAnswers(out.QuizAttempts[i].Answers)
	}

	out.AssignmentSubmissions = make([]Submission, len(r.AssignmentSubmissions))
	copy(out.AssignmentSubmissions, r.AssignmentSubmissions)

	out.CertificationsEarned = make([]string, len(r.CertificationsEarned))
	copy(out.CertificationsEarned, r.CertificationsEarned)

	if r.CertificateIssuedAt != nil {
		t := *r.CertificateIssuedAt
		out.CertificateIssuedAt = &t
	}
	return &out
}

// HasLesson reports whether a lesson is completed.
func (r *Record) HasLesson(lessonID string) bool {
	return r.CompletedLessonIDs[lessonID]
}

// HasModule reports whether a module is completed.
func (r *Record) HasModule(moduleID string) bool {
	return r.CompletedModuleIDs[moduleID]
}

// CompletedModuleCount returns the number of completed modules.
func (r *Record) CompletedModuleCount() int {
	return len(r.CompletedModuleIDs)
}

// AttemptCount returns the number of recorded attempts for a quiz.
func (r *Record) AttemptCount(quizID string) int {
	n := 0
	for _, a := range r.QuizAttempts {
		if a.QuizID == quizID {
			n++
		}
	}
	return n
}

// LatestSubmission returns the most recent submission for an assignment,
// by SubmittedAt, or nil if there is none.
func (r *Record) LatestSubmission(assignmentID string) *Submission {
	var latest *Submission
	for i := range r.AssignmentSubmissions {
		s := &r.AssignmentSubmissions[i]
		if s.AssignmentID != assignmentID {
			continue
		}
		if latest == nil || s.SubmittedAt.After(latest.SubmittedAt) {
			latest = s
		}
	}
	return latest
}

// SubmissionByID returns the index of a submission in the record,
// or -1 if the id is unknown.
func (r *Record) SubmissionByID(submissionID string) int {
	for i := range r.AssignmentSubmissions {
		if r.AssignmentSubmissions[i].ID == submissionID {
			return i
		}
	}
	return -1
}

func cloneAnswers(in map[string]Answer) map[string]Answer {
	if in == nil {
		return nil
	}
	out := make(map[string]Answer, len(in))
	for k, v := range in {
		if v.Choices != nil {
			choices := make([]string, len(v.Choices))
			copy(choices, v.Choices)
			v.Choices = choices
		}
		out[k] = v
	}
	return out
}
