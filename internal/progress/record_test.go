package progress

import (
	"testing"
	"time"
)

func TestNewRecordIsEmpty(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := New("alice", "go-101", now)

	if rec.LearnerID != "alice" || rec.CourseID != "go-101" {
		t.Errorf("identity = (%s, %s), want (alice, go-101)", rec.LearnerID, rec.CourseID)
	}
	if !rec.EnrolledAt.Equal(now) {
		t.Errorf("EnrolledAt = %v, want %v", rec.EnrolledAt, now)
	}
	if len(rec.CompletedLessonIDs) != 0 || len(rec.CompletedModuleIDs) != 0 {
		t.Error("new record has completions")
	}
	if rec.OverallProgressPercent != 0 {
		t.Errorf("OverallProgressPercent = %d, want 0", rec.OverallProgressPercent)
	}
	if rec.CertificateIssued {
		t.Error("new record has certificate issued")
	}
}

func TestCloneIsDeep(t *testing.T) {
	now := time.Now()
	rec := New("alice", "go-101", now)
	rec.CompletedLessonIDs["l1"] = true
	rec.CompletedModuleIDs["m1"] = true
	rec.CertificationsEarned = []string{"m1"}
	rec.QuizAttempts = []QuizAttempt{{
		ID:      "at1",
		QuizID:  "q1",
		Answers: map[string]Answer{"qq": {Choices: []string{"a", "b"}}},
	}}
	rec.AssignmentSubmissions = []Submission{{ID: "s1", AssignmentID: "a1"}}
	issued := now
	rec.CertificateIssuedAt = &issued

	clone := rec.Clone()

	clone.CompletedLessonIDs["l2"] = true
	clone.CompletedModuleIDs["m2"] = true
	clone.CertificationsEarned = append(clone.CertificationsEarned, "m2")
	clone.QuizAttempts[0].Answers["qq"] = Answer{Choice: "z"}
	clone.AssignmentSubmissions[0].Feedback = "changed"
	*clone.CertificateIssuedAt = clone.CertificateIssuedAt.Add(time.Hour)

	if rec.CompletedLessonIDs["l2"] {
		t.Error("clone shares lesson set with original")
	}
	if rec.CompletedModuleIDs["m2"] {
		t.Error("clone shares module set with original")
	}
	if len(rec.CertificationsEarned) != 1 {
		t.Errorf("original CertificationsEarned = %v, want [m1]", rec.CertificationsEarned)
	}
	if got := rec.QuizAttempts[0].Answers["qq"]; got.Choice == "z" {
		t.Error("clone shares attempt answers with original")
	}
	if rec.AssignmentSubmissions[0].Feedback == "changed" {
		t.Error("clone shares submissions with original")
	}
	if !rec.CertificateIssuedAt.Equal(issued) {
		t.Error("clone shares issuance timestamp with original")
	}
}

func TestAttemptCount(t *testing.T) {
	rec := New("alice", "go-101", time.Now())
	rec.QuizAttempts = []QuizAttempt{
		{ID: "a", QuizID: "q1"},
		{ID: "b", QuizID: "q2"},
		{ID: "c", QuizID: "q1"},
	}

	if got := rec.AttemptCount("q1"); got != 2 {
		t.Errorf("AttemptCount(q1) = %d, want 2", got)
	}
	if got := rec.AttemptCount("q3"); got != 0 {
		t.Errorf("AttemptCount(q3) = %d, want 0", got)
	}
}

func TestLatestSubmission(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := New("alice", "go-101", base)
	rec.AssignmentSubmissions = []Submission{
		{ID: "s1", AssignmentID: "a1", SubmittedAt: base},
		{ID: "s3", AssignmentID: "a2", SubmittedAt: base.Add(3 * time.Hour)},
		{ID: "s2", AssignmentID: "a1", SubmittedAt: base.Add(time.Hour)},
	}

	latest := rec.LatestSubmission("a1")
	if latest == nil || latest.ID != "s2" {
		t.Fatalf("LatestSubmission(a1) = %+v, want s2", latest)
	}
	if rec.LatestSubmission("a9") != nil {
		t.Error("LatestSubmission(a9) != nil for unknown assignment")
	}
}

func TestSubmissionByID(t *testing.T) {
	rec := New("alice", "go-101", time.Now())
	rec.AssignmentSubmissions = []Submission{{ID: "s1"}, {ID: "s2"}}

	if got := rec.SubmissionByID("s2"); got != 1 {
		t.Errorf("SubmissionByID(s2) = %d, want 1", got)
	}
	if got := rec.SubmissionByID("nope"); got != -1 {
		t.Errorf("SubmissionByID(nope) = %d, want -1", got)
	}
}

func TestValidSubmissionKind(t *testing.T) {
	for _, k := range []SubmissionKind{SubmissionFileURL, SubmissionText, SubmissionLink} {
		if !ValidSubmissionKind(k) {
			t.Errorf("ValidSubmissionKind(%s) = false", k)
		}
	}
	if ValidSubmissionKind("zip") {
		t.Error("ValidSubmissionKind(zip) = true")
	}
}
