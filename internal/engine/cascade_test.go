package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/curriculum"
)

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	return kinds
}

func TestCompleteLessonEmitsLessonCompleted(t *testing.T) {
	svc := testService()
	chain := testChain()

	next, events, err := svc.CompleteLesson(chain, newRecord(), "l1")
	if err != nil {
		t.Fatalf("CompleteLesson() error = %v", err)
	}
	if !next.HasLesson("l1") {
		t.Error("l1 not in completed set")
	}
	if want := []EventKind{EventLessonCompleted}; !reflect.DeepEqual(eventKinds(events), want) {
		t.Errorf("events = %v, want %v", eventKinds(events), want)
	}
	if next.OverallProgressPercent != 25 {
		t.Errorf("percent = %d, want 25", next.OverallProgressPercent)
	}
}

func TestCompleteLessonIdempotent(t *testing.T) {
	svc := testService()
	chain := testChain()

	first, _, err := svc.CompleteLesson(chain, newRecord(), "l1")
	if err != nil {
		t.Fatal(err)
	}
	second, events, err := svc.CompleteLesson(chain, first, "l1")
	if err != nil {
		t.Fatalf("second CompleteLesson() error = %v", err)
	}
	if second != first {
		t.Error("idempotent call did not return the input record")
	}
	if len(events) != 0 {
		t.Errorf("idempotent call emitted %v", eventKinds(events))
	}
}

func TestCompleteLessonDoesNotMutateInput(t *testing.T) {
	svc := testService()
	chain := testChain()
	rec := newRecord()

	_, _, err := svc.CompleteLesson(chain, rec, "l1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.HasLesson("l1") {
		t.Error("input record was mutated")
	}
	if rec.OverallProgressPercent != 0 {
		t.Errorf("input percent = %d, want 0", rec.OverallProgressPercent)
	}
}

func TestModuleCascade(t *testing.T) {
	svc := testService()
	chain := testChain()
	rec := newRecord()

	rec, _, err := svc.CompleteLesson(chain, rec, "l1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.HasModule("m1") {
		t.Error("m1 complete with one lesson remaining")
	}

	rec, events, err := svc.CompleteLesson(chain, rec, "l2")
	if err != nil {
		t.Fatal(err)
	}
	if !rec.HasModule("m1") {
		t.Error("m1 not complete after both lessons")
	}
	want := []EventKind{EventLessonCompleted, EventModuleCompleted}
	if !reflect.DeepEqual(eventKinds(events), want) {
		t.Errorf("events = %v, want %v", eventKinds(events), want)
	}
	if events[1].ModuleID != "m1" {
		t.Errorf("module event for %q, want m1", events[1].ModuleID)
	}
	if !reflect.DeepEqual(rec.CertificationsEarned, []string{"m1"}) {
		t.Errorf("CertificationsEarned = %v, want [m1]", rec.CertificationsEarned)
	}

	// A redundant third call must not duplicate the certification.
	again, events, err := svc.CompleteLesson(chain, rec, "l2")
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Errorf("redundant call emitted %v", eventKinds(events))
	}
	if len(again.CertificationsEarned) != 1 {
		t.Errorf("CertificationsEarned = %v, want exactly one entry", again.CertificationsEarned)
	}
}

func TestDiplomaFiresOnceOnFinalLesson(t *testing.T) {
	svc := testService()
	chain := testChain()
	rec := newRecord()

	for _, id := range []string{"l1", "l2", "l3"} {
		next, _, err := svc.CompleteLesson(chain, rec, id)
		if err != nil {
			t.Fatal(err)
		}
		rec = next
	}
	if rec.CertificateIssued {
		t.Fatal("diploma issued before the final lesson")
	}

	rec, events, err := svc.CompleteLesson(chain, rec, "l4")
	if err != nil {
		t.Fatal(err)
	}
	want := []EventKind{EventLessonCompleted, EventModuleCompleted, EventDiplomaEarned}
	if !reflect.DeepEqual(eventKinds(events), want) {
		t.Errorf("events = %v, want %v", eventKinds(events), want)
	}
	if rec.OverallProgressPercent != 100 {
		t.Errorf("percent = %d, want 100", rec.OverallProgressPercent)
	}
	if !rec.CertificateIssued {
		t.Fatal("certificate not issued at 100%")
	}
	if rec.CertificateIssuedAt == nil || !rec.CertificateIssuedAt.Equal(testNow) {
		t.Errorf("CertificateIssuedAt = %v, want %v", rec.CertificateIssuedAt, testNow)
	}

	// A subsequent no-op call emits nothing.
	_, events, err = svc.CompleteLesson(chain, rec, "l4")
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Errorf("post-diploma no-op emitted %v", eventKinds(events))
	}
}

func TestProgressPercentMonotonic(t *testing.T) {
	svc := testService()
	chain := testChain()
	rec := newRecord()

	last := 0
	for _, id := range chain.LessonOrder() {
		next, _, err := svc.CompleteLesson(chain, rec, id)
		if err != nil {
			t.Fatal(err)
		}
		if next.OverallProgressPercent < last {
			t.Errorf("percent dropped from %d to %d", last, next.OverallProgressPercent)
		}
		if len(next.CompletedLessonIDs) < len(rec.CompletedLessonIDs) {
			t.Error("completed lesson set shrank")
		}
		if len(next.CompletedModuleIDs) < len(rec.CompletedModuleIDs) {
			t.Error("completed module set shrank")
		}
		last = next.OverallProgressPercent
		rec = next
	}
}

func TestCompleteLessonUnknownLesson(t *testing.T) {
	svc := testService()
	_, _, err := svc.CompleteLesson(testChain(), newRecord(), "ghost")

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}

// A 25-lesson course at 24/25 (96%) must jump to 100 and emit exactly one
// diploma event on the final completion.
func TestDiplomaFromNinetySixPercent(t *testing.T) {
	lessons := make([]curriculum.Lesson, 25)
	for i := range lessons {
		lessons[i] = curriculum.Lesson{ID: lessonID(i), Order: i + 1}
	}
	course := &curriculum.Course{
		ID:      "big",
		Modules: []curriculum.Module{{ID: "m1", Order: 1, Lessons: lessons}},
	}
	chain := curriculum.NewChain(course)

	svc := testService()
	rec := newRecord()
	for i := 0; i < 24; i++ {
		next, _, err := svc.CompleteLesson(chain, rec, lessonID(i))
		if err != nil {
			t.Fatal(err)
		}
		rec = next
	}
	if rec.OverallProgressPercent != 96 {
		t.Fatalf("percent = %d, want 96", rec.OverallProgressPercent)
	}

	rec, events, err := svc.CompleteLesson(chain, rec, lessonID(24))
	if err != nil {
		t.Fatal(err)
	}
	if rec.OverallProgressPercent != 100 {
		t.Errorf("percent = %d, want 100", rec.OverallProgressPercent)
	}
	diplomas := 0
	for _, ev := range events {
		if ev.Kind == EventDiplomaEarned {
			diplomas++
		}
	}
	if diplomas != 1 {
		t.Errorf("diploma events = %d, want 1", diplomas)
	}
}

func lessonID(i int) string {
	return "l" + string(rune('A'+i))
}
