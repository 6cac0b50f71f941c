package engine

import (
	"testing"
	"time"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/curriculum"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
)

// fixedClock always returns the same instant.
type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func testService() *Service {
	return NewService(fixedClock(testNow))
}

// testChain builds m1:[l1 l2] m2:[l3 l4] with a quiz on l2 and an
// assignment on l3.
func testChain() *curriculum.Chain {
	course := &curriculum.Course{
		ID:    "go-101",
		Title: "Intro to Go",
		Modules: []curriculum.Module{
			{ID: "m1", Order: 1, Lessons: []curriculum.Lesson{
				{ID: "l1", Order: 1},
				{ID: "l2", Order: 2, Quiz: &curriculum.Quiz{
					ID:           "q1",
					PassingScore: 70,
					MaxAttempts:  3,
					Questions: []curriculum.Question{
						{ID: "q1-1", Kind: curriculum.KindSingleChoice, CorrectAnswer: "b", Points: 5},
						{ID: "q1-2", Kind: curriculum.KindSingleChoice, CorrectAnswer: "d", Points: 5},
					},
				}},
			}},
			{ID: "m2", Order: 2, Lessons: []curriculum.Lesson{
				{ID: "l3", Order: 1, Assignment: &curriculum.Assignment{ID: "a1"}},
				{ID: "l4", Order: 2},
			}},
		},
	}
	return curriculum.NewChain(course)
}

func newRecord() *progress.Record {
	return progress.New("alice", "go-101", testNow.Add(-24*time.Hour))
}

func TestNewServiceDefaultsToSystemClock(t *testing.T) {
	svc := NewService(nil)
	if svc.clock == nil {
		t.Fatal("nil clock not defaulted")
	}
	now := svc.clock.Now()
	if time.Since(now) > time.Minute || time.Since(now) < -time.Minute {
		t.Errorf("system clock Now() = %v, far from wall clock", now)
	}
}
