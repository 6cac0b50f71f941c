// Package notify delivers engine events to the learner. The engine only
// returns events; the CLI forwards them here.
package notify

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/engine"
)

// Notifier receives the ordered event list an engine operation returned.
type Notifier interface {
	Notify(events []engine.Event)
}

var (
	success = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	failure = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F43F5E"))
	info    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// Console writes one toast line per event.
type Console struct {
	Out io.Writer
}

func (c Console) Notify(events []engine.Event) {
	for _, ev := range events {
		fmt.Fprintln(c.Out, toast(ev))
	}
}

func toast(ev engine.Event) string {
	switch ev.Kind {
	case engine.EventLessonCompleted:
		return success.Render("✓") + " Lesson completed: " + ev.LessonID
	case engine.EventModuleCompleted:
		return success.Render("★") + " Module completed, certificate earned: " + ev.ModuleID
	case engine.EventDiplomaEarned:
		return success.Render("🎓 Course complete! Diploma earned.")
	case engine.EventQuizPassed:
		return success.Render("✓") + fmt.Sprintf(" Quiz passed with %d%%", ev.Score)
	case engine.EventQuizFailed:
		return failure.Render("✗") + fmt.Sprintf(" Quiz failed with %d%%", ev.Score)
	case engine.EventAssignmentSubmitted:
		return info.Render("→") + " Assignment submitted: " + ev.AssignmentID
	case engine.EventAssignmentGraded:
		return success.Render("✓") + fmt.Sprintf(" Assignment graded: %d", ev.Score)
	default:
		return info.Render(string(ev.Kind))
	}
}
