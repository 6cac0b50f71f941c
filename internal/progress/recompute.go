package progress

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/curriculum"
)

// Recompute re-derives the stored module set and overall percentage from
// the completed lesson set. It only ever adds module ids (lesson completion
// is monotonic, so a complete module can never become incomplete) and does
// not touch CertificationsEarned, whose order is owned by the cascade.
func (r *Record) Recompute(chain *curriculum.Chain) {
	for _, mod := range chain.Modules() {
		if r.CompletedModuleIDs[mod.ID] {
			continue
		}
		if r.moduleLessonsDone(&mod) {
			r.CompletedModuleIDs[mod.ID] = true
		}
	}
	r.OverallProgressPercent = percent(len(r.CompletedLessonIDs), chain.TotalLessons())
}

// CheckConsistency derives the module set and percentage from scratch and
// compares them against the stored values, returning an error describing
// any drift.
func (r *Record) CheckConsistency(chain *curriculum.Chain) error {
	var problems []string

	derived := make(map[string]bool)
	for _, mod := range chain.Modules() {
		if r.moduleLessonsDone(&mod) {
			derived[mod.ID] = true
		}
	}
	for id := range derived {
		if !r.CompletedModuleIDs[id] {
			problems = append(problems, fmt.Sprintf("module %q complete but missing from stored set", id))
		}
	}
	for id := range r.CompletedModuleIDs {
		if !derived[id] {
			problems = append(problems, fmt.Sprintf("module %q stored as complete but has unfinished lessons", id))
		}
	}

	if want := percent(len(r.CompletedLessonIDs), chain.TotalLessons()); r.OverallProgressPercent != want {
		problems = append(problems, fmt.Sprintf("overall percent is %d, derived %d", r.OverallProgressPercent, want))
	}
	// The reverse direction is allowed: an issued certificate survives a
	// later curriculum extension that drops the percentage below 100.
	if !r.CertificateIssued && r.OverallProgressPercent == 100 && chain.TotalLessons() > 0 {
		problems = append(problems, "course at 100% but certificate not issued")
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("inconsistent progress record:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

func (r *Record) moduleLessonsDone(mod *curriculum.Module) bool {
	for _, l := range mod.Lessons {
		if !r.CompletedLessonIDs[l.ID] {
			return false
		}
	}
	return true
}

func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
