package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
)

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	barFill     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6"))
	barEmptyChr = "░"
	barFillChr  = "█"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the learner's progress through the course",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		rec, err := a.loadRecord(cmd.Context())
		if err != nil {
			return err
		}

		if err := rec.CheckConsistency(a.chain); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(a.course.Title))
		fmt.Fprintf(out, "%s  %d%%\n\n", progressBar(rec.OverallProgressPercent, 40), rec.OverallProgressPercent)

		for _, mod := range a.chain.Modules() {
			header := mod.Title
			if header == "" {
				header = mod.ID
			}
			if rec.HasModule(mod.ID) {
				fmt.Fprintln(out, doneStyle.Render("★ "+header+" (certificate earned)"))
			} else {
				fmt.Fprintln(out, titleStyle.Render(header))
			}
			for _, les := range mod.Lessons {
				mark := dimStyle.Render("·")
				if rec.HasLesson(les.ID) {
					mark = doneStyle.Render("✓")
				} else if unlocked, _ := a.engine.IsUnlocked(a.chain, rec, les.ID); !unlocked {
					mark = dimStyle.Render("🔒")
				}
				fmt.Fprintf(out, "  %s %s\n", mark, les.Title)
			}
		}

		printAttempts(out, rec)
		if rec.CertificateIssued && rec.CertificateIssuedAt != nil {
			fmt.Fprintf(out, "\nDiploma issued %s\n", rec.CertificateIssuedAt.Format("2 Jan 2006"))
		}
		return nil
	},
}

func progressBar(percent, width int) string {
	filled := width * percent / 100
	if filled > width {
		filled = width
	}
	return barFill.Render(strings.Repeat(barFillChr, filled)) +
		dimStyle.Render(strings.Repeat(barEmptyChr, width-filled))
}

func printAttempts(out io.Writer, rec *progress.Record) {
	if len(rec.QuizAttempts) == 0 && len(rec.AssignmentSubmissions) == 0 {
		return
	}
	fmt.Fprintln(out)
	for _, at := range rec.QuizAttempts {
		status := "failed"
		if at.Passed {
			status = "passed"
		}
		fmt.Fprintf(out, "quiz %s: %d%% (%s) at %s\n",
			at.QuizID, at.Score, status, at.SubmittedAt.Format("2 Jan 15:04"))
	}
	for _, sub := range rec.AssignmentSubmissions {
		line := fmt.Sprintf("assignment %s: %s (%s)", sub.AssignmentID, sub.Status, sub.Kind)
		if sub.Score != nil {
			line += fmt.Sprintf(", score %d", *sub.Score)
		}
		fmt.Fprintln(out, line)
	}
}
