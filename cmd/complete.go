package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/certificate"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/engine"
)

var completeCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "Mark a lesson complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID := args[0]

		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		rec, err := a.loadRecord(ctx)
		if err != nil {
			return err
		}

		unlocked, err := a.engine.IsUnlocked(a.chain, rec, lessonID)
		if err != nil {
			return err
		}
		if !unlocked {
			return fmt.Errorf("lesson %q is locked: complete the previous lesson first", lessonID)
		}

		next, events, err := a.engine.CompleteLesson(a.chain, rec, lessonID)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Lesson already completed.")
			return nil
		}

		if err := a.saveAndNotify(ctx, cmd, next, events); err != nil {
			return err
		}
		return renderCertificates(cmd, a, events)
	},
}

// renderCertificates prints a plaque for each certificate-earning event.
func renderCertificates(cmd *cobra.Command, a *app, events []engine.Event) error {
	name := viperForCmd(cmd).GetString("learner-name")
	if name == "" {
		name = a.learnerID
	}
	renderer := certificate.TextRenderer{}
	out := cmd.OutOrStdout()

	for _, ev := range events {
		var achievement string
		switch ev.Kind {
		case engine.EventModuleCompleted:
			if mod, ok := a.chain.Module(ev.ModuleID); ok && mod.Title != "" {
				achievement = "Certificate: " + mod.Title
			} else {
				achievement = "Certificate: " + ev.ModuleID
			}
		case engine.EventDiplomaEarned:
			achievement = "Diploma: " + a.course.Title
		default:
			continue
		}

		doc, err := renderer.Render(name, achievement, time.Now().UTC())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, doc.Body)
	}
	return nil
}
