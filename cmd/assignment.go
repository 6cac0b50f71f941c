package cmd

import (
	"github.com/spf13/cobra"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
)

var assignmentCmd = &cobra.Command{
	Use:   "assignment",
	Short: "Submit and grade assignments",
}

var assignmentSubmitCmd = &cobra.Command{
	Use:   "submit <assignment-id>",
	Short: "Submit an assignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		body, _ := cmd.Flags().GetString("body")

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

		next, events, err := a.engine.SubmitAssignment(a.chain, rec, args[0], progress.SubmissionKind(kind), body)
		if err != nil {
			return err
		}
		return a.saveAndNotify(ctx, cmd, next, events)
	},
}

var assignmentGradeCmd = &cobra.Command{
	Use:   "grade <submission-id>",
	Short: "Apply an instructor's grade to a submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, _ := cmd.Flags().GetInt("score")
		feedback, _ := cmd.Flags().GetString("feedback")

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

		next, events, err := a.engine.ApplyGrade(rec, args[0], score, feedback)
		if err != nil {
			return err
		}
		return a.saveAndNotify(ctx, cmd, next, events)
	},
}

func init() {
	assignmentSubmitCmd.Flags().String("kind", string(progress.SubmissionText), "Submission kind (file-url, text, link)")
	assignmentSubmitCmd.Flags().String("body", "", "Submission body: text content, file URL or link")
	_ = assignmentSubmitCmd.MarkFlagRequired("body")

	assignmentGradeCmd.Flags().Int("score", 0, "Score to record")
	assignmentGradeCmd.Flags().String("feedback", "", "Instructor feedback")
	_ = assignmentGradeCmd.MarkFlagRequired("score")

	assignmentCmd.AddCommand(assignmentSubmitCmd)
	assignmentCmd.AddCommand(assignmentGradeCmd)
}
