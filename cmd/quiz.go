package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/engine"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <quiz-id>",
	Short: "Submit a quiz attempt",
	Long: "Submit a quiz attempt. Answers are given as repeated --answer flags:\n" +
		"  --answer q1=b            single-choice, true-false or free-text\n" +
		"  --answer q2=a,c          multi-choice (comma-separated set)",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quizID := args[0]

		raw, err := cmd.Flags().GetStringArray("answer")
		if err != nil {
			return err
		}
		answers, err := parseAnswers(raw)
		if err != nil {
			return err
		}

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

		quiz, ok := a.chain.Quiz(quizID)
		if ok {
			if left := quiz.MaxAttempts - rec.AttemptCount(quizID); left > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Attempt %d of %d\n", quiz.MaxAttempts-left+1, quiz.MaxAttempts)
			}
		}

		next, events, err := a.engine.GradeQuiz(a.chain, rec, quizID, engine.QuizSubmission{Answers: answers})
		if err != nil {
			return err
		}
		return a.saveAndNotify(ctx, cmd, next, events)
	},
}

func init() {
	quizCmd.Flags().StringArray("answer", nil, "Answer as question-id=value (repeatable; comma-separate multi-choice values)")
}

// parseAnswers turns "q1=b" / "q2=a,c" pairs into an answer map. A value
// containing commas is treated as a multi-choice answer set.
func parseAnswers(raw []string) (map[string]progress.Answer, error) {
	answers := make(map[string]progress.Answer, len(raw))
	for _, pair := range raw {
		qid, value, found := strings.Cut(pair, "=")
		if !found || qid == "" {
			return nil, fmt.Errorf("malformed answer %q: want question-id=value", pair)
		}
		if strings.Contains(value, ",") {
			answers[qid] = progress.Answer{Choices: strings.Split(value, ",")}
		} else {
			answers[qid] = progress.Answer{Choice: value}
		}
	}
	return answers, nil
}
