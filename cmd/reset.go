package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the learner's progress record for the course",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("reset deletes all progress; re-run with --yes to confirm")
		}

		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := a.repo.Delete(cmd.Context(), a.learnerID, a.course.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Progress for %s in %s deleted.\n", a.learnerID, a.course.ID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
