package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/store"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Enroll the learner in the course",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		if _, err := a.loadRecord(ctx); err == nil {
			return fmt.Errorf("learner %q is already enrolled in %q", a.learnerID, a.course.ID)
		} else if !errors.Is(err, store.ErrNotEnrolled) {
			return err
		}

		rec := progress.New(a.learnerID, a.course.ID, time.Now().UTC())
		if err := a.repo.Save(ctx, rec); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Enrolled %s in %s (%d lessons)\n",
			a.learnerID, a.course.Title, a.chain.TotalLessons())
		return nil
	},
}
