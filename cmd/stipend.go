package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/engine"
)

var stipendCmd = &cobra.Command{
	Use:   "stipend",
	Short: "Show the stipend schedule derived from module completion",
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

		rate := viperForCmd(cmd).GetInt64("monthly-rate")
		st := engine.ComputeStipend(rec, rate)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Modules completed: %d\n", rec.CompletedModuleCount())
		fmt.Fprintf(out, "Program months:    %d\n", st.MonthsCompleted)
		fmt.Fprintf(out, "Total stipend:     %d\n", st.TotalStipend)
		return nil
	},
}
