package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/curriculum"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/engine"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/notify"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
	"github.com/EtaileddigitalIndia/lms5-sub000/internal/store"
)

// app bundles everything a command needs: the open store, the parsed
// curriculum and the learner identity.
type app struct {
	store     *store.Store
	repo      store.ProgressRepo
	engine    *engine.Service
	course    *curriculum.Course
	chain     *curriculum.Chain
	learnerID string
}

// openApp opens the store and loads the curriculum from the configured
// paths. The returned cleanup closes the store.
func openApp(cmd *cobra.Command) (*app, func(), error) {
	v := viperForCmd(cmd)

	learnerID := v.GetString("learner")
	if learnerID == "" {
		return nil, nil, fmt.Errorf("a learner id is required (--learner or LMS5_LEARNER)")
	}

	coursePath := v.GetString("course")
	course, chain, err := curriculum.Load(coursePath)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("curriculum loaded", "path", coursePath, "course", course.ID, "lessons", chain.TotalLessons())

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("store opened", "path", dbPath)

	a := &app{
		store:     st,
		repo:      st.ProgressRepo(),
		engine:    engine.NewService(nil),
		course:    course,
		chain:     chain,
		learnerID: learnerID,
	}
	return a, func() { st.Close() }, nil
}

// loadRecord fetches the learner's progress record for the loaded course.
func (a *app) loadRecord(ctx context.Context) (*progress.Record, error) {
	rec, err := a.repo.Load(ctx, a.learnerID, a.course.ID)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// saveAndNotify persists the new record and forwards the events.
func (a *app) saveAndNotify(ctx context.Context, cmd *cobra.Command, rec *progress.Record, events []engine.Event) error {
	if err := a.repo.Save(ctx, rec); err != nil {
		return err
	}
	notify.Console{Out: cmd.OutOrStdout()}.Notify(events)
	return nil
}
