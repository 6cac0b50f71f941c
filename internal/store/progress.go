package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
)

// progressRepo stores each record as a JSON document keyed by the
// (learner, course) pair. The record is read, modified and written as a
// unit; concurrent writers are last-write-wins.
type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Load(ctx context.Context, learnerID, courseID string) (*progress.Record, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT record FROM progress_records WHERE learner_id = ? AND course_id = ?`,
		learnerID, courseID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotEnrolled
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	var rec progress.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode progress record: %w", err)
	}
	if rec.CompletedLessonIDs == nil {
		rec.CompletedLessonIDs = make(map[string]bool)
	}
	if rec.CompletedModuleIDs == nil {
		rec.CompletedModuleIDs = make(map[string]bool)
	}
	return &rec, nil
}

func (r *progressRepo) Save(ctx context.Context, rec *progress.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode progress record: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO progress_records (learner_id, course_id, record, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (learner_id, course_id) DO UPDATE SET
		   record = excluded.record,
		   updated_at = excluded.updated_at`,
		rec.LearnerID, rec.CourseID, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Delete(ctx context.Context, learnerID, courseID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM progress_records WHERE learner_id = ? AND course_id = ?`,
		learnerID, courseID,
	)
	if err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

func (r *progressRepo) List(ctx context.Context, learnerID string) ([]*progress.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT record FROM progress_records WHERE learner_id = ? ORDER BY course_id`,
		learnerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	var records []*progress.Record
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		var rec progress.Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decode progress record: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
