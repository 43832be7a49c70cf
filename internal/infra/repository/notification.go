package repository

import (
	"context"
	"time"

	"club-booking/internal/infra"
	"club-booking/internal/infra/query"
	"club-booking/internal/pkg/pgconv"
	"club-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db query.DBTX, arg query.CreateNotificationJobParams) error
	ClaimNotificationJobs(ctx context.Context, db query.DBTX, arg query.ClaimNotificationJobsParams) ([]query.NotificationJobRow, error)
	MarkNotificationJobsPublished(ctx context.Context, db query.DBTX, ids []pgtype.UUID, at pgtype.Timestamptz) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      query.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db query.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, job shared.NotificationJob) error {
	params := query.CreateNotificationJobParams{
		Kind:       job.Kind,
		Topic:      job.Topic,
		MessageKey: job.Key,
		Payload:    job.Payload,
		RunAt:      pgconv.TimeToPgtype(job.RunAt),
	}

	err := r.queries.CreateNotificationJob(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue row-locks up to limit unpublished jobs due at now.
func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimNotificationJobs(ctx, r.db, query.ClaimNotificationJobsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:      row.ID,
			Kind:    row.Kind,
			Topic:   row.Topic,
			Key:     row.MessageKey,
			Payload: row.Payload,
			RunAt:   pgconv.TimeFromPgtype(row.RunAt),
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.queries.MarkNotificationJobsPublished(ctx, r.db, pgconv.UUIDsToPgtype(ids), pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification jobs published", err)
	}
	return nil
}
