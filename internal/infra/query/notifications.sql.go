package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateNotificationJobParams struct {
	Kind       string
	Topic      string
	MessageKey string
	Payload    []byte
	RunAt      pgtype.Timestamptz
}

const createNotificationJob = `
INSERT INTO notification_jobs (kind, topic, message_key, payload, run_at)
VALUES ($1, $2, $3, $4, $5)
`

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.MessageKey, arg.Payload, arg.RunAt)
	return err
}

type NotificationJobRow struct {
	ID         uuid.UUID
	Kind       string
	Topic      string
	MessageKey string
	Payload    []byte
	RunAt      pgtype.Timestamptz
}

type ClaimNotificationJobsParams struct {
	Now   pgtype.Timestamptz
	Limit int32
}

// SKIP LOCKED lets several relays share the table.
const claimNotificationJobs = `
SELECT id, kind, topic, message_key, payload, run_at
FROM notification_jobs
WHERE published_at IS NULL AND run_at <= $1
ORDER BY run_at, id
LIMIT $2
FOR UPDATE SKIP LOCKED
`

func (q *Queries) ClaimNotificationJobs(ctx context.Context, db DBTX, arg ClaimNotificationJobsParams) ([]NotificationJobRow, error) {
	rows, err := db.Query(ctx, claimNotificationJobs, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (NotificationJobRow, error) {
		var j NotificationJobRow
		err := row.Scan(&j.ID, &j.Kind, &j.Topic, &j.MessageKey, &j.Payload, &j.RunAt)
		return j, err
	})
}

const markNotificationJobsPublished = `
UPDATE notification_jobs SET published_at = $2
WHERE id = ANY($1::uuid[])
`

func (q *Queries) MarkNotificationJobsPublished(ctx context.Context, db DBTX, ids []pgtype.UUID, at pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markNotificationJobsPublished, ids, at)
	return err
}
