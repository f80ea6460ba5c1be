// Package notification implements the Notification repository using PostgreSQL.
package notification

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/teamhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

var columns = []string{"id", "user_id", "type", "message", "read", "post_id", "created_at"}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a notification.
func (r *Repo) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	query, args, err := postgres.Builder().
		Insert("notifications").
		Columns("id", "user_id", "type", "message", "read", "post_id", "created_at").
		Values(n.ID, n.UserID, string(n.Type), n.Message, n.Read, n.PostID, n.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanNotification(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "notification", n.ID)
	}
	return created, nil
}

// ListByUser returns up to limit notifications of the user, newest first.
// Ties on created_at are broken by id to keep the order deterministic.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "notifications of user", userID)
	}
	defer rows.Close()

	out := make([]domain.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, postgres.MapError(err, "notifications of user", userID)
		}
		out = append(out, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "notifications of user", userID)
	}
	return out, nil
}

// MarkRead flags a notification as read. Notifications owned by other users
// are reported as not found.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update("notifications").
		Set("read", true).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "notification", id)
	}
	return nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var (
		n     domain.Notification
		ntype string
	)
	if err := row.Scan(&n.ID, &n.UserID, &ntype, &n.Message, &n.Read, &n.PostID, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.Type = domain.NotificationType(ntype)
	return &n, nil
}
