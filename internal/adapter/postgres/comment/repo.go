// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/teamhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

var columns = []string{
	"id", "post_id", "author_id", "content", "type", "upvotes", "replies", "created_at",
}

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new comment with no upvotes and no replies.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	query, args, err := postgres.Builder().
		Insert("comments").
		Columns("id", "post_id", "author_id", "content", "type", "created_at").
		Values(c.ID, c.PostID, c.AuthorID, c.Content, string(c.Type), c.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanComment(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}
	return created, nil
}

// GetByID returns a comment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("comments").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	c, err := scanComment(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return c, nil
}

// GetByIDs fetches all existing comments among ids in one round trip.
// The result order is unspecified; missing ids are absent.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Comment, error) {
	if len(ids) == 0 {
		return []domain.Comment{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From("comments").
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "comments", len(ids))
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0, len(ids))
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, postgres.MapError(err, "comments", len(ids))
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "comments", len(ids))
	}
	return comments, nil
}

// AppendReply adds childID to the end of the parent's reply list.
// Appending an id that is already present is a no-op.
func (r *Repo) AppendReply(ctx context.Context, parentID, childID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update("comments").
		Set("replies", sq.Expr(
			"CASE WHEN ?::uuid = ANY(replies) THEN replies ELSE array_append(replies, ?::uuid) END",
			childID, childID,
		)).
		Where(sq.Eq{"id": parentID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "comment", parentID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "comment", parentID)
	}
	return nil
}

// Upvote adds userID to the comment's upvote set. It returns the resulting
// number of upvotes and whether this call changed the set.
func (r *Repo) Upvote(ctx context.Context, commentID, userID uuid.UUID) (int, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Update("comments").
		Set("upvotes", sq.Expr("array_append(upvotes, ?::uuid)", userID)).
		Where(sq.Eq{"id": commentID}).
		Where("NOT (?::uuid = ANY(upvotes))", userID).
		Suffix("RETURNING cardinality(upvotes)").
		ToSql()
	if err != nil {
		return 0, false, err
	}

	var n int
	err = q.QueryRow(ctx, query, args...).Scan(&n)
	if err == nil {
		return n, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, postgres.MapError(err, "comment", commentID)
	}

	// Either already upvoted or absent.
	query, args, err = postgres.Builder().
		Select("cardinality(upvotes)").
		From("comments").
		Where(sq.Eq{"id": commentID}).
		ToSql()
	if err != nil {
		return 0, false, err
	}
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, false, postgres.MapError(err, "comment", commentID)
	}
	return n, false, nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var (
		c     domain.Comment
		ctype string
	)
	err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Content, &ctype, &c.Upvotes, &c.Replies, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.Type = domain.CommentType(ctype)
	if c.Upvotes == nil {
		c.Upvotes = []uuid.UUID{}
	}
	if c.Replies == nil {
		c.Replies = []uuid.UUID{}
	}
	return &c, nil
}
