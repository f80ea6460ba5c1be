// Package post implements the Post repository using PostgreSQL.
package post

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

var columns = []string{
	"id", "title", "content", "tags", "categories", "images", "author_id",
	"likes", "comments", "views", "created_at", "updated_at",
}

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new post. Likes, comments and views start empty.
func (r *Repo) Create(ctx context.Context, p domain.Post) (*domain.Post, error) {
	images := p.Images
	if images == nil {
		images = []domain.PostImage{}
	}

	query, args, err := postgres.Builder().
		Insert("posts").
		Columns("id", "title", "content", "tags", "categories", "images", "author_id", "created_at", "updated_at").
		Values(p.ID, p.Title, p.Content, p.Tags, p.Categories, images, p.AuthorID, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanPost(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "post", p.ID)
	}
	return created, nil
}

// GetByID returns a post by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanPost(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	return p, nil
}

// FindManyByIDs returns the posts among ids that exist, in the order of ids.
// Duplicate and missing ids are dropped.
func (r *Repo) FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Post, error) {
	if len(ids) == 0 {
		return []domain.Post{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From("posts").
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "posts", len(ids))
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]domain.Post, len(ids))
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, postgres.MapError(err, "posts", len(ids))
		}
		byID[p.ID] = *p
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "posts", len(ids))
	}

	posts := make([]domain.Post, 0, len(byID))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			posts = append(posts, p)
			delete(byID, id)
		}
	}
	return posts, nil
}

// IncrementViews bumps the view counter by one and returns the updated post.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query, args, err := postgres.Builder().
		Update("posts").
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanPost(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	return p, nil
}

// AddLike adds userID to the post's like set unless already present and
// returns the resulting number of likes.
func (r *Repo) AddLike(ctx context.Context, postID, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Update("posts").
		Set("likes", sq.Expr(
			"CASE WHEN ?::uuid = ANY(likes) THEN likes ELSE array_append(likes, ?::uuid) END",
			userID, userID,
		)).
		Where(sq.Eq{"id": postID}).
		Suffix("RETURNING cardinality(likes)").
		ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "post", postID)
	}
	return n, nil
}

// AppendComment adds a top-level comment id to the end of the post's comment list.
func (r *Repo) AppendComment(ctx context.Context, postID, commentID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update("posts").
		Set("comments", sq.Expr(
			"CASE WHEN ?::uuid = ANY(comments) THEN comments ELSE array_append(comments, ?::uuid) END",
			commentID, commentID,
		)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": postID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "post", postID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "post", postID)
	}
	return nil
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.Tags, &p.Categories, &p.Images, &p.AuthorID,
		&p.Likes, &p.Comments, &p.Views, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Categories == nil {
		p.Categories = []string{}
	}
	if p.Images == nil {
		p.Images = []domain.PostImage{}
	}
	if p.Likes == nil {
		p.Likes = []uuid.UUID{}
	}
	if p.Comments == nil {
		p.Comments = []uuid.UUID{}
	}
	return &p, nil
}
