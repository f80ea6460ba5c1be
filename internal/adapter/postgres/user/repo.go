// Package user implements the User repository using PostgreSQL.
package user

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
	"id", "email", "first_name", "last_name", "avatar_url", "department", "verified",
	"password_hash", "badges_gold", "badges_silver", "bookmarks", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by (already normalized) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, err
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// GetByIDs returns the users that exist among ids, in no particular order.
// Missing ids are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From("users").
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "users", len(ids))
	}
	defer rows.Close()

	users := make([]domain.User, 0, len(ids))
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, postgres.MapError(err, "users", len(ids))
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "users", len(ids))
	}
	return users, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert("users").
		Columns("id", "email", "first_name", "last_name", "avatar_url", "department",
			"verified", "password_hash", "created_at", "updated_at").
		Values(u.ID, u.Email, u.FirstName, u.LastName, u.AvatarURL, u.Department,
			u.Verified, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// AddBookmark appends postID to the user's bookmarks unless it is already
// present. The membership check and the append happen in one UPDATE, so
// concurrent calls with the same pair leave exactly one entry.
// Returns the resulting bookmark set.
func (r *Repo) AddBookmark(ctx context.Context, userID, postID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Update("users").
		Set("bookmarks", sq.Expr(
			"CASE WHEN ?::uuid = ANY(bookmarks) THEN bookmarks ELSE array_append(bookmarks, ?::uuid) END",
			postID, postID,
		)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING bookmarks").
		ToSql()
	if err != nil {
		return nil, err
	}

	var bookmarks []uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&bookmarks); err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	if bookmarks == nil {
		bookmarks = []uuid.UUID{}
	}
	return bookmarks, nil
}

// AwardBadges adds the given deltas to the user's badge counters in one
// statement. A delta that would drive a counter below zero is rejected by the
// table constraint and reported as a validation error.
func (r *Repo) AwardBadges(ctx context.Context, userID uuid.UUID, gold, silver int) (domain.BadgesCount, error) {
	query, args, err := postgres.Builder().
		Update("users").
		Set("badges_gold", sq.Expr("badges_gold + ?", gold)).
		Set("badges_silver", sq.Expr("badges_silver + ?", silver)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING badges_gold, badges_silver").
		ToSql()
	if err != nil {
		return domain.BadgesCount{}, err
	}

	var count domain.BadgesCount
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&count.Gold, &count.Silver); err != nil {
		return domain.BadgesCount{}, postgres.MapError(err, "user", userID)
	}
	return count, nil
}

// SetVerified sets the verified flag shown next to the user's content.
func (r *Repo) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	query, args, err := postgres.Builder().
		Update("users").
		Set("verified", verified).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", userID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", userID)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.AvatarURL, &u.Department, &u.Verified,
		&u.PasswordHash, &u.BadgesCount.Gold, &u.BadgesCount.Silver, &u.Bookmarks, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if u.Bookmarks == nil {
		u.Bookmarks = []uuid.UUID{}
	}
	return &u, nil
}
