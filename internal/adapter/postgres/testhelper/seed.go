package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser inserts a user with zero badges and no bookmarks.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "member-" + suffix + "@example.com",
		FirstName:    "Test",
		LastName:     "Member " + suffix,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpl",
		Bookmarks:    []uuid.UUID{},
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, first_name, last_name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.FirstName, user.LastName, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedPost inserts a post by authorID with no comments.
func SeedPost(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID) domain.Post {
	t.Helper()

	ts := now()
	post := domain.Post{
		ID:         uuid.New(),
		Title:      "How do we deploy on Fridays? " + uniqueSuffix(),
		Content:    "Asking for a friend.",
		Tags:       []string{"deploy"},
		Categories: []string{"ops"},
		Images:     []domain.PostImage{},
		AuthorID:   authorID,
		Likes:      []uuid.UUID{},
		Comments:   []uuid.UUID{},
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO posts (id, title, content, tags, categories, author_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		post.ID, post.Title, post.Content, post.Tags, post.Categories, post.AuthorID, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}

	return post
}

// SeedComment inserts a comment on postID with the given reply ids, bypassing
// any graph checks. Tests use it to build arbitrary (even cyclic) reply graphs.
func SeedComment(t *testing.T, pool *pgxpool.Pool, postID, authorID uuid.UUID, replies ...uuid.UUID) domain.Comment {
	t.Helper()

	if replies == nil {
		replies = []uuid.UUID{}
	}
	c := domain.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   "comment " + uniqueSuffix(),
		Type:      domain.CommentTypeUser,
		Upvotes:   []uuid.UUID{},
		Replies:   replies,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO comments (id, post_id, author_id, content, type, replies, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.PostID, c.AuthorID, c.Content, string(c.Type), c.Replies, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}

	return c
}

// SetReplies overwrites the reply list of a comment.
func SetReplies(t *testing.T, pool *pgxpool.Pool, commentID uuid.UUID, replies ...uuid.UUID) {
	t.Helper()

	if replies == nil {
		replies = []uuid.UUID{}
	}
	if _, err := pool.Exec(context.Background(),
		`UPDATE comments SET replies = $2 WHERE id = $1`, commentID, replies,
	); err != nil {
		t.Fatalf("testhelper: SetReplies: %v", err)
	}
}

// AttachRootComments overwrites the top-level comment list of a post.
func AttachRootComments(t *testing.T, pool *pgxpool.Pool, postID uuid.UUID, ids ...uuid.UUID) {
	t.Helper()

	if ids == nil {
		ids = []uuid.UUID{}
	}
	if _, err := pool.Exec(context.Background(),
		`UPDATE posts SET comments = $2 WHERE id = $1`, postID, ids,
	); err != nil {
		t.Fatalf("testhelper: AttachRootComments: %v", err)
	}
}
