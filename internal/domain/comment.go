package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommentType identifies who wrote a comment.
type CommentType string

const (
	CommentTypeUser       CommentType = "user"
	CommentTypeDepartment CommentType = "department"
	CommentTypeAI         CommentType = "ai"
)

func (t CommentType) String() string { return string(t) }

func (t CommentType) IsValid() bool {
	switch t {
	case CommentTypeUser, CommentTypeDepartment, CommentTypeAI:
		return true
	}
	return false
}

// Comment is a node of a post's thread. Replies are ids of other comments,
// kept in insertion order.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	Type      CommentType
	Upvotes   []uuid.UUID
	Replies   []uuid.UUID
	CreatedAt time.Time
}

// ResolvedComment is a comment with its author and nested replies expanded.
type ResolvedComment struct {
	ID        uuid.UUID
	Author    *Author
	Content   string
	Type      CommentType
	Upvotes   []uuid.UUID
	Replies   []ResolvedComment
	Truncated bool
	CreatedAt time.Time
}
