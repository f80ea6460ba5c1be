package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post limits.
const (
	MaxPostTitleLength = 100
	MaxPostTags        = 5
	MaxPostCategories  = 5
)

// PostImage is an image attached to a post.
type PostImage struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Post is a question or answer published by a user.
// Comments holds only the ids of top-level comments; content lives in the comment store.
type Post struct {
	ID         uuid.UUID
	Title      string
	Content    string
	Tags       []string
	Categories []string
	Images     []PostImage
	AuthorID   uuid.UUID
	Likes      []uuid.UUID
	Comments   []uuid.UUID
	Views      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PostView is a post resolved with its author and full comment thread.
type PostView struct {
	Post
	Author   Author
	Comments []ResolvedComment
}
