package domain

import (
	"time"

	"github.com/google/uuid"
)

// BadgesCount holds the number of earned badges per tier. Both counters are non-negative.
type BadgesCount struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
}

// User represents a registered team member.
type User struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	AvatarURL    *string
	Department   *string
	Verified     bool
	PasswordHash string
	BadgesCount  BadgesCount
	// Bookmarks is an ordered set of post ids, oldest first.
	Bookmarks []uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Author returns the public projection of the user embedded in posts and comments.
func (u *User) Author() Author {
	return Author{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		AvatarURL:  u.AvatarURL,
		Email:      u.Email,
		Verified:   u.Verified,
		Department: u.Department,
	}
}

// HasBookmark reports whether postID is in the user's bookmark set.
func (u *User) HasBookmark(postID uuid.UUID) bool {
	for _, id := range u.Bookmarks {
		if id == postID {
			return true
		}
	}
	return false
}

// Author is the subset of user fields exposed next to content.
type Author struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	AvatarURL  *string
	Email      string
	Verified   bool
	Department *string
}
