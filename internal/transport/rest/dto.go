package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

type authorResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Avatar     *string   `json:"avatar"`
	Email      string    `json:"email"`
	Verified   bool      `json:"verified"`
	Department *string   `json:"department"`
}

func toAuthorResponse(a domain.Author) authorResponse {
	return authorResponse{
		ID:         a.ID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Avatar:     a.AvatarURL,
		Email:      a.Email,
		Verified:   a.Verified,
		Department: a.Department,
	}
}

// userResponse deliberately has no credential hash field.
type userResponse struct {
	ID          uuid.UUID          `json:"id"`
	Email       string             `json:"email"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Avatar      *string            `json:"avatar"`
	Department  *string            `json:"department"`
	Verified    bool               `json:"verified"`
	BadgesCount domain.BadgesCount `json:"badgesCount"`
	Bookmarks   []uuid.UUID        `json:"bookmarks"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	bookmarks := u.Bookmarks
	if bookmarks == nil {
		bookmarks = []uuid.UUID{}
	}
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Avatar:      u.AvatarURL,
		Department:  u.Department,
		Verified:    u.Verified,
		BadgesCount: u.BadgesCount,
		Bookmarks:   bookmarks,
		CreatedAt:   u.CreatedAt,
	}
}

type postResponse struct {
	ID         uuid.UUID          `json:"id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	Tags       []string           `json:"tags"`
	Categories []string           `json:"categories"`
	Images     []domain.PostImage `json:"images"`
	Author     uuid.UUID          `json:"author"`
	Likes      []uuid.UUID        `json:"likes"`
	Comments   []uuid.UUID        `json:"comments"`
	Views      int                `json:"views"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		Tags:       nonNil(p.Tags),
		Categories: nonNil(p.Categories),
		Images:     nonNil(p.Images),
		Author:     p.AuthorID,
		Likes:      nonNil(p.Likes),
		Comments:   nonNil(p.Comments),
		Views:      p.Views,
		CreatedAt:  p.CreatedAt,
	}
}

type postViewResponse struct {
	ID         uuid.UUID                 `json:"id"`
	Title      string                    `json:"title"`
	Content    string                    `json:"content"`
	Tags       []string                  `json:"tags"`
	Categories []string                  `json:"categories"`
	Images     []domain.PostImage        `json:"images"`
	Author     authorResponse            `json:"author"`
	Likes      []uuid.UUID               `json:"likes"`
	Comments   []resolvedCommentResponse `json:"comments"`
	Views      int                       `json:"views"`
	CreatedAt  time.Time                 `json:"createdAt"`
}

func toPostViewResponse(v domain.PostView) postViewResponse {
	return postViewResponse{
		ID:         v.ID,
		Title:      v.Title,
		Content:    v.Content,
		Tags:       nonNil(v.Tags),
		Categories: nonNil(v.Categories),
		Images:     nonNil(v.Images),
		Author:     toAuthorResponse(v.Author),
		Likes:      nonNil(v.Likes),
		Comments:   toResolvedCommentsResponse(v.Comments),
		Views:      v.Views,
		CreatedAt:  v.CreatedAt,
	}
}

func toPostViewsResponse(views []domain.PostView) []postViewResponse {
	out := make([]postViewResponse, len(views))
	for i, v := range views {
		out[i] = toPostViewResponse(v)
	}
	return out
}

type commentResponse struct {
	ID        uuid.UUID   `json:"id"`
	PostID    uuid.UUID   `json:"postId"`
	Author    uuid.UUID   `json:"author"`
	Content   string      `json:"content"`
	Type      string      `json:"type"`
	Upvotes   []uuid.UUID `json:"upvotes"`
	Replies   []uuid.UUID `json:"replies"`
	CreatedAt time.Time   `json:"createdAt"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Author:    c.AuthorID,
		Content:   c.Content,
		Type:      c.Type.String(),
		Upvotes:   nonNil(c.Upvotes),
		Replies:   nonNil(c.Replies),
		CreatedAt: c.CreatedAt,
	}
}

type resolvedCommentResponse struct {
	ID        uuid.UUID                 `json:"id"`
	Author    *authorResponse           `json:"author"`
	Content   string                    `json:"content"`
	Type      string                    `json:"type"`
	Upvotes   []uuid.UUID               `json:"upvotes"`
	Replies   []resolvedCommentResponse `json:"replies"`
	Truncated bool                      `json:"truncated,omitempty"`
	CreatedAt time.Time                 `json:"createdAt"`
}

func toResolvedCommentsResponse(comments []domain.ResolvedComment) []resolvedCommentResponse {
	out := make([]resolvedCommentResponse, len(comments))
	for i, c := range comments {
		var author *authorResponse
		if c.Author != nil {
			a := toAuthorResponse(*c.Author)
			author = &a
		}
		out[i] = resolvedCommentResponse{
			ID:        c.ID,
			Author:    author,
			Content:   c.Content,
			Type:      c.Type.String(),
			Upvotes:   nonNil(c.Upvotes),
			Replies:   toResolvedCommentsResponse(c.Replies),
			Truncated: c.Truncated,
			CreatedAt: c.CreatedAt,
		}
	}
	return out
}

type notificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	PostID    *uuid.UUID `json:"postId"`
	CreatedAt time.Time  `json:"createdAt"`
}

type badgeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
	Progress    int    `json:"progress"`
}

type badgesResponse struct {
	Gold   []badgeResponse `json:"gold"`
	Silver []badgeResponse `json:"silver"`
}

type profileResponse struct {
	userResponse
	Badges        badgesResponse         `json:"badges"`
	Notifications []notificationResponse `json:"notifications"`
}

func toProfileResponse(p *domain.ProfileView) profileResponse {
	notifications := make([]notificationResponse, len(p.Notifications))
	for i, n := range p.Notifications {
		notifications[i] = notificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Message:   n.Message,
			Read:      n.Read,
			PostID:    n.PostID,
			CreatedAt: n.CreatedAt,
		}
	}
	return profileResponse{
		userResponse: toUserResponse(&p.User),
		Badges: badgesResponse{
			Gold:   toBadgesResponse(p.Badges.Gold),
			Silver: toBadgesResponse(p.Badges.Silver),
		},
		Notifications: notifications,
	}
}

func toBadgesResponse(badges []domain.Badge) []badgeResponse {
	out := make([]badgeResponse, len(badges))
	for i, b := range badges {
		out[i] = badgeResponse{Name: b.Name, Description: b.Description, Earned: b.Earned, Progress: b.Progress}
	}
	return out
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
