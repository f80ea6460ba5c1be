package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationUpvote  NotificationType = "upvote"
	NotificationComment NotificationType = "comment"
	NotificationReply   NotificationType = "reply"
	NotificationMention NotificationType = "mention"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationUpvote, NotificationComment, NotificationReply, NotificationMention:
		return true
	}
	return false
}

// Notification is an entry of a user's feed.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Message   string
	Read      bool
	PostID    *uuid.UUID
	CreatedAt time.Time
}
